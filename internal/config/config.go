package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shiwa/timecard-mini/cdce913-calc/internal/pll"
	"gopkg.in/yaml.v3"
)

// Форматы отчёта.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config — конфигурация cdce-calc: опорная частота и список частотных планов.
type Config struct {
	// ReferenceHz — частота входа по умолчанию для всех планов
	ReferenceHz float64 `yaml:"reference_hz"`
	Workers     int     `yaml:"workers"`
	Output      string  `yaml:"output"` // text, yaml
	// MaxPPM — допуск для приближённых решений по умолчанию; 0 = принимать любые
	MaxPPM float64 `yaml:"max_ppm"`
	Plans  []Plan  `yaml:"plans"`
}

// Plan — один набор выходных частот Y1..Y3.
type Plan struct {
	Name   string  `yaml:"name"`
	InHz   float64 `yaml:"in_hz"` // 0 = reference_hz
	Out1Hz float64 `yaml:"out1_hz"`
	Out2Hz float64 `yaml:"out2_hz"` // 0 = out1_hz
	Out3Hz float64 `yaml:"out3_hz"` // 0 = out2_hz
	MaxPPM float64 `yaml:"max_ppm"`
}

// Request возвращает запрос для pll.Search.
func (p Plan) Request() pll.Request {
	return pll.Request{FIn: p.InHz, FOut1: p.Out1Hz, FOut2: p.Out2Hz, FOut3: p.Out3Hz}
}

// Default возвращает конфиг по умолчанию (без планов)
func Default() *Config {
	return &Config{
		ReferenceHz: 27e6,
		Workers:     runtime.NumCPU(),
		Output:      OutputText,
	}
}

// Load читает конфиг из YAML
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse разбирает YAML и подставляет значения по умолчанию.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults заполняет пустые поля; вызывается и после переопределения флагами.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.ReferenceHz == 0 {
		c.ReferenceHz = d.ReferenceHz
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	for i := range c.Plans {
		p := &c.Plans[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("plan%d", i+1)
		}
		if p.InHz == 0 {
			p.InHz = c.ReferenceHz
		}
		if p.MaxPPM == 0 {
			p.MaxPPM = c.MaxPPM
		}
	}
}

// Validate проверяет формат отчёта и частоты каждого плана.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("config: unknown output %q (text, yaml)", c.Output)
	}
	if c.MaxPPM < 0 {
		return fmt.Errorf("config: max_ppm must not be negative")
	}
	for _, p := range c.Plans {
		if err := p.Request().Validate(); err != nil {
			return fmt.Errorf("config: plan %s: %w", p.Name, err)
		}
		if p.MaxPPM < 0 {
			return fmt.Errorf("config: plan %s: max_ppm must not be negative", p.Name)
		}
	}
	return nil
}
