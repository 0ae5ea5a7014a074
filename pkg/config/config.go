// Package config предоставляет конфигурацию частотных планов для использования из других модулей.
// Формат совпадает с YAML-файлом cdce-calc (cdce-calc.yml); неизвестные ключи игнорируются.
package config

// Config — опорная частота и список планов.
type Config struct {
	ReferenceHz float64 `yaml:"reference_hz"`
	Workers     int     `yaml:"workers"`
	Output      string  `yaml:"output"`
	MaxPPM      float64 `yaml:"max_ppm"`
	Plans       []Plan  `yaml:"plans"`
}

// Plan — выходные частоты Y1..Y3 (Гц); нулевые поля берутся из предыдущего выхода / reference_hz.
type Plan struct {
	Name   string  `yaml:"name"`
	InHz   float64 `yaml:"in_hz"`
	Out1Hz float64 `yaml:"out1_hz"`
	Out2Hz float64 `yaml:"out2_hz"`
	Out3Hz float64 `yaml:"out3_hz"`
	MaxPPM float64 `yaml:"max_ppm"`
}
