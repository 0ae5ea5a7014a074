// cdce-calc — расчёт делителей PLL синтезатора CDCE913 (Y1..Y3) по входной частоте.
//
// Для каждого частотного плана ищет N, M, P, Q, R и пост-делители так, чтобы все выходы
// получались точно; если общей частоты VCO нет — пробует питать Y1 напрямую от входа (bypass);
// если точного решения нет — сообщает лучшее приближённое с ошибкой в ppm.
//
// Использование:
//
//	cdce-calc -in 10e6 -out1 24.576e6 -out2 2.048e6  — один план из флагов
//	cdce-calc -config cdce-calc.yml -format yaml      — все планы из конфига
package main

import (
	"flag"
	"os"

	"github.com/shiwa/timecard-mini/cdce913-calc/internal/config"
	"github.com/shiwa/timecard-mini/cdce913-calc/internal/logger"
	"github.com/shiwa/timecard-mini/cdce913-calc/pkg/freqplan"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигу (по умолчанию cdce-calc.yml, если есть)")
	in := flag.Float64("in", 0, "входная частота, Гц (переопределяет reference_hz)")
	out1 := flag.Float64("out1", 0, "частота Y1, Гц; если задана — считается один план из флагов")
	out2 := flag.Float64("out2", 0, "частота Y2, Гц (0 = как Y1)")
	out3 := flag.Float64("out3", 0, "частота Y3, Гц (0 = как Y2)")
	maxPPM := flag.Float64("max-ppm", -1, "допуск для приближённых решений, ppm (0 = только точные)")
	format := flag.String("format", "", "формат отчёта: text | yaml (переопределяет config)")
	workers := flag.Int("workers", 0, "число параллельных планов (переопределяет config)")
	quiet := flag.Bool("quiet", false, "меньше вывода")
	verbose := flag.Bool("v", false, "подробный вывод перебора")
	flag.Parse()

	logger.Quiet = *quiet
	logger.SetVerbose(*verbose)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("config: %v", err)
		os.Exit(2)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	if *in > 0 {
		cfg.ReferenceHz = *in
		for i := range cfg.Plans {
			cfg.Plans[i].InHz = *in
		}
	}
	if *maxPPM >= 0 {
		cfg.MaxPPM = *maxPPM
		for i := range cfg.Plans {
			cfg.Plans[i].MaxPPM = *maxPPM
		}
	}
	if *format != "" {
		cfg.Output = *format
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *out1 > 0 {
		cfg.Plans = []config.Plan{{
			Name:   "cli",
			InHz:   cfg.ReferenceHz,
			Out1Hz: *out1,
			Out2Hz: *out2,
			Out3Hz: *out3,
			MaxPPM: cfg.MaxPPM,
		}}
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		os.Exit(2)
	}
	if len(cfg.Plans) == 0 {
		logger.Error("нет планов: задайте -out1 или plans в конфиге")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signalContext()
	defer stop()

	results, err := freqplan.Run(ctx, freqplan.ToPkgConfig(cfg))
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	switch cfg.Output {
	case config.OutputYAML:
		err = freqplan.WriteYAML(os.Stdout, results)
	default:
		err = freqplan.WriteText(os.Stdout, results)
	}
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	if n := freqplan.Rejected(results); n > 0 {
		logger.Info("%d из %d планов без принятого решения", n, len(results))
		stop()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "cdce-calc.yml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}
	}
	return config.Load(path)
}
