// Package freqplan считает делители CDCE913 для набора частотных планов и печатает отчёт.
package freqplan

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiwa/timecard-mini/cdce913-calc/internal/config"
	"github.com/shiwa/timecard-mini/cdce913-calc/internal/logger"
	"github.com/shiwa/timecard-mini/cdce913-calc/internal/pll"
	pkgconfig "github.com/shiwa/timecard-mini/cdce913-calc/pkg/config"
)

// Result — решение для одного плана.
type Result struct {
	Name     string       `yaml:"name"`
	Solution pll.Solution `yaml:"solution"`
	// Accepted: точное решение, либо приближённое с |ppm| <= max_ppm (max_ppm > 0).
	Accepted bool    `yaml:"accepted"`
	MaxPPM   float64 `yaml:"max_ppm,omitempty"`
}

// Accept применяет политику допуска к решению. Ядро pll её не применяет.
func Accept(sol pll.Solution, maxPPM float64) bool {
	switch sol.Status {
	case pll.Solved:
		return true
	case pll.SolvedApproximate:
		return maxPPM > 0 && math.Abs(sol.PPMError) <= maxPPM
	}
	return false
}

// Run считает все планы cfg параллельно (не более cfg.Workers одновременно).
// Результаты возвращаются в порядке планов. Отмена ctx прерывает ещё не начатые планы.
func Run(ctx context.Context, cfg *pkgconfig.Config) ([]Result, error) {
	if cfg == nil || len(cfg.Plans) == 0 {
		return nil, nil
	}
	ic := toInternalConfig(cfg)
	ic.ApplyDefaults()
	if err := ic.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(ic.Plans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ic.Workers)
	for i, p := range ic.Plans {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			sol := pll.Search(p.Request())
			logger.Debug("plan %s: %s за %v, попытки %v", p.Name, sol.Status, time.Since(start), sol.Attempts)
			results[i] = Result{
				Name:     p.Name,
				Solution: sol,
				Accepted: Accept(sol, p.MaxPPM),
				MaxPPM:   p.MaxPPM,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("freqplan: %w", err)
	}
	return results, nil
}

// Rejected возвращает число непринятых результатов.
func Rejected(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Accepted {
			n++
		}
	}
	return n
}

// ToPkgConfig преобразует internal config в pkg config (для вызова Run из cmd/cdce-calc).
func ToPkgConfig(c *config.Config) *pkgconfig.Config {
	if c == nil {
		return nil
	}
	out := &pkgconfig.Config{
		ReferenceHz: c.ReferenceHz,
		Workers:     c.Workers,
		Output:      c.Output,
		MaxPPM:      c.MaxPPM,
		Plans:       make([]pkgconfig.Plan, len(c.Plans)),
	}
	for i, p := range c.Plans {
		out.Plans[i] = pkgconfig.Plan(p)
	}
	return out
}

func toInternalConfig(c *pkgconfig.Config) *config.Config {
	out := &config.Config{
		ReferenceHz: c.ReferenceHz,
		Workers:     c.Workers,
		Output:      c.Output,
		MaxPPM:      c.MaxPPM,
		Plans:       make([]config.Plan, len(c.Plans)),
	}
	for i, p := range c.Plans {
		out.Plans[i] = config.Plan(p)
	}
	return out
}
