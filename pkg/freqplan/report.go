package freqplan

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/shiwa/timecard-mini/cdce913-calc/internal/pll"
)

// WriteYAML печатает результаты YAML-документом.
func WriteYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// WriteText печатает результаты в человекочитаемом виде.
func WriteText(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range results {
		s := r.Solution
		q := s.Request
		fmt.Fprintf(tw, "[%s] in=%s out=%s/%s/%s\n", r.Name, mhz(q.FIn), mhz(q.FOut1), mhz(q.FOut2), mhz(q.FOut3))
		fmt.Fprintf(tw, "  status\t%s\n", verdict(r))
		if !s.OK() {
			fmt.Fprintf(tw, "  attempts\t%v\n", s.Attempts)
			continue
		}
		fmt.Fprintf(tw, "  vco\t%s (target %s, %+.4f ppm)\n", mhz(s.VCO), mhz(s.TargetVCO), s.PPMError)
		fmt.Fprintf(tw, "  N/M\t%d/%d\n", s.N, s.M)
		fmt.Fprintf(tw, "  P/Q/R\t%d/%d/%d\n", s.P, s.Q, s.R)
		for i, o := range s.Outputs {
			src := "vco"
			if i == 0 && s.Y1Bypass {
				src = "bypass"
			}
			fmt.Fprintf(tw, "  Y%d\tpdiv=%d\t%s\terr=%.6g Hz\t%s\n", i+1, o.PDiv, mhz(o.Hz), o.ErrorHz, src)
		}
	}
	return tw.Flush()
}

func verdict(r Result) string {
	s := r.Solution.Status.String()
	if r.Solution.Status == pll.SolvedApproximate && !r.Accepted {
		return s + " (rejected: max_ppm)"
	}
	return s
}

func mhz(hz float64) string {
	return fmt.Sprintf("%.6f MHz", hz/1e6)
}
