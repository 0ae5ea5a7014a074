package pll

import (
	"math"
	"math/big"
	"testing"
)

func TestSolver_Exact(t *testing.T) {
	tests := []struct {
		name        string
		fIn, target float64
		n, m        int
		p, q, r     int
	}{
		{"10 MHz -> 122.88 MHz", 10e6, 122.88e6, 1536, 125, 1, 24, 72},
		{"25 MHz -> 200 MHz, наименьший M", 25e6, 200e6, 8, 1, 1, 16, 0},
		{"19.2 MHz -> 221.184 MHz", 19.2e6, 221.184e6, 288, 25, 1, 23, 1},
		{"27 MHz -> 222.75 MHz", 27e6, 222.75e6, 33, 4, 1, 16, 2},
	}
	s := NewSolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := s.Solve(FromHz(tt.fIn), FromHz(tt.target))
			if !f.Found || !f.Exact {
				t.Fatalf("ожидали точное решение, получили %+v", f)
			}
			if f.N != tt.n || f.M != tt.m || f.P != tt.p || f.Q != tt.q || f.R != tt.r {
				t.Errorf("N,M,P,Q,R = %d,%d,%d,%d,%d, want %d,%d,%d,%d,%d",
					f.N, f.M, f.P, f.Q, f.R, tt.n, tt.m, tt.p, tt.q, tt.r)
			}
			if f.PPMError != 0 {
				t.Errorf("PPMError = %v, want 0", f.PPMError)
			}
			if f.VCO != tt.target {
				t.Errorf("VCO = %v, want %v", f.VCO, tt.target)
			}
		})
	}
}

func TestSolver_OutOfRangeCandidateSkipped(t *testing.T) {
	// M=1: N=12 даёт 230.4 МГц, выше VCOMax — должен быть отброшен.
	f := NewSolver().Solve(FromHz(19.2e6), FromHz(221.184e6))
	if f.M == 1 {
		t.Errorf("кандидат вне диапазона VCO не отброшен: %+v", f)
	}
}

func TestSolver_ApproximateScansWholeRange(t *testing.T) {
	fIn, target := FromHz(25e6), FromHz(196.608e6)
	s := NewSolver()
	f := s.Solve(fIn, target)
	if !f.Found || f.Exact {
		t.Fatalf("ожидали приближённое решение, получили %+v", f)
	}
	if f.N != 1565 || f.M != 199 {
		t.Errorf("N/M = %d/%d, want 1565/199", f.N, f.M)
	}
	if math.Abs(f.PPMError-0.2044728852596315) > 1e-9 {
		t.Errorf("PPMError = %v", f.PPMError)
	}

	// Перебором: ни один валидный M не даёт меньшую ошибку.
	want := new(big.Rat).SetFrac64(int64(f.N)*int64(fIn), int64(f.M))
	bestErr := relErr(want, target)
	for m := 1; m <= MaxM; m++ {
		n := int64(math.Round(float64(m) * float64(target) / float64(fIn)))
		if _, _, _, ok := Validate(int(n), m); !ok {
			continue
		}
		got := n * int64(fIn)
		if got < int64(VCOMin)*int64(m) || got > int64(VCOMax)*int64(m) {
			continue
		}
		e := relErr(new(big.Rat).SetFrac64(got, int64(m)), target)
		if e.Cmp(bestErr) < 0 {
			t.Errorf("M=%d N=%d даёт меньшую ошибку %s < %s", m, n, e.FloatString(12), bestErr.FloatString(12))
		}
	}
}

func relErr(actual *big.Rat, target Freq) *big.Rat {
	tr := new(big.Rat).SetInt64(int64(target))
	d := new(big.Rat).Sub(actual, tr)
	d.Abs(d)
	return d.Quo(d, tr)
}

func TestSolver_NoCandidate(t *testing.T) {
	s := NewSolver()
	// 1 кГц -> 200 МГц требует N >= 200000
	if f := s.Solve(FromHz(1e3), FromHz(200e6)); f.Found {
		t.Errorf("ожидали Found=false, получили %+v", f)
	}
	if f := s.Solve(0, FromHz(200e6)); f.Found {
		t.Errorf("fIn=0: ожидали Found=false, получили %+v", f)
	}
}

func TestLessMul(t *testing.T) {
	if !lessMul(1, 2, 1, 3) {
		t.Error("1*2 < 1*3")
	}
	if lessMul(math.MaxUint64, 2, 2, math.MaxUint64) {
		t.Error("равные 128-битные произведения")
	}
	if !lessMul(math.MaxUint64, 2, math.MaxUint64, 3) {
		t.Error("переполнение 64 бит")
	}
}
