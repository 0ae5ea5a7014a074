package pll

import (
	"errors"
	"fmt"
	"math"
)

// Диапазон VCO по datasheet.
const (
	VCOMinHz = 80e6
	VCOMaxHz = 230e6
)

const (
	VCOMin = Freq(VCOMinHz * freqScale)
	VCOMax = Freq(VCOMaxHz * freqScale)
)

// MaxFreqHz — верхняя граница входных частот; держит целочисленные произведения в int64.
const MaxFreqHz = 1e9

// ErrInvalidRequest — запрос с недопустимыми частотами.
var ErrInvalidRequest = errors.New("pll: invalid request")

// Request — входные частоты (Гц). FOut2/FOut3 <= 0 — берётся частота предыдущего выхода.
type Request struct {
	FIn   float64 `yaml:"in_hz"`
	FOut1 float64 `yaml:"out1_hz"`
	FOut2 float64 `yaml:"out2_hz"`
	FOut3 float64 `yaml:"out3_hz"`
}

// Normalized возвращает копию с подставленными по умолчанию FOut2/FOut3.
func (r Request) Normalized() Request {
	if r.FOut2 <= 0 {
		r.FOut2 = r.FOut1
	}
	if r.FOut3 <= 0 {
		r.FOut3 = r.FOut2
	}
	return r
}

// Validate проверяет, что частоты конечны, положительны и не выше MaxFreqHz.
func (r Request) Validate() error {
	n := r.Normalized()
	for _, f := range []struct {
		name string
		hz   float64
	}{
		{"in", n.FIn}, {"out1", n.FOut1}, {"out2", n.FOut2}, {"out3", n.FOut3},
	} {
		if math.IsNaN(f.hz) || math.IsInf(f.hz, 0) {
			return fmt.Errorf("%w: %s is not a number", ErrInvalidRequest, f.name)
		}
		if FromHz(f.hz) <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidRequest, f.name, f.hz)
		}
		if f.hz > MaxFreqHz {
			return fmt.Errorf("%w: %s %g Hz exceeds %g Hz", ErrInvalidRequest, f.name, f.hz, MaxFreqHz)
		}
	}
	return nil
}

// Status — исход поиска или отдельной его фазы.
type Status int

const (
	// NoSolution — ни в обычном режиме, ни в bypass решения нет. Нулевое значение.
	NoSolution Status = iota
	Solved
	SolvedApproximate
	// Empty — фаза перебора не нашла ни одного кандидата.
	Empty
	// BypassInfeasible — f_in/f_out1 не целое в диапазоне PDiv.
	BypassInfeasible
)

func (s Status) String() string {
	switch s {
	case NoSolution:
		return "no_solution"
	case Solved:
		return "solved"
	case SolvedApproximate:
		return "solved_approximate"
	case Empty:
		return "empty"
	case BypassInfeasible:
		return "bypass_infeasible"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText нужен для YAML-отчёта.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Mode — фаза поиска.
type Mode int

const (
	NormalSearch Mode = iota
	BypassSearch
)

func (m Mode) String() string {
	if m == BypassSearch {
		return "bypass"
	}
	return "normal"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Attempt — одна фаза поиска и её исход.
type Attempt struct {
	Mode    Mode   `yaml:"mode"`
	Outcome Status `yaml:"outcome"`
}

// Output — реализованная частота выхода.
type Output struct {
	PDiv    int     `yaml:"pdiv"`
	Hz      float64 `yaml:"hz"`
	ErrorHz float64 `yaml:"error_hz"`
}

// Solution — результат поиска. При Status == NoSolution числовые поля нулевые.
type Solution struct {
	Request Request `yaml:"request"`

	// VCO — реализованная частота f_in*N/M, TargetVCO — общая частота выходов.
	VCO       float64 `yaml:"vco_hz"`
	TargetVCO float64 `yaml:"target_vco_hz"`

	N int `yaml:"n"`
	M int `yaml:"m"`
	P int `yaml:"p"`
	Q int `yaml:"q"`
	R int `yaml:"r"`

	PDiv1 int `yaml:"pdiv1"`
	PDiv2 int `yaml:"pdiv2"`
	PDiv3 int `yaml:"pdiv3"`

	Outputs  [3]Output `yaml:"outputs"`
	PPMError float64   `yaml:"ppm_error"`

	Y1Bypass bool   `yaml:"y1_bypass"`
	Exact    bool   `yaml:"exact"`
	Status   Status `yaml:"status"`

	Attempts []Attempt `yaml:"attempts"`
}

// OK сообщает, что решение найдено (точное или приближённое).
func (s Solution) OK() bool {
	return s.Status == Solved || s.Status == SolvedApproximate
}
