package pll

// Fragment — результат подбора (N, M) для одной целевой частоты VCO.
type Fragment struct {
	N, M    int
	P, Q, R int
	// VCO — реализованная частота f_in*N/M в Гц.
	VCO   float64
	Exact bool
	// PPMError — (VCO/target - 1) * 1e6.
	PPMError float64
	// Found == false: ни одна пара (N, M) не прошла проверку.
	Found bool

	// относительная ошибка errAbs/errBase = |N*f_in - M*target| / (M*target)
	errAbs, errBase uint64
}

// lessError сообщает, что относительная ошибка f строго меньше, чем у o.
func (f Fragment) lessError(o Fragment) bool {
	return lessMul(f.errAbs, o.errBase, o.errAbs, f.errBase)
}

// Solver подбирает (N, M) под заданную частоту VCO.
// VCOMin/VCOMax ограничивают реализованную частоту; нулевые значения отключают проверку.
type Solver struct {
	VCOMin, VCOMax Freq
}

// NewSolver создаёт Solver с диапазоном VCO по datasheet (80..230 МГц).
func NewSolver() *Solver {
	return &Solver{VCOMin: VCOMin, VCOMax: VCOMax}
}

// Solve перебирает M = 1..511 по возрастанию, N = round(M*target/fIn).
// Первое точное валидное совпадение возвращается сразу (наименьший M);
// иначе сканируется весь диапазон и возвращается кандидат с наименьшей |ошибкой|.
func (s *Solver) Solve(fIn, target Freq) Fragment {
	var best Fragment
	if fIn <= 0 || target <= 0 {
		return best
	}
	in := int64(fIn)
	for m := 1; m <= MaxM; m++ {
		num := int64(m) * int64(target)
		n := (num + in/2) / in
		if n < 1 || n > MaxN {
			continue
		}
		p, q, r, ok := Validate(int(n), m)
		if !ok {
			continue
		}
		got := n * in // f_in*N, сравнивается с M*f_vco
		if !s.inRange(got, int64(m)) {
			continue
		}
		diff := got - num
		if diff == 0 {
			return Fragment{
				N: int(n), M: m, P: p, Q: q, R: r,
				VCO:   target.Hz(),
				Exact: true,
				Found: true,
			}
		}
		abs := diff
		if abs < 0 {
			abs = -abs
		}
		cand := Fragment{
			N: int(n), M: m, P: p, Q: q, R: r,
			VCO:      fIn.Hz() * float64(n) / float64(m),
			PPMError: float64(diff) / float64(num) * 1e6,
			Found:    true,
			errAbs:   uint64(abs),
			errBase:  uint64(num),
		}
		if !best.Found || cand.lessError(best) {
			best = cand
		}
	}
	return best
}

// inRange проверяет VCOMin <= got/m <= VCOMax.
func (s *Solver) inRange(got, m int64) bool {
	if s.VCOMin == 0 && s.VCOMax == 0 {
		return true
	}
	return got >= int64(s.VCOMin)*m && got <= int64(s.VCOMax)*m
}
