package pll

// candidate — тройка пост-делителей с общей частотой VCO и подобранными (N, M).
type candidate struct {
	target Freq
	pdiv   [3]int
	frag   Fragment
}

// Search ищет делители для запроса. Сначала обычный режим (все три выхода от VCO);
// если он не дал ни одного кандидата — один повтор в режиме bypass для Y1.
// Невалидный запрос (см. Request.Validate) возвращает NoSolution без попыток.
func Search(req Request) Solution {
	return NewSolver().Search(req)
}

// Search — то же, что пакетный Search, с диапазоном VCO этого Solver.
func (s *Solver) Search(req Request) Solution {
	req = req.Normalized()
	sol := Solution{Request: req, Status: NoSolution}
	if err := req.Validate(); err != nil {
		return sol
	}
	fIn := FromHz(req.FIn)
	out := [3]Freq{FromHz(req.FOut1), FromHz(req.FOut2), FromHz(req.FOut3)}

	for _, mode := range []Mode{NormalSearch, BypassSearch} {
		c, outcome := s.searchPhase(fIn, out, mode == BypassSearch)
		sol.Attempts = append(sol.Attempts, Attempt{Mode: mode, Outcome: outcome})
		if outcome == Solved || outcome == SolvedApproximate {
			return c.solution(req, out, mode == BypassSearch, outcome, sol.Attempts)
		}
	}
	return sol
}

// searchPhase перебирает PDiv3 (внешний), PDiv2, PDiv1 по убыванию — первым идёт
// наибольший VCO. При фиксированном PDiv3 частота VCO = f3*PDiv3 задана, поэтому
// PDiv2 и PDiv1 либо однозначно получаются точным делением, либо тройки нет.
func (s *Solver) searchPhase(fIn Freq, out [3]Freq, bypass bool) (candidate, Status) {
	var best candidate
	found := false

	bypassDiv := 0
	if bypass {
		if int64(fIn)%int64(out[0]) != 0 {
			return best, BypassInfeasible
		}
		d := int64(fIn) / int64(out[0])
		if d < 1 || d > MaxPDiv {
			return best, BypassInfeasible
		}
		bypassDiv = int(d)
	}

	lo1, hi1 := s.pdivRange(out[0])
	lo2, hi2 := s.pdivRange(out[1])
	lo3, hi3 := s.pdivRange(out[2])

	for p3 := hi3; p3 >= lo3; p3-- {
		vco := out[2] * Freq(p3)
		p2, ok := divisor(vco, out[1], lo2, hi2)
		if !ok {
			continue
		}
		p1 := bypassDiv
		if !bypass {
			if p1, ok = divisor(vco, out[0], lo1, hi1); !ok {
				continue
			}
		}
		frag := s.Solve(fIn, vco)
		if !frag.Found {
			continue
		}
		c := candidate{target: vco, pdiv: [3]int{p1, p2, p3}, frag: frag}
		if frag.Exact {
			return c, Solved
		}
		if !found || frag.lessError(best.frag) {
			best, found = c, true
		}
	}
	if !found {
		return best, Empty
	}
	return best, SolvedApproximate
}

// pdivRange — [max(ceil(VCOMin/f), 1), min(floor(VCOMax/f), 127)]; пустой, если lo > hi.
func (s *Solver) pdivRange(f Freq) (lo, hi int) {
	vmin, vmax := s.VCOMin, s.VCOMax
	if vmin == 0 && vmax == 0 {
		vmin, vmax = VCOMin, VCOMax
	}
	l := ceilDiv(int64(vmin), int64(f))
	if l < 1 {
		l = 1
	}
	h := int64(vmax) / int64(f)
	if h > MaxPDiv {
		h = MaxPDiv
	}
	if l > h {
		return 1, 0
	}
	return int(l), int(h)
}

// divisor возвращает vco/f, если деление точное и частное в [lo, hi].
func divisor(vco, f Freq, lo, hi int) (int, bool) {
	if int64(vco)%int64(f) != 0 {
		return 0, false
	}
	d := int64(vco) / int64(f)
	if d < int64(lo) || d > int64(hi) {
		return 0, false
	}
	return int(d), true
}

func (c candidate) solution(req Request, out [3]Freq, bypass bool, status Status, attempts []Attempt) Solution {
	f := c.frag
	sol := Solution{
		Request:   req,
		VCO:       f.VCO,
		TargetVCO: c.target.Hz(),
		N:         f.N,
		M:         f.M,
		P:         f.P,
		Q:         f.Q,
		R:         f.R,
		PDiv1:     c.pdiv[0],
		PDiv2:     c.pdiv[1],
		PDiv3:     c.pdiv[2],
		PPMError:  f.PPMError,
		Y1Bypass:  bypass,
		Exact:     f.Exact,
		Status:    status,
		Attempts:  attempts,
	}
	for i := range sol.Outputs {
		o := Output{PDiv: c.pdiv[i]}
		switch {
		case f.Exact || (bypass && i == 0):
			// точность уже доказана целочисленно
			o.Hz = out[i].Hz()
		default:
			o.Hz = f.VCO / float64(c.pdiv[i])
			o.ErrorHz = o.Hz - out[i].Hz()
		}
		sol.Outputs[i] = o
	}
	return sol
}
