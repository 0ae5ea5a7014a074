// Package pll — расчёт делителей PLL синтезатора CDCE913 (N, M, P, Q, R и пост-делители Y1..Y3).
//
// Формулы по datasheet CDCE913, раздел 9.2.2.2:
//
//	f_vco = f_in * N/M,   80 MHz <= f_vco <= 230 MHz
//	f_out = f_vco / PDiv
//	P = max(4 - floor(log2(N/M)), 0)
//	N' = max(N * 2^P, M),  Q = floor(N'/M),  R = N' - M*Q
package pll

// Диапазоны регистров.
const (
	MaxN    = 4095
	MaxM    = 511
	MaxP    = 7
	MinQ    = 16
	MaxQ    = 63
	MaxR    = 511
	MaxPDiv = 127
)

// Validate вычисляет внутренние P, Q, R для пары (N, M) и проверяет их диапазоны.
// N и M вне диапазонов регистров (1..4095, 1..511) дают valid = false.
func Validate(n, m int) (p, q, r int, valid bool) {
	if n < 1 || n > MaxN || m < 1 || m > MaxM {
		return 0, 0, 0, false
	}
	p = 4 - floorLog2Ratio(n, m)
	if p < 0 {
		p = 0
	}
	np := n << p
	if np < m {
		np = m
	}
	q = np / m
	r = np - m*q
	valid = p <= MaxP && q >= MinQ && q <= MaxQ && r >= 0 && r <= MaxR
	return p, q, r, valid
}

// floorLog2Ratio — точный floor(log2(n/m)) для n, m >= 1.
func floorLog2Ratio(n, m int) int {
	k := 0
	if n >= m {
		for m<<(k+1) <= n {
			k++
		}
		return k
	}
	// наименьшее j, при котором n*2^j >= m: тогда log2(n/m) лежит в [-j, -j+1)
	for n<<k < m {
		k++
	}
	return -k
}
