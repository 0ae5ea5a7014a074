package pll

import (
	"math"
	"math/bits"
)

// Freq — частота в целых миллигерцах. Все проверки делимости и сравнения
// ведутся в этом представлении, без сравнения float на равенство.
type Freq int64

// Разрешение Freq: 1 мГц.
const freqScale = 1000

// FromHz переводит частоту в Гц в Freq с округлением до 1 мГц.
func FromHz(hz float64) Freq {
	return Freq(math.Round(hz * freqScale))
}

// Hz возвращает частоту в Гц.
func (f Freq) Hz() float64 {
	return float64(f) / freqScale
}

// ceilDiv — ceil(a/b) для a >= 0, b > 0.
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// lessMul сообщает, верно ли a*b < c*d; произведения считаются в 128 бит.
func lessMul(a, b, c, d uint64) bool {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)
	if hi1 != hi2 {
		return hi1 < hi2
	}
	return lo1 < lo2
}
