package pll

import "testing"

func TestValidate_Grid(t *testing.T) {
	// Для всех N, M: N' = Q*M + R и valid <=> диапазоны P, Q, R.
	for n := 1; n <= MaxN; n++ {
		for m := 1; m <= MaxM; m++ {
			p, q, r, ok := Validate(n, m)
			np := n << p
			if np < m {
				np = m
			}
			if np != q*m+r {
				t.Fatalf("Validate(%d, %d): N'=%d, Q*M+R=%d", n, m, np, q*m+r)
			}
			want := p <= MaxP && q >= MinQ && q <= MaxQ && r >= 0 && r <= MaxR
			if ok != want {
				t.Fatalf("Validate(%d, %d) valid=%v, ожидали %v (P=%d Q=%d R=%d)", n, m, ok, want, p, q, r)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		n, m    int
		p, q, r int
		valid   bool
	}{
		{"граница N=4095 M=1", 4095, 1, 0, 4095, 0, false},
		{"граница N=1 M=511", 1, 511, 13, 16, 16, false},
		{"N/M=20", 20, 1, 0, 20, 0, true},
		{"288/25", 288, 25, 1, 23, 1, true},
		{"1536/125", 1536, 125, 1, 24, 72, true},
		{"N/M=8", 8, 1, 1, 16, 0, true},
		{"N/M=64 вне Q", 64, 1, 0, 64, 0, false},
		{"N/M=63", 63, 1, 0, 63, 0, true},
		{"N/M=1/2", 1, 2, 5, 16, 0, true},
		{"N/M=1/8 P=7", 1, 8, 7, 16, 0, true},
		{"N/M=1/9 P=8", 1, 9, 8, 28, 4, false},
		{"N=0", 0, 1, 0, 0, 0, false},
		{"M=0", 1, 0, 0, 0, 0, false},
		{"N>4095", 4096, 1, 0, 0, 0, false},
		{"M>511", 100, 512, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, q, r, ok := Validate(tt.n, tt.m)
			if p != tt.p || q != tt.q || r != tt.r || ok != tt.valid {
				t.Errorf("Validate(%d, %d) = (%d, %d, %d, %v), ожидали (%d, %d, %d, %v)",
					tt.n, tt.m, p, q, r, ok, tt.p, tt.q, tt.r, tt.valid)
			}
		})
	}
}

func TestFloorLog2Ratio(t *testing.T) {
	tests := []struct {
		n, m, want int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{3, 1, 1},
		{4095, 1, 11},
		{4096 - 1, 2, 10},
		{1, 2, -1},
		{2, 3, -1},
		{1, 3, -2},
		{1, 4, -2},
		{1, 511, -9},
		{1, 512, -9},
	}
	for _, tt := range tests {
		if got := floorLog2Ratio(tt.n, tt.m); got != tt.want {
			t.Errorf("floorLog2Ratio(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
		}
	}
}
