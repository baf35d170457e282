// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package minplus

import (
	"math"
	"math/rand/v2"
	"testing"
)

// testSizes covers n below, at and just past every tiling unit.
var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 16, 17, 31, 97}

// randomDistances returns an n×n matrix with a zero diagonal, integer weights
// in [1, 100] and roughly (1-density) of the off-diagonal cells set to +Inf.
// Integer weights keep every sum exact, so results compare bit-for-bit.
func randomDistances(n int, density float64, seed uint64) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	d := make([]float32, n*n)
	for i := range n {
		for j := range n {
			switch {
			case i == j:
				d[i*n+j] = 0
			case rng.Float64() < density:
				d[i*n+j] = float32(1 + rng.IntN(100))
			default:
				d[i*n+j] = float32(math.Inf(1))
			}
		}
	}
	return d
}

// infDiagonal returns the n×n matrix with zero diagonal and +Inf elsewhere.
func infDiagonal(n int) []float32 {
	d := make([]float32, n*n)
	for i := range d {
		d[i] = float32(math.Inf(1))
	}
	for i := range n {
		d[i*n+i] = 0
	}
	return d
}

// filled returns a slice of the given length with every cell set to v.
func filled(length int, v float32) []float32 {
	s := make([]float32, length)
	for i := range s {
		s[i] = v
	}
	return s
}

// assertSameMatrix fails at the first differing cell.
func assertSameMatrix(t *testing.T, got, want []float32, n int) {
	t.Helper()
	for i := range n {
		for j := range n {
			g, w := got[i*n+j], want[i*n+j]
			if g != w {
				t.Fatalf("R[%d,%d] = %v, want %v", i, j, g, w)
			}
		}
	}
}
