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

// ilpBlock is the number of independent accumulators per output cell.
const ilpBlock = 4

type ilpKernel struct{}

func (ilpKernel) Name() string  { return "ilp" }
func (ilpKernel) Unit() int     { return ilpBlock }
func (ilpKernel) RowGroup() int { return 1 }

func (ilpKernel) ComputeTile(l *Layout, i, j int, tile []float32) {
	tile[0] = minPlusILP(l.Row(i), l.Col(j))
}

// minPlusILP returns min over k of x[k]+y[k].
//
// A single running minimum would serialize the whole k loop on one
// dependency chain. Four accumulators give four independent chains that are
// merged once at the end. len(x) must be a multiple of ilpBlock and
// len(y) >= len(x).
//
// A sum only replaces an accumulator when it compares less, so NaN sums
// (-Inf + +Inf) are ignored, matching the vector kernels.
func minPlusILP(x, y []float32) float32 {
	m0, m1, m2, m3 := inf, inf, inf, inf
	y = y[:len(x)]
	for k := 0; k+ilpBlock <= len(x); k += ilpBlock {
		xs := x[k : k+ilpBlock : k+ilpBlock]
		ys := y[k : k+ilpBlock : k+ilpBlock]
		if s := xs[0] + ys[0]; s < m0 {
			m0 = s
		}
		if s := xs[1] + ys[1]; s < m1 {
			m1 = s
		}
		if s := xs[2] + ys[2]; s < m2 {
			m2 = s
		}
		if s := xs[3] + ys[3]; s < m3 {
			m3 = s
		}
	}
	if m1 < m0 {
		m0 = m1
	}
	if m3 < m2 {
		m2 = m3
	}
	if m2 < m0 {
		m0 = m2
	}
	return m0
}
