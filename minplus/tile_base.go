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

//go:generate go tool hwygen -input tile_base.go -output . -targets avx2,avx512,neon,fallback -dispatch tile

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseMinPlusTile3x3 computes the 3×3 tile tile[3*a+b] = min over k of
// d_a[k] + t_b[k].
//
// Each step loads one vector from each of the six rows and folds all nine
// pairwise sums into their accumulators, so every loaded vector is used three
// times. A sum replaces an accumulator only where it compares less, so NaN
// sums never reach the result. Cells past the last full vector are folded in
// by the scalar tail.
func BaseMinPlusTile3x3(d0, d1, d2, t0, t1, t2 []float32, tile []float32) {
	lanes := hwy.NumLanes[float32]()
	vInf := hwy.Set[float32](inf)
	acc00, acc01, acc02 := vInf, vInf, vInf
	acc10, acc11, acc12 := vInf, vInf, vInf
	acc20, acc21, acc22 := vInf, vInf, vInf

	width := len(d0)
	k := 0
	for ; k+lanes <= width; k += lanes {
		vd0 := hwy.Load(d0[k:])
		vd1 := hwy.Load(d1[k:])
		vd2 := hwy.Load(d2[k:])
		vt0 := hwy.Load(t0[k:])
		vt1 := hwy.Load(t1[k:])
		vt2 := hwy.Load(t2[k:])

		s00 := hwy.Add(vd0, vt0)
		acc00 = hwy.Merge(s00, acc00, hwy.Less(s00, acc00))
		s01 := hwy.Add(vd0, vt1)
		acc01 = hwy.Merge(s01, acc01, hwy.Less(s01, acc01))
		s02 := hwy.Add(vd0, vt2)
		acc02 = hwy.Merge(s02, acc02, hwy.Less(s02, acc02))
		s10 := hwy.Add(vd1, vt0)
		acc10 = hwy.Merge(s10, acc10, hwy.Less(s10, acc10))
		s11 := hwy.Add(vd1, vt1)
		acc11 = hwy.Merge(s11, acc11, hwy.Less(s11, acc11))
		s12 := hwy.Add(vd1, vt2)
		acc12 = hwy.Merge(s12, acc12, hwy.Less(s12, acc12))
		s20 := hwy.Add(vd2, vt0)
		acc20 = hwy.Merge(s20, acc20, hwy.Less(s20, acc20))
		s21 := hwy.Add(vd2, vt1)
		acc21 = hwy.Merge(s21, acc21, hwy.Less(s21, acc21))
		s22 := hwy.Add(vd2, vt2)
		acc22 = hwy.Merge(s22, acc22, hwy.Less(s22, acc22))
	}

	_ = tile[8]
	tile[0] = hwy.ReduceMin(acc00)
	tile[1] = hwy.ReduceMin(acc01)
	tile[2] = hwy.ReduceMin(acc02)
	tile[3] = hwy.ReduceMin(acc10)
	tile[4] = hwy.ReduceMin(acc11)
	tile[5] = hwy.ReduceMin(acc12)
	tile[6] = hwy.ReduceMin(acc20)
	tile[7] = hwy.ReduceMin(acc21)
	tile[8] = hwy.ReduceMin(acc22)

	for ; k < width; k++ {
		x0, x1, x2 := d0[k], d1[k], d2[k]
		y0, y1, y2 := t0[k], t1[k], t2[k]
		if s := x0 + y0; s < tile[0] {
			tile[0] = s
		}
		if s := x0 + y1; s < tile[1] {
			tile[1] = s
		}
		if s := x0 + y2; s < tile[2] {
			tile[2] = s
		}
		if s := x1 + y0; s < tile[3] {
			tile[3] = s
		}
		if s := x1 + y1; s < tile[4] {
			tile[4] = s
		}
		if s := x1 + y2; s < tile[5] {
			tile[5] = s
		}
		if s := x2 + y0; s < tile[6] {
			tile[6] = s
		}
		if s := x2 + y1; s < tile[7] {
			tile[7] = s
		}
		if s := x2 + y2; s < tile[8] {
			tile[8] = s
		}
	}
}
