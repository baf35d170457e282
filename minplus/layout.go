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
	"fmt"
	"math"

	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
)

var inf = float32(math.Inf(1))

// Layout holds the padded working copies of a distance matrix.
//
// Rows is a row-major copy of D and Cols is the transpose of D, both shaped
// Height×Stride. Reading Cols row-wise gives the columns of D, so the inner
// k loop of every kernel streams two contiguous rows.
//
// Every cell whose row or column index is >= N holds +Inf, so blocked or
// vector reads past the logical edge never produce a finite minimum.
type Layout struct {
	N      int // logical dimension
	Stride int // padded row length, a multiple of the kernel unit
	Height int // padded row count, a multiple of the kernel row group

	Rows []float32
	Cols []float32
}

// NewLayout pads d (n×n, row-major) to Height = roundUp(n, group) rows of
// Stride = roundUp(n, unit) cells and builds its transpose with the same
// padding. Both passes run through disp, so large layouts are built in
// parallel.
//
// Panics with ErrTooLarge if the padded size overflows int. d is never
// modified.
func NewLayout(d []float32, n, unit, group int, disp Dispatcher) *Layout {
	if unit <= 0 || group <= 0 {
		panic(fmt.Sprintf("NewLayout: invalid unit=%d group=%d", unit, group))
	}
	stride := roundUp(n, unit)
	height := roundUp(n, group)
	if stride < n || height < n || (stride > 0 && height > math.MaxInt/stride) {
		panic(fmt.Errorf("NewLayout: n=%d unit=%d group=%d: %w", n, unit, group, ErrTooLarge))
	}

	l := &Layout{
		N:      n,
		Stride: stride,
		Height: height,
		Rows:   make([]float32, height*stride),
		Cols:   make([]float32, height*stride),
	}
	disp.Run(height, func(start, end int) {
		for i := start; i < end; i++ {
			l.fillRow(d, i)
		}
	})

	// Column i of D becomes row i of Cols. Strips start on multiples of
	// TransposeRowsPerStrip so the SIMD blocks stay lane aligned.
	strip := matmul.TransposeRowsPerStrip
	d = d[:n*n]
	disp.Run((n+strip-1)/strip, func(start, end int) {
		for s := start; s < end; s++ {
			rowStart := s * strip
			matmul.Transpose2DStrided(d, rowStart, min(rowStart+strip, n), n, l.Stride, l.Cols)
		}
	})
	return l
}

// Row returns padded row i of D.
func (l *Layout) Row(i int) []float32 {
	return l.Rows[i*l.Stride : (i+1)*l.Stride : (i+1)*l.Stride]
}

// Col returns padded column j of D, stored contiguously.
func (l *Layout) Col(j int) []float32 {
	return l.Cols[j*l.Stride : (j+1)*l.Stride : (j+1)*l.Stride]
}

// fillRow writes row i of Rows and the +Inf padding of row i of Cols. The
// first n cells of the first n Cols rows are left for the transpose.
func (l *Layout) fillRow(d []float32, i int) {
	n := l.N
	row, col := l.Row(i), l.Col(i)
	if i >= n {
		fillInf(row)
		fillInf(col)
		return
	}

	copy(row, d[i*n:(i+1)*n])
	fillInf(row[n:])
	fillInf(col[n:])
}

func fillInf(s []float32) {
	for i := range s {
		s[i] = inf
	}
}

// roundUp rounds n up to the next multiple of unit.
func roundUp(n, unit int) int {
	return ((n + unit - 1) / unit) * unit
}
