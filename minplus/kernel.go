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
	"strings"

	"github.com/ajroetker/go-highway/hwy"
)

// Kernel computes min-plus tiles over a Layout.
//
// A kernel owns the shape of its work: Unit is the padding unit of the
// shared k dimension and RowGroup the number of rows (and columns) in one
// output tile. The Layout passed to ComputeTile must have been built with
// the same Unit and RowGroup.
type Kernel interface {
	// Name identifies the kernel in logs, flags and benchmarks.
	Name() string

	// Unit is the multiple the row stride is padded to.
	Unit() int

	// RowGroup is the tile edge: rows i..i+RowGroup-1 against
	// columns j..j+RowGroup-1.
	RowGroup() int

	// ComputeTile writes the RowGroup×RowGroup tile starting at (i, j) into
	// tile, row-major. Cells past N are computed against padding and hold
	// +Inf; callers skip them.
	ComputeTile(l *Layout, i, j int, tile []float32)
}

var (
	// ILP is the scalar kernel with independent block accumulators.
	ILP Kernel = ilpKernel{}

	// Tiled is the hwy vector kernel with 3×3 register tiles.
	Tiled Kernel = tiledKernel{}
)

// tiledMinN is the smallest dimension Auto-by-size hands to Tiled. Below it
// a single 3×3 tile covers most of the matrix and the scalar kernel wins.
const tiledMinN = 16

// Kernels returns every available kernel.
func Kernels() []Kernel {
	return []Kernel{ILP, Tiled}
}

// Auto returns the kernel matching the current hwy dispatch level: Tiled
// when a SIMD target is active, ILP under the scalar fallback (including
// HWY_NO_SIMD).
func Auto() Kernel {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		return ILP
	}
	return Tiled
}

// autoForSize refines Auto with a size threshold, like matmul's MatMulAuto.
func autoForSize(n int) Kernel {
	if n < tiledMinN {
		return ILP
	}
	return Auto()
}

// KernelByName resolves "ilp", "tiled" or "auto" (case-insensitive).
func KernelByName(name string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto":
		return Auto(), nil
	case ILP.Name():
		return ILP, nil
	case Tiled.Name():
		return Tiled, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownKernel)
}

// computeGroups runs k over row groups [start, end) of l against every
// column group, scattering each tile into r and dropping cells past l.N.
// Distinct row groups write distinct rows of r.
func computeGroups(k Kernel, l *Layout, r []float32, start, end int) {
	g := k.RowGroup()
	n := l.N
	tile := make([]float32, g*g)
	for gi := start; gi < end; gi++ {
		i0 := gi * g
		for j0 := 0; j0 < l.Height; j0 += g {
			k.ComputeTile(l, i0, j0, tile)
			for bi := range g {
				i := i0 + bi
				if i >= n {
					break
				}
				out := r[i*n : (i+1)*n]
				for bj := range g {
					j := j0 + bj
					if j >= n {
						break
					}
					out[j] = tile[bi*g+bj]
				}
			}
		}
	}
}
