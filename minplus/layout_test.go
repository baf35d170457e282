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
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

func TestNewLayout(t *testing.T) {
	shapes := []struct{ n, unit, group int }{
		{1, 4, 1}, {4, 4, 1}, {5, 4, 1}, {7, 4, 1},
		{1, 8, 3}, {5, 8, 3}, {9, 8, 3}, {17, 16, 3}, {31, 4, 3},
	}
	for _, s := range shapes {
		t.Run(fmt.Sprintf("n=%d/unit=%d/group=%d", s.n, s.unit, s.group), func(t *testing.T) {
			d := make([]float32, s.n*s.n)
			for i := range d {
				d[i] = float32(i)
			}
			orig := slices.Clone(d)

			l := NewLayout(d, s.n, s.unit, s.group, Dispatcher{})

			if l.Stride%s.unit != 0 || l.Stride < s.n || l.Stride >= s.n+s.unit {
				t.Fatalf("Stride = %d, want smallest multiple of %d >= %d", l.Stride, s.unit, s.n)
			}
			if l.Height%s.group != 0 || l.Height < s.n || l.Height >= s.n+s.group {
				t.Fatalf("Height = %d, want smallest multiple of %d >= %d", l.Height, s.group, s.n)
			}
			if len(l.Rows) != l.Height*l.Stride || len(l.Cols) != l.Height*l.Stride {
				t.Fatalf("buffer sizes %d/%d, want %d", len(l.Rows), len(l.Cols), l.Height*l.Stride)
			}

			for i := range l.Height {
				for c := range l.Stride {
					wantRow, wantCol := inf, inf
					if i < s.n && c < s.n {
						wantRow = d[i*s.n+c]
						wantCol = d[c*s.n+i]
					}
					if got := l.Row(i)[c]; got != wantRow {
						t.Errorf("Rows[%d][%d] = %v, want %v", i, c, got, wantRow)
					}
					if got := l.Col(i)[c]; got != wantCol {
						t.Errorf("Cols[%d][%d] = %v, want %v", i, c, got, wantCol)
					}
				}
			}

			if !slices.Equal(d, orig) {
				t.Error("NewLayout modified its input")
			}
		})
	}
}

func TestNewLayoutParallelMatchesSequential(t *testing.T) {
	const n = 50
	d := randomDistances(n, 0.5, 7)

	seq := NewLayout(d, n, 8, 3, Dispatcher{})
	par := NewLayout(d, n, 8, 3, Dispatcher{Parallel: true, MaxWorkers: 4})

	if !slices.Equal(seq.Rows, par.Rows) || !slices.Equal(seq.Cols, par.Cols) {
		t.Error("parallel layout differs from sequential layout")
	}
}

// Sizes past one transpose strip, including a ragged last strip.
func TestNewLayoutTransposeAcrossStrips(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	disps := map[string]Dispatcher{
		"sequential": {},
		"parallel":   {Parallel: true, MaxWorkers: 4},
		"pool":       {Parallel: true, Executor: pool},
	}
	strip := matmul.TransposeRowsPerStrip
	for _, n := range []int{strip - 1, strip + 1, 2*strip + 3, 3*strip - 5} {
		d := make([]float32, n*n)
		for i := range d {
			d[i] = float32(i)
		}
		for name, disp := range disps {
			t.Run(fmt.Sprintf("%s/n=%d", name, n), func(t *testing.T) {
				l := NewLayout(d, n, 8, 3, disp)
				for i := range l.Height {
					col := l.Col(i)
					for c := range l.Stride {
						want := inf
						if i < n && c < n {
							want = d[c*n+i]
						}
						if col[c] != want {
							t.Fatalf("Cols[%d][%d] = %v, want %v", i, c, col[c], want)
						}
					}
				}
			})
		}
	}
}

func TestNewLayoutTooLarge(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrTooLarge) {
			t.Errorf("recovered %v, want ErrTooLarge", r)
		}
	}()
	NewLayout(nil, math.MaxInt/2, 4, 3, Dispatcher{})
}

func TestRoundUp(t *testing.T) {
	tests := []struct{ n, unit, want int }{
		{0, 4, 0}, {1, 4, 4}, {4, 4, 4}, {5, 4, 8}, {7, 3, 9}, {9, 3, 9}, {5, 1, 5},
	}
	for _, tt := range tests {
		if got := roundUp(tt.n, tt.unit); got != tt.want {
			t.Errorf("roundUp(%d, %d) = %d, want %d", tt.n, tt.unit, got, tt.want)
		}
	}
}
