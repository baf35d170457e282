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
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

var benchSizes = []int{64, 128, 256, 512}

func BenchmarkStep(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	for _, n := range benchSizes {
		d := randomDistances(n, 0.3, 1)
		r := make([]float32, n*n)
		for _, k := range Kernels() {
			configs := []struct {
				name string
				s    *Stepper
			}{
				{"sequential", New(WithKernel(k), WithParallel(false))},
				{"parallel", New(WithKernel(k))},
				{"pool", New(WithKernel(k), WithExecutor(pool))},
			}
			for _, c := range configs {
				b.Run(fmt.Sprintf("%s/%s/%d", k.Name(), c.name, n), func(b *testing.B) {
					// Throughput is per output byte.
					b.SetBytes(int64(n) * int64(n) * 4)
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						c.s.Step(r, d, n)
					}
				})
			}
		}
	}
}

func BenchmarkStepReference(b *testing.B) {
	for _, n := range []int{64, 128} {
		d := randomDistances(n, 0.3, 1)
		r := make([]float32, n*n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				StepReference(r, d, n)
			}
		})
	}
}

func BenchmarkNewLayout(b *testing.B) {
	for _, n := range []int{256, 1024} {
		d := randomDistances(n, 0.3, 1)
		for _, k := range Kernels() {
			b.Run(fmt.Sprintf("%s/%d", k.Name(), n), func(b *testing.B) {
				disp := Dispatcher{Parallel: true}
				for i := 0; i < b.N; i++ {
					_ = NewLayout(d, n, k.Unit(), k.RowGroup(), disp)
				}
			})
		}
	}
}
