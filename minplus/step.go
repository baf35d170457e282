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
	"time"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Stepper runs min-plus steps with a fixed configuration.
// A Stepper holds no per-call state and is safe for concurrent use.
type Stepper struct {
	cfg config
}

// New returns a Stepper configured by opts.
func New(opts ...Option) *Stepper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stepper{cfg: cfg}
}

// Kernel returns the kernel used for an n×n step.
func (s *Stepper) Kernel(n int) Kernel {
	if s.cfg.kernel != nil {
		return s.cfg.kernel
	}
	return autoForSize(n)
}

// Dispatcher returns the row-group dispatcher built from the options.
func (s *Stepper) Dispatcher() Dispatcher {
	return Dispatcher{
		Parallel:   s.cfg.parallel,
		Executor:   s.cfg.executor,
		MaxWorkers: s.cfg.maxWorkers,
	}
}

// Step computes r[i*n+j] = min over k of d[i*n+k] + d[k*n+j].
//
// r and d must each hold at least n*n cells and must not overlap; Step
// panics before writing anything if they don't. n == 0 returns without
// touching r. Step returns once every cell of r is written.
func (s *Stepper) Step(r, d []float32, n int) {
	mustValidate("Step", r, d, n)
	if n == 0 {
		return
	}

	began := time.Now()
	k := s.Kernel(n)
	disp := s.Dispatcher()

	// All scratch is allocated here, before the first write to r.
	l := NewLayout(d, n, k.Unit(), k.RowGroup(), disp)

	groups := l.Height / k.RowGroup()
	disp.Run(groups, func(start, end int) {
		computeGroups(k, l, r, start, end)
	})

	if s.cfg.logger != nil {
		s.cfg.logger.Debug("min-plus step",
			"kernel", k.Name(),
			"n", n,
			"stride", l.Stride,
			"groups", groups,
			"workers", disp.Workers(groups),
			"parallel", disp.Parallel,
			"elapsed", time.Since(began),
		)
	}
}

var defaultStepper = New()

// Step computes one min-plus relaxation step with the default configuration:
// automatic kernel selection and parallel row groups.
//
// See Stepper.Step for the contract.
func Step(r, d []float32, n int) {
	defaultStepper.Step(r, d, n)
}

// StepWithPool is like Step but runs row groups on a persistent pool.
// A nil pool falls back to Step.
func StepWithPool(pool workerpool.Executor, r, d []float32, n int) {
	if pool == nil {
		Step(r, d, n)
		return
	}
	New(WithExecutor(pool)).Step(r, d, n)
}

// StepReference is the plain triple-loop min-plus product. It is kept for
// testing and verification; use Step for real work. Like the kernels, it
// skips NaN sums.
func StepReference(r, d []float32, n int) {
	mustValidate("StepReference", r, d, n)
	for i := range n {
		for j := range n {
			v := inf
			for k := range n {
				if s := d[i*n+k] + d[k*n+j]; s < v {
					v = s
				}
			}
			r[i*n+j] = v
		}
	}
}
