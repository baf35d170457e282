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
	"log/slog"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

type config struct {
	kernel     Kernel
	parallel   bool
	executor   workerpool.Executor
	maxWorkers int
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{parallel: true}
}

// Option configures a Stepper.
type Option func(*config)

// WithKernel fixes the kernel. nil restores size- and dispatch-based
// selection (see Auto).
func WithKernel(k Kernel) Option {
	return func(c *config) {
		c.kernel = k
	}
}

// WithParallel selects fan-out across workers (true, the default) or running
// every row group on the calling goroutine (false). Both produce identical
// results.
func WithParallel(parallel bool) Option {
	return func(c *config) {
		c.parallel = parallel
	}
}

// WithExecutor runs row groups on a persistent pool instead of spawning
// goroutines per call. Pass nil to go back to per-call goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	s := minplus.New(minplus.WithExecutor(pool))
//	for range steps {
//	    s.Step(r, d, n)
//	    r, d = d, r
//	}
func WithExecutor(e workerpool.Executor) Option {
	return func(c *config) {
		c.executor = e
	}
}

// WithMaxWorkers caps the per-call goroutines. <= 0 means GOMAXPROCS.
// Ignored when an executor is set.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		c.maxWorkers = n
	}
}

// WithLogger logs one Debug record per step. nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
