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
	"runtime"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"golang.org/x/sync/errgroup"
)

// Dispatcher fans independent row groups out to workers.
//
// Groups never share output cells, so the only coordination is the join at
// the end of Run. A sequential Dispatcher produces bit-identical results.
type Dispatcher struct {
	// Parallel selects fan-out across workers. When false every group runs
	// on the calling goroutine, in order.
	Parallel bool

	// Executor, if set, is a persistent pool used instead of per-call
	// goroutines.
	Executor workerpool.Executor

	// MaxWorkers caps per-call goroutines when Executor is nil.
	// <= 0 means GOMAXPROCS.
	MaxWorkers int
}

// Workers returns how many workers Run uses for the given number of groups.
func (d Dispatcher) Workers(groups int) int {
	if groups <= 0 {
		return 0
	}
	if !d.Parallel {
		return 1
	}
	if d.Executor != nil {
		return max(1, min(d.Executor.NumWorkers(), groups))
	}
	workers := d.MaxWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return min(workers, groups)
}

// Run calls fn over contiguous, disjoint ranges [start, end) covering
// [0, groups) and returns once every call has finished.
func (d Dispatcher) Run(groups int, fn func(start, end int)) {
	if groups <= 0 {
		return
	}
	if !d.Parallel {
		fn(0, groups)
		return
	}
	if d.Executor != nil {
		d.Executor.ParallelFor(groups, fn)
		return
	}

	workers := d.Workers(groups)
	if workers == 1 {
		fn(0, groups)
		return
	}

	// One contiguous strip per worker keeps each worker's output rows adjacent.
	chunk := (groups + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < groups; start += chunk {
		end := min(start+chunk, groups)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	// fn cannot fail, so Wait only joins the workers.
	_ = g.Wait()
}
