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
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

func TestDispatcherCoversEveryGroupOnce(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	dispatchers := map[string]Dispatcher{
		"sequential": {},
		"errgroup":   {Parallel: true, MaxWorkers: 3},
		"gomaxprocs": {Parallel: true},
		"pool":       {Parallel: true, Executor: pool},
	}
	for name, disp := range dispatchers {
		for _, groups := range []int{1, 2, 3, 7, 64, 1000} {
			t.Run(fmt.Sprintf("%s/groups=%d", name, groups), func(t *testing.T) {
				counts := make([]int32, groups)
				disp.Run(groups, func(start, end int) {
					if start < 0 || end > groups || start >= end {
						t.Errorf("bad range [%d, %d)", start, end)
						return
					}
					for g := start; g < end; g++ {
						atomic.AddInt32(&counts[g], 1)
					}
				})
				for g, c := range counts {
					if c != 1 {
						t.Fatalf("group %d ran %d times, want 1", g, c)
					}
				}
			})
		}
	}
}

func TestDispatcherZeroGroups(t *testing.T) {
	for _, disp := range []Dispatcher{{}, {Parallel: true}} {
		called := false
		disp.Run(0, func(start, end int) {
			called = true
		})
		if called {
			t.Errorf("Run(0) with Parallel=%v called fn", disp.Parallel)
		}
	}
}

func TestDispatcherSequentialRunsInline(t *testing.T) {
	var calls [][2]int
	Dispatcher{Parallel: false, MaxWorkers: 8}.Run(10, func(start, end int) {
		calls = append(calls, [2]int{start, end})
	})
	if len(calls) != 1 || calls[0] != [2]int{0, 10} {
		t.Errorf("sequential calls = %v, want [[0 10]]", calls)
	}
}

func TestDispatcherUsesDisjointWorkers(t *testing.T) {
	const groups = 12
	var mu sync.Mutex
	var ranges [][2]int
	Dispatcher{Parallel: true, MaxWorkers: 4}.Run(groups, func(start, end int) {
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
	})
	if len(ranges) != 4 {
		t.Errorf("got %d ranges, want 4: %v", len(ranges), ranges)
	}
}

func TestDispatcherWorkers(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	tests := []struct {
		name   string
		disp   Dispatcher
		groups int
		want   int
	}{
		{"none", Dispatcher{Parallel: true}, 0, 0},
		{"sequential", Dispatcher{}, 50, 1},
		{"capped", Dispatcher{Parallel: true, MaxWorkers: 4}, 50, 4},
		{"few groups", Dispatcher{Parallel: true, MaxWorkers: 4}, 2, 2},
		{"default", Dispatcher{Parallel: true}, 1 << 20, runtime.GOMAXPROCS(0)},
		{"pool", Dispatcher{Parallel: true, Executor: pool}, 50, 3},
	}
	for _, tt := range tests {
		if got := tt.disp.Workers(tt.groups); got != tt.want {
			t.Errorf("%s: Workers(%d) = %d, want %d", tt.name, tt.groups, got, tt.want)
		}
	}
}
