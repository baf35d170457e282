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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/ajroetker/go-minplus/internal/cpuinfo"
	"github.com/ajroetker/go-minplus/minplus"
)

var errMismatch = errors.New("result differs from reference")

// maxN bounds -n so the input, output and reference matrices (plus the
// padded layout) are checked before anything is allocated.
const maxN = 1 << 14

// config is the parsed command line.
type config struct {
	N        int
	Kernels  string
	Parallel bool
	Workers  int
	Pool     bool
	Iters    int
	Seed     uint64
	Density  float64
	Verify   bool
	ShowCPU  bool
}

func (c config) validate() error {
	if c.N < 0 {
		return fmt.Errorf("-n must be >= 0, got %d", c.N)
	}
	if c.N > maxN {
		return fmt.Errorf("-n must be <= %d, got %d: %w", maxN, c.N, minplus.ErrTooLarge)
	}
	if c.Iters <= 0 {
		return fmt.Errorf("-iters must be > 0, got %d", c.Iters)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("-density must be in [0, 1], got %v", c.Density)
	}
	return nil
}

// result is the outcome of timing one kernel.
type result struct {
	Kernel   string
	N        int
	Workers  int
	Best     time.Duration
	Mean     time.Duration
	Verified bool
	Mismatch string
}

// run executes the benchmark described by cfg and writes the report to w.
func run(cfg config, w io.Writer, logger *slog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.ShowCPU {
		cpuinfo.Detect().Print(w)
		fmt.Fprintln(w)
	}

	ks, err := parseKernels(cfg.Kernels)
	if err != nil {
		return err
	}

	n := cfg.N
	d := randomMatrix(n, cfg.Density, cfg.Seed)

	var want []float32
	if cfg.Verify {
		start := time.Now()
		want = make([]float32, n*n)
		minplus.StepReference(want, d, n)
		logger.Debug("reference computed", "n", n, "elapsed", time.Since(start))
	}

	var pool *workerpool.Pool
	if cfg.Pool {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	results := make([]result, 0, len(ks))
	for _, k := range ks {
		opts := []minplus.Option{
			minplus.WithKernel(k),
			minplus.WithParallel(cfg.Parallel),
			minplus.WithMaxWorkers(cfg.Workers),
			minplus.WithLogger(logger),
		}
		if pool != nil {
			opts = append(opts, minplus.WithExecutor(pool))
		}
		s := minplus.New(opts...)

		r := make([]float32, n*n)
		if err := minplus.Validate(r, d, n); err != nil {
			return err
		}

		res := timeKernel(s, k, r, d, n, cfg.Iters)
		if want != nil {
			res.Mismatch = firstMismatch(r, want, n)
			res.Verified = res.Mismatch == ""
		}
		logger.Info("kernel finished",
			"kernel", res.Kernel,
			"n", n,
			"workers", res.Workers,
			"best", res.Best,
			"mean", res.Mean,
			"verified", res.Verified,
		)
		results = append(results, res)
	}

	printReport(w, cfg, results)

	for _, res := range results {
		if res.Mismatch != "" {
			return fmt.Errorf("kernel %s: %w: %s", res.Kernel, errMismatch, res.Mismatch)
		}
	}
	return nil
}

// timeKernel runs iters steps of s and records best and mean wall time.
func timeKernel(s *minplus.Stepper, k minplus.Kernel, r, d []float32, n, iters int) result {
	groups := (n + k.RowGroup() - 1) / k.RowGroup()
	res := result{
		Kernel:  k.Name(),
		N:       n,
		Workers: s.Dispatcher().Workers(groups),
		Best:    time.Duration(math.MaxInt64),
	}
	var total time.Duration
	for range iters {
		start := time.Now()
		s.Step(r, d, n)
		elapsed := time.Since(start)
		total += elapsed
		res.Best = min(res.Best, elapsed)
	}
	res.Mean = total / time.Duration(iters)
	return res
}

// parseKernels resolves a comma-separated kernel list. "all" selects every
// kernel; duplicates (e.g. "auto" next to the kernel it resolves to) are
// dropped.
func parseKernels(s string) ([]minplus.Kernel, error) {
	if strings.TrimSpace(s) == "all" {
		return minplus.Kernels(), nil
	}
	var ks []minplus.Kernel
	seen := make(map[string]bool)
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := minplus.KernelByName(name)
		if err != nil {
			return nil, err
		}
		if seen[k.Name()] {
			continue
		}
		seen[k.Name()] = true
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("no kernels selected by %q", s)
	}
	return ks, nil
}

// randomMatrix returns an n×n distance matrix with a zero diagonal and
// integer weights in [1, 100] on a density fraction of the other cells.
func randomMatrix(n int, density float64, seed uint64) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	unreachable := float32(math.Inf(1))
	d := make([]float32, n*n)
	for i := range n {
		for j := range n {
			switch {
			case i == j:
				d[i*n+j] = 0
			case rng.Float64() < density:
				d[i*n+j] = float32(1 + rng.IntN(100))
			default:
				d[i*n+j] = unreachable
			}
		}
	}
	return d
}

// firstMismatch describes the first cell where got and want differ, or
// returns "" if they are identical.
func firstMismatch(got, want []float32, n int) string {
	for i := range n * n {
		if got[i] != want[i] {
			return fmt.Sprintf("R[%d,%d] = %v, want %v", i/n, i%n, got[i], want[i])
		}
	}
	return ""
}
