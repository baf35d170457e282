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

// Command minplusbench times the min-plus step kernels on a random distance
// matrix and checks them against the triple-loop reference.
//
// Usage:
//
//	minplusbench -n 1024 -kernel all -iters 5
//	minplusbench -n 97 -kernel tiled -parallel=false   # single goroutine
//	minplusbench -cpu                                  # print CPU features
//
// Every selected kernel runs on the same input; the output of each is
// compared with the reference (and therefore with each other) when -verify is
// set.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	size     = flag.Int("n", 512, "Matrix dimension (at most 16384)")
	kernels  = flag.String("kernel", "all", "Comma-separated kernels (ilp,tiled,auto) or 'all'")
	parallel = flag.Bool("parallel", true, "Fan row groups out across workers")
	workers  = flag.Int("workers", 0, "Worker cap for per-call goroutines (0 = GOMAXPROCS)")
	usePool  = flag.Bool("pool", false, "Run row groups on a persistent worker pool")
	iters    = flag.Int("iters", 3, "Timed steps per kernel")
	seed     = flag.Uint64("seed", 1, "Random seed for the input matrix")
	density  = flag.Float64("density", 0.3, "Fraction of off-diagonal cells holding a finite edge")
	verify   = flag.Bool("verify", true, "Compare every kernel against the reference implementation")
	showCPU  = flag.Bool("cpu", false, "Print CPU features and the hwy dispatch target")
	logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logJSON  = flag.Bool("log-json", false, "Emit JSON logs instead of text")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*logLevel, *logJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	cfg := config{
		N:        *size,
		Kernels:  *kernels,
		Parallel: *parallel,
		Workers:  *workers,
		Pool:     *usePool,
		Iters:    *iters,
		Seed:     *seed,
		Density:  *density,
		Verify:   *verify,
		ShowCPU:  *showCPU,
	}
	if err := run(cfg, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the slog logger for the command. Logs go to stderr so the
// report on stdout stays machine-readable.
func newLogger(level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}
