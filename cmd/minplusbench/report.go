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
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// printReport writes one row per kernel: timings, throughput and the
// verification outcome.
func printReport(w io.Writer, cfg config, results []result) {
	mode := "sequential"
	switch {
	case cfg.Parallel && cfg.Pool:
		mode = "pool"
	case cfg.Parallel:
		mode = "parallel"
	}
	fmt.Fprintf(w, "min-plus step: n=%d density=%.2f seed=%d mode=%s iters=%d\n",
		cfg.N, cfg.Density, cfg.Seed, mode, cfg.Iters)

	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Kernel\tWorkers\tBest\tMean\tGop/s\tCheck")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%.2f\t%s\n",
			title.String(res.Kernel),
			res.Workers,
			res.Best.Round(time.Microsecond),
			res.Mean.Round(time.Microsecond),
			gops(res.N, res.Best),
			checkLabel(cfg.Verify, res),
		)
	}
	tw.Flush()
}

// gops is billions of add+min pairs per second: a step does n^3 of each.
func gops(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	ops := 2 * float64(n) * float64(n) * float64(n)
	return ops / d.Seconds() / 1e9
}

func checkLabel(verify bool, res result) string {
	switch {
	case !verify:
		return "skipped"
	case res.Verified:
		return "ok"
	default:
		return "MISMATCH"
	}
}
