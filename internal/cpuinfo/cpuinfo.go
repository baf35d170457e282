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

// Package cpuinfo reports the CPU features and hwy dispatch target that
// decide which min-plus kernel runs.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sys/cpu"
)

// Feature is one named CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Info describes the host as seen by the kernels.
type Info struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Level    hwy.DispatchLevel
	Target   string
	Width    int // SIMD register width in bytes
	Lanes    int // float32 lanes per hwy vector
	Features []Feature
}

// Detect collects Info for the running process.
func Detect() Info {
	info := Info{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
		Level:  hwy.CurrentLevel(),
		Target: hwy.CurrentName(),
		Width:  hwy.CurrentWidth(),
		Lanes:  hwy.MaxLanes[float32](),
	}
	switch runtime.GOARCH {
	case "arm64":
		info.Features = arm64Features()
	case "amd64":
		info.Features = amd64Features()
	}
	return info
}

// SIMD reports whether hwy dispatched to a vector target.
func (i Info) SIMD() bool {
	return i.Level != hwy.DispatchScalar
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FP", cpu.ARM64.HasFP, "floating point"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON"},
		{"SVE", cpu.ARM64.HasSVE, "scalable vectors"},
		{"SVE2", cpu.ARM64.HasSVE2, ""},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, ""},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, ""},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
		{"AVX512BW", cpu.X86.HasAVX512BW, ""},
		{"AVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}

// Print writes a human-readable report to w.
func (i Info) Print(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", i.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", i.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", i.NumCPU)
	fmt.Fprintf(w, "Highway dispatch level: %s\n", i.Level)
	fmt.Fprintf(w, "Highway dispatch width: %d bytes (%d float32 lanes)\n", i.Width, i.Lanes)
	if len(i.Features) == 0 {
		return
	}
	fmt.Fprintf(w, "=== golang.org/x/sys/cpu (%s) ===\n", i.GOARCH)
	for _, f := range i.Features {
		if f.Note != "" {
			fmt.Fprintf(w, "  Has%-9s %v (%s)\n", f.Name+":", f.Present, f.Note)
		} else {
			fmt.Fprintf(w, "  Has%-9s %v\n", f.Name+":", f.Present)
		}
	}
}
