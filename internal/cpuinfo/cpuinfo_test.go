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

package cpuinfo

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

func TestDetect(t *testing.T) {
	info := Detect()

	if info.GOARCH != runtime.GOARCH || info.GOOS != runtime.GOOS {
		t.Errorf("Detect() = %s/%s, want %s/%s", info.GOOS, info.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if info.Lanes <= 0 || info.Lanes*4 != info.Width {
		t.Errorf("Lanes = %d, Width = %d bytes: want Width == 4*Lanes > 0", info.Lanes, info.Width)
	}
	if info.SIMD() != (hwy.CurrentLevel() != hwy.DispatchScalar) {
		t.Errorf("SIMD() = %v at level %s", info.SIMD(), hwy.CurrentLevel())
	}
	switch runtime.GOARCH {
	case "amd64", "arm64":
		if len(info.Features) == 0 {
			t.Errorf("no features reported on %s", runtime.GOARCH)
		}
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	info := Info{
		GOOS:   "linux",
		GOARCH: "amd64",
		NumCPU: 8,
		Level:  hwy.DispatchAVX2,
		Width:  32,
		Lanes:  8,
		Features: []Feature{
			{Name: "AVX2", Present: true},
			{Name: "ASIMD", Present: false, Note: "NEON baseline"},
		},
	}
	info.Print(&buf)

	out := buf.String()
	for _, want := range []string{
		"GOARCH: amd64",
		"NumCPU: 8",
		"Highway dispatch level: avx2",
		"32 bytes (8 float32 lanes)",
		"HasAVX2:",
		"(NEON baseline)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Print output missing %q:\n%s", want, out)
		}
	}
}
