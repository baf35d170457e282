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
	"errors"
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrNegativeDimension is returned when n < 0.
	ErrNegativeDimension = errors.New("minplus: negative dimension")

	// ErrShortBuffer is returned when r or d holds fewer than n*n cells.
	ErrShortBuffer = errors.New("minplus: buffer shorter than n*n")

	// ErrOverlap is returned when the first n*n cells of r and d share memory.
	ErrOverlap = errors.New("minplus: input and output buffers overlap")

	// ErrTooLarge is returned when the padded scratch size overflows int.
	ErrTooLarge = errors.New("minplus: matrix too large")

	// ErrUnknownKernel is returned by KernelByName for unregistered names.
	ErrUnknownKernel = errors.New("minplus: unknown kernel")
)

// Validate checks the Step preconditions and reports the first violation.
//
// Step itself panics on the same violations; Validate lets callers that read
// sizes from untrusted input report them instead.
func Validate(r, d []float32, n int) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeDimension)
	}
	if n == 0 {
		return nil
	}
	if n > math.MaxInt/n {
		return fmt.Errorf("n=%d: %w", n, ErrTooLarge)
	}
	cells := n * n
	if len(d) < cells {
		return fmt.Errorf("d has %d cells, need %d: %w", len(d), cells, ErrShortBuffer)
	}
	if len(r) < cells {
		return fmt.Errorf("r has %d cells, need %d: %w", len(r), cells, ErrShortBuffer)
	}
	if overlaps(r[:cells], d[:cells]) {
		return ErrOverlap
	}
	return nil
}

// overlaps reports whether two non-empty slices share any element.
func overlaps(a, b []float32) bool {
	const size = unsafe.Sizeof(float32(0))
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}

// mustValidate panics with the Validate error, prefixed by the operation name.
// The panic value is an error wrapping one of the sentinels above.
func mustValidate(op string, r, d []float32, n int) {
	if err := Validate(r, d, n); err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
}
