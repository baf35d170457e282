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

// Package minplus computes one relaxation step of the min-plus (tropical)
// matrix product used by matrix-based all-pairs shortest path algorithms:
//
//	R[i,j] = min over k of (D[i,k] + D[k,j])
//
// D and R are n×n row-major float32 matrices. Positive infinity marks an
// unreachable pair and is the identity of the min reduction. A sum that is
// NaN (a -Inf weight meeting +Inf) never wins the reduction, so every kernel
// agrees with StepReference on such inputs.
//
// Example usage:
//
//	d := make([]float32, n*n) // row-major distances, +Inf for "no edge"
//	r := make([]float32, n*n) // output, fully overwritten
//
//	minplus.Step(r, d, n)
//
// Each call pads D to the kernel's tiling unit, builds a transposed copy so
// the second operand is read row-wise, and fans disjoint row groups out to
// workers. Two kernels implement the arithmetic:
//   - ILP: scalar, four independent accumulators per output cell
//   - Tiled: hwy vectors, 3×3 output tiles with nine vector accumulators,
//     dispatched to per-target code generated by hwygen
//
// Auto picks Tiled when a SIMD dispatch level is active and ILP otherwise.
package minplus
