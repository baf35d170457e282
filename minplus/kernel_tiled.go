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

import "github.com/ajroetker/go-highway/hwy"

// tileRows is the edge of the register tile: 3 rows of D against 3 columns.
const tileRows = 3

type tiledKernel struct{}

func (tiledKernel) Name() string  { return "tiled" }
func (tiledKernel) Unit() int     { return hwy.MaxLanes[float32]() }
func (tiledKernel) RowGroup() int { return tileRows }

// ComputeTile runs the generated MinPlusTile3x3 for the best target the CPU
// supports.
func (tiledKernel) ComputeTile(l *Layout, i, j int, tile []float32) {
	MinPlusTile3x3(
		l.Row(i), l.Row(i+1), l.Row(i+2),
		l.Col(j), l.Col(j+1), l.Col(j+2),
		tile,
	)
}
