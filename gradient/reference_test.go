// Copyright 2025 go-gradient Authors
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

package gradient_test

import (
	"math/rand/v2"

	"github.com/ajroetker/go-gradient/matrix"
)

// correlateColumns is a general sliding-window cross-correlation of every
// column of m with k in valid mode. It knows nothing about the kernel's
// shape and serves as the reference the fast paths are checked against.
func correlateColumns(m [][]int, k []int) [][]int {
	rows := len(m)
	if rows == 0 || rows < len(k) {
		return [][]int{}
	}
	cols := len(m[0])
	out := make([][]int, rows-len(k)+1)
	for i := range out {
		out[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			acc := 0
			for t, w := range k {
				acc += w * m[i+t][j]
			}
			out[i][j] = acc
		}
	}
	return out
}

// correlateRows is correlateColumns along the other axis.
func correlateRows(m [][]int, k []int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		n := len(row) - len(k) + 1
		out[i] = make([]int, max(n, 0))
		for j := 0; j < n; j++ {
			acc := 0
			for t, w := range k {
				acc += w * row[j+t]
			}
			out[i][j] = acc
		}
	}
	return out
}

// referenceKernel is the correlation form of [-1, 0, 1] that yields
// M[i] - M[i+2].
var referenceKernel = []int{1, 0, -1}

func toInts[T int16 | uint8](rows [][]T) [][]int {
	out := make([][]int, len(rows))
	for i, r := range rows {
		out[i] = make([]int, len(r))
		for j, v := range r {
			out[i][j] = int(v)
		}
	}
	return out
}

func randomMatrix(rng *rand.Rand, rows, cols int) *matrix.Matrix[uint8] {
	m := matrix.New[uint8](rows, cols)
	for i := 0; i < rows; i++ {
		row := m.RowSlice(i)
		for j := range row {
			row[j] = uint8(rng.UintN(256))
		}
	}
	return m
}
