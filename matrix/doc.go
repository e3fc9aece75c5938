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

// Package matrix provides dense 2D sample storage with lane-aligned rows.
//
// A Matrix[T] holds R rows and C columns in row-major order. Each row starts
// at a multiple of Stride() elements, where the stride is C rounded up to the
// vector lane count for T (see hwy.MaxLanes). Padding elements after column
// C-1 are never part of the matrix: RowSlice hides them, Row exposes them for
// kernels that prefer whole-vector access.
//
// Either dimension may be zero without losing the other one, so the empty
// result of a valid-mode convolution keeps its shape (for example 0x3).
//
// # Construction
//
//	m := matrix.New[uint8](480, 640)
//	m, err := matrix.FromRows([][]uint8{{1, 2}, {3, 4}})
//	m, err := matrix.FromInts([][]int{{0, 255}}) // range-checked
//
// # Errors
//
// All failures are reported through the sentinels in errors.go and must be
// matched with errors.Is.
package matrix
