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

// Package gradient computes first-difference responses of 8-bit matrices.
//
// The kernel is fixed to [-1, 0, 1] and applied in valid mode with stride 1.
// Because the centre tap is zero and the outer taps are +1 and -1, every
// output element is the difference of two inputs two positions apart:
//
//	Dy[i][j] = M[i][j] - M[i+2][j]   shape (R-2) x C
//	Dx[i][j] = M[i][j] - M[i][j+2]   shape R x (C-2)
//
// so each response is one widening subtraction of two shifted views of the
// input instead of a sliding multiply-accumulate.
//
// Inputs are never modified. Results are fresh int16 matrices whose values
// lie in [ResponseMin, ResponseMax].
//
// # Short axes
//
// An axis shorter than the kernel has no fully overlapping window. By default
// the response along that axis is empty (0 rows for Dy, 0 columns for Dx)
// and keeps the other dimension. WithStrict(true) turns this into
// ErrTooFewRows or ErrTooFewCols.
//
// # Parallelism
//
// Output rows are independent. Pass WithPool to split them across a
// workerpool.Pool; each worker writes a disjoint row range.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	dx, dy, err := gradient.Gradients(m, gradient.WithPool(pool))
package gradient

// Kernel is the difference operator applied along each axis.
var Kernel = [3]int16{-1, 0, 1}

// kernelSize is the kernel support; valid mode drops kernelSize-1 positions.
const kernelSize = len(Kernel)

const (
	// ResponseMin is the smallest possible response value (0 - 255).
	ResponseMin = -255

	// ResponseMax is the largest possible response value (255 - 0).
	ResponseMax = 255
)
