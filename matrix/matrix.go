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

package matrix

import (
	"fmt"

	"github.com/ajroetker/go-gradient/hwy"
)

// Matrix is a row-major 2D array with lane-aligned rows.
type Matrix[T hwy.Lanes] struct {
	data   []T
	rows   int
	cols   int
	stride int // elements per row, padding included
}

// New creates a zeroed rows x cols matrix. Negative dimensions are treated as
// zero; a zero dimension keeps the other one.
func New[T hwy.Lanes](rows, cols int) *Matrix[T] {
	rows, cols = max(rows, 0), max(cols, 0)

	stride := 0
	if cols > 0 {
		lanes := hwy.MaxLanes[T]()
		stride = ((cols + lanes - 1) / lanes) * lanes
	}

	var data []T
	if rows > 0 && stride > 0 {
		data = make([]T, rows*stride)
	}

	return &Matrix[T]{
		data:   data,
		rows:   rows,
		cols:   cols,
		stride: stride,
	}
}

// FromRows copies a slice of equally long rows into a new matrix.
// An input with no rows yields a 0x0 matrix.
func FromRows[T hwy.Lanes](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0), nil
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(r), cols, ErrRagged)
		}
	}

	m := New[T](len(rows), cols)
	for i, r := range rows {
		copy(m.RowSlice(i), r)
	}
	return m, nil
}

// FromInts builds an 8-bit sample matrix from plain ints, rejecting any value
// outside [0, 255] instead of truncating it.
func FromInts(rows [][]int) (*Matrix[uint8], error) {
	if len(rows) == 0 {
		return New[uint8](0, 0), nil
	}
	cols := len(rows[0])
	m := New[uint8](len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromInts: row %d has %d columns, want %d: %w", i, len(r), cols, ErrRagged)
		}
		dst := m.RowSlice(i)
		for j, v := range r {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("FromInts: value %d at (%d, %d): %w", v, i, j, ErrSampleRange)
			}
			dst[j] = uint8(v)
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Stride returns the number of elements per row (including padding).
func (m *Matrix[T]) Stride() int {
	return m.stride
}

// Empty reports whether the matrix holds no elements.
func (m *Matrix[T]) Empty() bool {
	return m.rows == 0 || m.cols == 0
}

// Shape returns "RxC", for logs and messages.
func (m *Matrix[T]) Shape() string {
	return fmt.Sprintf("%dx%d", m.rows, m.cols)
}

// Row returns a mutable slice for row i, padding included.
// Padding elements can be read and written but are not part of the matrix.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows || m.data == nil {
		return nil
	}
	start := i * m.stride
	return m.data[start : start+m.stride]
}

// RowSlice returns a mutable slice for row i limited to Cols() elements.
func (m *Matrix[T]) RowSlice(i int) []T {
	if i < 0 || i >= m.rows || m.data == nil {
		return nil
	}
	start := i * m.stride
	return m.data[start : start+m.cols]
}

// At returns the element at (row, col).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		var zero T
		return zero, fmt.Errorf("At(%d, %d) on %s: %w", row, col, m.Shape(), ErrOutOfRange)
	}
	return m.data[row*m.stride+col], nil
}

// Set stores v at (row, col).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("Set(%d, %d) on %s: %w", row, col, m.Shape(), ErrOutOfRange)
	}
	m.data[row*m.stride+col] = v
	return nil
}

// Fill sets every element, padding included, to v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone creates a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		stride: m.stride,
	}
	if m.data != nil {
		c.data = make([]T, len(m.data))
		copy(c.data, m.data)
	}
	return c
}

// ToRows copies the matrix out as a slice of rows without padding.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = make([]T, m.cols)
		copy(out[i], m.RowSlice(i))
	}
	return out
}

// SameShape returns true if both matrices have the same dimensions.
func SameShape[T, U hwy.Lanes](a *Matrix[T], b *Matrix[U]) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Equal reports whether a and b have the same shape and elements.
// Padding is ignored.
func Equal[T hwy.Lanes](a, b *Matrix[T]) bool {
	if !SameShape(a, b) {
		return false
	}
	for i := 0; i < a.rows; i++ {
		ra, rb := a.RowSlice(i), b.RowSlice(i)
		for j := range ra {
			if ra[j] != rb[j] {
				return false
			}
		}
	}
	return true
}

// MinMax returns the smallest and largest element. ok is false for an empty
// matrix.
func MinMax[T hwy.Lanes](m *Matrix[T]) (lo, hi T, ok bool) {
	if m.Empty() {
		return lo, hi, false
	}
	lo, hi = m.data[0], m.data[0]
	for i := 0; i < m.rows; i++ {
		for _, v := range m.RowSlice(i) {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi, true
}
