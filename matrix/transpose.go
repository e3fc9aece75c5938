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

// transposeBlock is the tile edge used by Transpose. A 32x32 tile of 8-bit
// samples fits in a single 1 KiB block on both sides of the copy.
const transposeBlock = 32

// Transpose returns a new cols x rows matrix with out[j][i] = m[i][j].
// The copy walks square tiles so reads and writes both stay cache-local.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := New[T](m.cols, m.rows)
	if m.Empty() {
		return out
	}

	for i0 := 0; i0 < m.rows; i0 += transposeBlock {
		i1 := min(i0+transposeBlock, m.rows)
		for j0 := 0; j0 < m.cols; j0 += transposeBlock {
			j1 := min(j0+transposeBlock, m.cols)
			for i := i0; i < i1; i++ {
				src := m.data[i*m.stride : i*m.stride+m.cols]
				for j := j0; j < j1; j++ {
					out.data[j*out.stride+i] = src[j]
				}
			}
		}
	}
	return out
}
