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

import "github.com/ajroetker/go-gradient/hwy"

// MinMaxI16 is MinMax for response matrices, using the lane-chunked
// reduction from hwy on each row.
func MinMaxI16(m *Matrix[int16]) (lo, hi int16, ok bool) {
	for i := 0; i < m.rows; i++ {
		rlo, rhi, rok := hwy.MinMaxI16(m.RowSlice(i))
		if !rok {
			continue
		}
		if !ok {
			lo, hi, ok = rlo, rhi, true
			continue
		}
		lo = min(lo, rlo)
		hi = max(hi, rhi)
	}
	return lo, hi, ok
}
