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

package hwy

// PromoteU8ToI16 widens src into dst lane by lane.
// Only min(len(dst), len(src)) elements are converted.
func PromoteU8ToI16(dst []int16, src []uint8) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	lanes := MaxLanes[int16]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		d := dst[i : i+lanes]
		s := src[i : i+lanes]
		for k := range d {
			d[k] = int16(s[k])
		}
	}
	for ; i < n; i++ {
		dst[i] = int16(src[i])
	}
}

// SubWidenU8 computes dst[i] = int16(a[i]) - int16(b[i]) for every i in dst.
//
// Both operands are widened before the subtraction, so the result covers the
// full [-255, 255] range without unsigned wraparound. a and b must hold at
// least len(dst) elements; SubWidenU8 panics otherwise, like a slice index
// out of range.
func SubWidenU8(dst []int16, a, b []uint8) {
	n := len(dst)
	if n == 0 {
		return
	}
	// Reslicing up front lets the compiler drop bounds checks in the loops.
	a, b = a[:n], b[:n]
	lanes := MaxLanes[int16]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		d := dst[i : i+lanes]
		x := a[i : i+lanes]
		y := b[i : i+lanes]
		for k := range d {
			d[k] = int16(x[k]) - int16(y[k])
		}
	}

	// Tail
	for ; i < n; i++ {
		dst[i] = int16(a[i]) - int16(b[i])
	}
}

// MinMaxI16 returns the smallest and largest value in s.
// ok is false when s is empty.
func MinMaxI16(s []int16) (lo, hi int16, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	lanes := MaxLanes[int16]()
	lo, hi = s[0], s[0]

	i := 0
	if len(s) >= lanes {
		// Per-lane accumulators, reduced once at the end.
		los := make([]int16, lanes)
		his := make([]int16, lanes)
		copy(los, s[:lanes])
		copy(his, s[:lanes])
		for i = lanes; i+lanes <= len(s); i += lanes {
			v := s[i : i+lanes]
			for k := range v {
				los[k] = min(los[k], v[k])
				his[k] = max(his[k], v[k])
			}
		}
		lo, hi = los[0], his[0]
		for k := 1; k < lanes; k++ {
			lo = min(lo, los[k])
			hi = max(hi, his[k])
		}
	}
	for ; i < len(s); i++ {
		lo = min(lo, s[i])
		hi = max(hi, s[i])
	}
	return lo, hi, true
}
