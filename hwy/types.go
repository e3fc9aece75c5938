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

// Package hwy sizes and runs the lane-chunked inner loops used by the
// gradient kernels.
//
// It detects the widest vector unit the CPU offers at init time and exposes
// it as a lane count per element type. Kernels walk their rows in chunks of
// MaxLanes elements followed by a scalar tail, a shape the Go compiler can
// keep in registers and that matches the hardware vector width.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-gradient/hwy"
//
//	dst := make([]int16, len(a))
//	hwy.SubWidenU8(dst, a, b) // dst[i] = int16(a[i]) - int16(b[i])
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}
