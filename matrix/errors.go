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

import "errors"

// Every message is prefixed with "matrix: ". Callers add context with
// fmt.Errorf("op: %w", err) and match with errors.Is.
var (
	// ErrRagged is returned when input rows do not all have the same length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrSampleRange is returned when an input sample does not fit the
	// unsigned 8-bit range [0, 255].
	ErrSampleRange = errors.New("matrix: sample outside [0, 255]")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
