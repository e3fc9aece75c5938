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

package gradient

import "errors"

var (
	// ErrNilMatrix is returned when a nil input matrix is passed.
	ErrNilMatrix = errors.New("gradient: nil matrix")

	// ErrTooFewRows is returned in strict mode when the input has fewer rows
	// than the kernel support.
	ErrTooFewRows = errors.New("gradient: fewer than 3 rows")

	// ErrTooFewCols is returned in strict mode when the input has fewer
	// columns than the kernel support.
	ErrTooFewCols = errors.New("gradient: fewer than 3 columns")

	// ErrResponseRange is returned by CheckRange when a response value lies
	// outside [ResponseMin, ResponseMax].
	ErrResponseRange = errors.New("gradient: response outside [-255, 255]")
)
