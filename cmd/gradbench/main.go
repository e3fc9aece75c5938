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

// Command gradbench times the fixed-kernel gradient on a random matrix.
//
// Usage:
//
//	gradbench ROWS COLS [flags]
//	gradbench 10000 10000 --workers=-1 --verify
//	HWY_NO_SIMD=1 gradbench 4096 4096   # force scalar lane width
//
// It generates a ROWS x COLS matrix of uniformly random 8-bit samples,
// computes the horizontal (Dx) and vertical (Dy) responses, and prints the
// elapsed time of each followed by the min and max of each response.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
