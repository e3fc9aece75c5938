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

package gradient_test

import (
	"fmt"

	"github.com/ajroetker/go-gradient/gradient"
	"github.com/ajroetker/go-gradient/matrix"
)

func ExampleGradients() {
	m, err := matrix.FromRows([][]uint8{
		{5, 10, 15},
		{20, 30, 40},
		{1, 2, 3},
		{100, 50, 0},
	})
	if err != nil {
		panic(err)
	}

	dx, dy, err := gradient.Gradients(m)
	if err != nil {
		panic(err)
	}
	fmt.Println("Dx:", dx.ToRows())
	fmt.Println("Dy:", dy.ToRows())
	// Output:
	// Dx: [[-10] [-20] [-2] [100]]
	// Dy: [[4 8 12] [-80 -20 40]]
}

func ExampleDy_shortInput() {
	m := matrix.New[uint8](2, 3)

	dy, _ := gradient.Dy(m)
	fmt.Println(dy.Shape())

	_, err := gradient.Dy(m, gradient.WithStrict(true))
	fmt.Println(err)
	// Output:
	// 0x3
	// Dy: ConvolveRows: 2x3 input: gradient: fewer than 3 rows
}
