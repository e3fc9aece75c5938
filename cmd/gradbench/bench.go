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

package main

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ajroetker/go-gradient/matrix"
)

// response is one timed gradient result.
type response struct {
	name    string
	elapsed time.Duration
	values  *matrix.Matrix[int16]
}

func wrap(m *matrix.Matrix[int16], err error) (*response, error) {
	if err != nil {
		return nil, err
	}
	return &response{values: m}, nil
}

// timeit runs fn once and records its wall-clock duration.
func timeit(name string, fn func() (*response, error)) (*response, error) {
	start := time.Now()
	r, err := fn()
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	r.name = name
	r.elapsed = elapsed
	return r, nil
}

// summary formats the value range of the response.
func (r *response) summary() string {
	lo, hi, ok := matrix.MinMaxI16(r.values)
	if !ok {
		return fmt.Sprintf("%s: empty (%s)", r.name, r.values.Shape())
	}
	return fmt.Sprintf("%s min: %d, %s max: %d", r.name, lo, r.name, hi)
}

// randomMatrix fills a rows x cols matrix with samples drawn uniformly from
// [0, 255], eight samples per 64-bit draw.
func randomMatrix(rows, cols int, seed uint64) *matrix.Matrix[uint8] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := matrix.New[uint8](rows, cols)

	var buf [8]byte
	for i := 0; i < rows; i++ {
		row := m.RowSlice(i)
		for j := 0; j < len(row); j += len(buf) {
			binary.LittleEndian.PutUint64(buf[:], rng.Uint64())
			copy(row[j:], buf[:])
		}
	}
	return m
}
