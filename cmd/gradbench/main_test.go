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
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-gradient/gradient"
	"github.com/ajroetker/go-gradient/matrix"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

var (
	timingLine = regexp.MustCompile(`(?m)^Computation time for (Dx|Dy): \d+\.\d{8} seconds$`)
	rangeLine  = regexp.MustCompile(`(?m)^(Dx|Dy) min: -?\d+, (Dx|Dy) max: -?\d+$`)
)

func TestRunPrintsReport(t *testing.T) {
	out, _, err := execute(t, "64", "48", "--seed=7")
	require.NoError(t, err)
	require.Len(t, timingLine.FindAllString(out, -1), 2)
	require.Len(t, rangeLine.FindAllString(out, -1), 2)
}

func TestRunVerifyWithPool(t *testing.T) {
	out, _, err := execute(t, "300", "200", "--seed=1", "--workers=4", "--grain=16", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "Range check passed")
}

func TestRunTransposeMatchesDirect(t *testing.T) {
	direct, _, err := execute(t, "50", "70", "--seed=3")
	require.NoError(t, err)
	viaT, _, err := execute(t, "50", "70", "--seed=3", "--transpose")
	require.NoError(t, err)

	require.Equal(t, rangeLine.FindAllString(direct, -1), rangeLine.FindAllString(viaT, -1))
}

func TestRunShortAxis(t *testing.T) {
	out, _, err := execute(t, "1", "5", "--seed=2")
	require.NoError(t, err)
	require.Contains(t, out, "Dy: empty (0x5)")
	require.Regexp(t, `Dx min: -?\d+, Dx max: -?\d+`, out)

	stdout, stderr, err := execute(t, "1", "5", "--strict")
	require.Error(t, err)
	require.ErrorIs(t, err, gradient.ErrTooFewRows)
	require.Contains(t, stderr, "fewer than 3 rows")
	require.NotContains(t, stdout+stderr, "Usage:")
}

func TestRunVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "8", "8", "--seed=4", "-v")
	require.NoError(t, err)
	require.Contains(t, stderr, "gradbench: starting")
	require.Contains(t, stderr, "axis=rows")
	require.Contains(t, stderr, "axis=cols")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"one arg", []string{"10"}},
		{"three args", []string{"10", "10", "10"}},
		{"not an integer", []string{"10", "abc"}},
		{"float", []string{"1.5", "10"}},
		{"zero", []string{"0", "10"}},
		{"negative", []string{"10", "-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, stderr, "Error:")
			require.Contains(t, stdout+stderr, "Usage:")
		})
	}
}

func TestParseDims(t *testing.T) {
	rows, cols, err := parseDims([]string{"4", "2"})
	require.NoError(t, err)
	require.Equal(t, 4, rows)
	require.Equal(t, 2, cols)

	_, _, err = parseDims([]string{"4"})
	require.Error(t, err)
}

func TestRandomMatrixDeterministic(t *testing.T) {
	a := randomMatrix(17, 29, 99)
	b := randomMatrix(17, 29, 99)
	c := randomMatrix(17, 29, 100)

	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, c))
	require.Equal(t, "17x29", a.Shape())
}

func TestRandomMatrixCoversRange(t *testing.T) {
	m := randomMatrix(64, 64, 5)
	var seen [256]bool
	for i := 0; i < m.Rows(); i++ {
		for _, v := range m.RowSlice(i) {
			seen[v] = true
		}
	}
	missing := 0
	for _, s := range seen {
		if !s {
			missing++
		}
	}
	// 4096 uniform draws leave a given value unseen with probability ~1e-7.
	require.Zero(t, missing)
}
