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

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-gradient/hwy"
	"github.com/ajroetker/go-gradient/matrix"
)

// ConvolveRows applies the kernel down every column of m (along the row
// axis) in valid mode:
//
//	D[i][j] = int16(m[i][j]) - int16(m[i+2][j]),  0 <= i < R-2
//
// The result has max(R-2, 0) rows and C columns. With fewer than 3 rows it is
// empty, or ErrTooFewRows under WithStrict(true).
func ConvolveRows(m *matrix.Matrix[uint8], opts ...Option) (*matrix.Matrix[int16], error) {
	if m == nil {
		return nil, fmt.Errorf("ConvolveRows: %w", ErrNilMatrix)
	}
	cfg := newConfig(opts)
	if m.Rows() < kernelSize {
		if cfg.strict {
			return nil, fmt.Errorf("ConvolveRows: %s input: %w", m.Shape(), ErrTooFewRows)
		}
		logShortAxis("rows", m)
		return matrix.New[int16](0, m.Cols()), nil
	}
	return convolveRows(m, cfg, "rows"), nil
}

// convolveRows is the primitive proper; m has at least kernelSize rows.
func convolveRows(m *matrix.Matrix[uint8], cfg config, axis string) *matrix.Matrix[int16] {
	out := matrix.New[int16](m.Rows()-kernelSize+1, m.Cols())
	cfg.pool.ParallelForGrain(out.Rows(), cfg.grain, func(start, end int) {
		for i := start; i < end; i++ {
			hwy.SubWidenU8(out.RowSlice(i), m.RowSlice(i), m.RowSlice(i+kernelSize-1))
		}
	})
	logResponse(axis, m, out, cfg)
	return out
}

// Dy returns the vertical response of m, shape (R-2) x C.
// It is ConvolveRows under its axis name.
func Dy(m *matrix.Matrix[uint8], opts ...Option) (*matrix.Matrix[int16], error) {
	d, err := ConvolveRows(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("Dy: %w", err)
	}
	return d, nil
}

// Dx returns the horizontal response of m, shape R x (C-2):
//
//	Dx[i][j] = int16(m[i][j]) - int16(m[i][j+2])
//
// Each row is handled as two views of itself offset by two columns, which
// gives the same values as DxViaTranspose without the two transposes.
// With fewer than 3 columns the result is empty, or ErrTooFewCols under
// WithStrict(true).
func Dx(m *matrix.Matrix[uint8], opts ...Option) (*matrix.Matrix[int16], error) {
	if m == nil {
		return nil, fmt.Errorf("Dx: %w", ErrNilMatrix)
	}
	cfg := newConfig(opts)
	if m.Cols() < kernelSize {
		if cfg.strict {
			return nil, fmt.Errorf("Dx: %s input: %w", m.Shape(), ErrTooFewCols)
		}
		logShortAxis("cols", m)
		return matrix.New[int16](m.Rows(), 0), nil
	}

	out := matrix.New[int16](m.Rows(), m.Cols()-kernelSize+1)
	cfg.pool.ParallelForGrain(out.Rows(), cfg.grain, func(start, end int) {
		for i := start; i < end; i++ {
			row := m.RowSlice(i)
			hwy.SubWidenU8(out.RowSlice(i), row, row[kernelSize-1:])
		}
	})
	logResponse("cols", m, out, cfg)
	return out, nil
}

// DxViaTranspose computes the horizontal response by transposing m, applying
// the row-axis primitive and transposing the result back. It matches Dx
// exactly and exists as the reference formulation of the column axis.
func DxViaTranspose(m *matrix.Matrix[uint8], opts ...Option) (*matrix.Matrix[int16], error) {
	if m == nil {
		return nil, fmt.Errorf("DxViaTranspose: %w", ErrNilMatrix)
	}
	cfg := newConfig(opts)
	if m.Cols() < kernelSize {
		if cfg.strict {
			return nil, fmt.Errorf("DxViaTranspose: %s input: %w", m.Shape(), ErrTooFewCols)
		}
		logShortAxis("cols", m)
		return matrix.New[int16](m.Rows(), 0), nil
	}
	return convolveRows(m.Transpose(), cfg, "cols").Transpose(), nil
}

// Gradients computes Dx and Dy of m concurrently. Both share the options,
// so a pool passed with WithPool serves the two axes at once.
func Gradients(m *matrix.Matrix[uint8], opts ...Option) (dx, dy *matrix.Matrix[int16], err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		dx, err = Dx(m, opts...)
		return err
	})
	g.Go(func() error {
		var err error
		dy, err = Dy(m, opts...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("Gradients: %w", err)
	}
	return dx, dy, nil
}

// CheckRange returns ErrResponseRange if any value of d lies outside
// [ResponseMin, ResponseMax]. An empty response always passes.
func CheckRange(d *matrix.Matrix[int16]) error {
	if d == nil {
		return fmt.Errorf("CheckRange: %w", ErrNilMatrix)
	}
	lo, hi, ok := matrix.MinMaxI16(d)
	if !ok {
		return nil
	}
	if lo < ResponseMin || hi > ResponseMax {
		return fmt.Errorf("CheckRange: values span [%d, %d]: %w", lo, hi, ErrResponseRange)
	}
	return nil
}

func logShortAxis(axis string, m *matrix.Matrix[uint8]) {
	Logger().Warn("gradient: axis shorter than kernel, response is empty",
		"axis", axis,
		"input", m.Shape(),
	)
}

func logResponse(axis string, in *matrix.Matrix[uint8], out *matrix.Matrix[int16], cfg config) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("gradient: response computed",
		"axis", axis,
		"input", in.Shape(),
		"output", out.Shape(),
		"dispatch", hwy.CurrentName(),
		"workers", cfg.pool.NumWorkers(),
	)
}
