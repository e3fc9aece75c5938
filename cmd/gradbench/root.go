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
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-gradient/gradient"
	"github.com/ajroetker/go-gradient/hwy"
	"github.com/ajroetker/go-gradient/hwy/contrib/workerpool"
)

type options struct {
	seed      uint64
	workers   int
	grain     int
	strict    bool
	transpose bool
	verify    bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gradbench ROWS COLS",
		Short: "Time the [-1, 0, 1] gradient of a random 8-bit matrix",
		Long: `gradbench generates a ROWS x COLS matrix of random unsigned 8-bit samples,
computes its horizontal (Dx) and vertical (Dy) responses to the kernel
[-1, 0, 1] in valid mode, and reports the time taken and the value range of
each response.`,
		Args: cobra.MatchAll(cobra.ExactArgs(2), positiveIntArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; further errors are not usage errors.
			cmd.SilenceUsage = true

			rows, cols, err := parseDims(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = uint64(time.Now().UnixNano())
			}
			return run(cmd, rows, cols, opts)
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (default: time based)")
	f.IntVar(&opts.workers, "workers", 0, "worker goroutines; 0 runs sequentially, -1 uses GOMAXPROCS")
	f.IntVar(&opts.grain, "grain", gradient.DefaultGrain, "minimum output rows per worker chunk")
	f.BoolVar(&opts.strict, "strict", false, "fail when an axis is shorter than the kernel")
	f.BoolVar(&opts.transpose, "transpose", false, "compute Dx by transposing, convolving rows and transposing back")
	f.BoolVar(&opts.verify, "verify", false, "check that every response value lies in [-255, 255]")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug records to stderr")

	return cmd
}

// positiveIntArgs rejects any positional argument that is not an integer > 0.
func positiveIntArgs(_ *cobra.Command, args []string) error {
	_, _, err := parseDims(args)
	return err
}

func parseDims(args []string) (rows, cols int, err error) {
	dims := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return 0, 0, fmt.Errorf("argument %d (%q) is not an integer", i+1, a)
		}
		if v <= 0 {
			return 0, 0, fmt.Errorf("argument %d (%d) must be positive", i+1, v)
		}
		dims[i] = v
	}
	if len(dims) != 2 {
		return 0, 0, fmt.Errorf("expected ROWS and COLS, got %d arguments", len(dims))
	}
	return dims[0], dims[1], nil
}

func run(cmd *cobra.Command, rows, cols int, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	gradient.SetLogger(logger)
	defer gradient.SetLogger(nil)

	var pool *workerpool.Pool
	if opts.workers != 0 {
		pool = workerpool.New(opts.workers) // -1 falls through to GOMAXPROCS
		defer pool.Close()
	}

	logger.Debug("gradbench: starting",
		"rows", rows,
		"cols", cols,
		"seed", opts.seed,
		"dispatch", hwy.CurrentName(),
		"workers", pool.NumWorkers(),
	)

	m := randomMatrix(rows, cols, opts.seed)
	gopts := []gradient.Option{
		gradient.WithPool(pool),
		gradient.WithGrain(opts.grain),
		gradient.WithStrict(opts.strict),
	}

	dxFn := gradient.Dx
	if opts.transpose {
		dxFn = gradient.DxViaTranspose
	}

	dx, err := timeit("Dx", func() (*response, error) { return wrap(dxFn(m, gopts...)) })
	if err != nil {
		return err
	}
	dy, err := timeit("Dy", func() (*response, error) { return wrap(gradient.Dy(m, gopts...)) })
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range []*response{dx, dy} {
		fmt.Fprintf(out, "Computation time for %s: %.8f seconds\n", r.name, r.elapsed.Seconds())
	}
	for _, r := range []*response{dx, dy} {
		fmt.Fprintln(out, r.summary())
	}

	if opts.verify {
		for _, r := range []*response{dx, dy} {
			if err := gradient.CheckRange(r.values); err != nil {
				return fmt.Errorf("%s: %w", r.name, err)
			}
		}
		fmt.Fprintln(out, "Range check passed")
	}
	return nil
}
