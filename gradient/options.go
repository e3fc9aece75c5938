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

import "github.com/ajroetker/go-gradient/hwy/contrib/workerpool"

// DefaultGrain is the default minimum number of output rows per work chunk.
const DefaultGrain = 64

// Option configures a single gradient call.
type Option func(*config)

type config struct {
	pool   *workerpool.Pool
	strict bool
	grain  int
}

func newConfig(opts []Option) config {
	cfg := config{grain: DefaultGrain}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPool splits output rows across the workers of p.
// A nil pool runs on the calling goroutine.
func WithPool(p *workerpool.Pool) Option {
	return func(c *config) {
		c.pool = p
	}
}

// WithStrict makes axes shorter than the kernel an error instead of an
// empty response.
func WithStrict(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithGrain sets the minimum number of output rows handed to one worker.
// Values <= 0 restore DefaultGrain.
func WithGrain(rows int) Option {
	return func(c *config) {
		if rows <= 0 {
			rows = DefaultGrain
		}
		c.grain = rows
	}
}
