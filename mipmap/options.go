// SPDX-License-Identifier: MIT
// Package mipmap: functional options for New / MustNew.
//
// Contract:
//   - Options are functional (type Option func(*options)).
//   - Option constructors validate and PANIC on meaningless inputs (nil).
//     New itself never panics.
//   - No hidden globals; every build resolves its own options.

package mipmap

import (
	"github.com/rs/zerolog"
)

// Option customizes a single pyramid build.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*options)

// options is the resolved configuration of one build.
type options struct {
	logger zerolog.Logger // zerolog.Nop() unless WithLogger is given
}

// WithLogger routes build diagnostics to l: a Debug event per successful
// build and an Error event when a level overflows. Panics on nil.
func WithLogger(l *zerolog.Logger) Option {
	if l == nil {
		panic("mipmap: WithLogger(nil)")
	}
	logger := *l

	return func(o *options) {
		o.logger = logger
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
