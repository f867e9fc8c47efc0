// SPDX-License-Identifier: MIT

package pipeline

import "github.com/rs/zerolog"

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger (default zerolog.Nop()). Runs log at debug
// level; failures log at error level with the failing stage.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithMetrics records run outcomes and stage durations into m. A nil m
// disables recording.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}
