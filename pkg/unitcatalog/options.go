// SPDX-License-Identifier: MPL-2.0

package unitcatalog

import (
	"io"

	"github.com/charmbracelet/log"
)

type (
	// options holds configuration for New.
	options struct {
		logger     *log.Logger
		predefined bool
	}

	// Option configures a Catalog.
	Option func(*options)
)

func defaultOptions() options {
	return options{
		logger:     log.New(io.Discard),
		predefined: true,
	}
}

// WithLogger sets the logger registrations are reported to.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutPredefined starts the catalog empty instead of seeding it with
// length.Predefined().
func WithoutPredefined() Option {
	return func(o *options) {
		o.predefined = false
	}
}
