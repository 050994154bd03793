// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxSize is the largest document ParseAndDecode accepts by default (1MB).
const DefaultMaxSize int64 = 1 << 20

type (
	// decodeOptions holds configuration for ParseAndDecode.
	decodeOptions struct {
		maxSize  int64
		concrete bool
		filename string
	}

	// Option configures ParseAndDecode.
	Option func(*decodeOptions)
)

func defaultOptions() decodeOptions {
	return decodeOptions{
		maxSize:  DefaultMaxSize,
		concrete: true,
		filename: "<input>",
	}
}

// WithMaxSize sets the maximum accepted document size in bytes.
func WithMaxSize(size int64) Option {
	return func(o *decodeOptions) {
		o.maxSize = size
	}
}

// WithConcrete sets whether every value must be concrete after unification.
// Default is true.
func WithConcrete(concrete bool) Option {
	return func(o *decodeOptions) {
		o.concrete = concrete
	}
}

// WithFilename sets the name reported in error messages and CUE positions.
// An empty name keeps the default "<input>".
func WithFilename(name string) Option {
	return func(o *decodeOptions) {
		if name != "" {
			o.filename = name
		}
	}
}
