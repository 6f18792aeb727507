package httpapi

import (
	"context"

	"github.com/rs/zerolog"
)

// defaultMaxBodyBytes bounds JSON request bodies when Options leaves it unset.
const defaultMaxBodyBytes int64 = 1 << 20

// Options configures the HTTP layer.
type Options struct {
	Logger zerolog.Logger
	// MaxBodyBytes limits request bodies; <= 0 means 1 MiB.
	MaxBodyBytes int64
	// BaseContext is canceled on shutdown; daemon calls in flight are
	// canceled with it. Defaults to Background.
	BaseContext context.Context
	// CORS is opt-in; nil AllowedOrigins disables the middleware.
	CORS CORSOptions
}

// CORSOptions mirrors the subset of go-chi/cors settings exposed in config.
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

func (o Options) withDefaults() Options {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBodyBytes
	}
	if o.BaseContext == nil {
		o.BaseContext = context.Background()
	}
	return o
}
