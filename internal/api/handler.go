package api

import (
	"context"
	"time"

	"ats-checker/internal/analysis"
)

// Decoder converts an uploaded document into plain text.
type Decoder interface {
	Parse(ctx context.Context, filename string, data []byte) (string, error)
}

// Options bounds the work done per request.
type Options struct {
	MaxUploadBytes int64
	DecodeTimeout  time.Duration
}

type API struct {
	decoder        Decoder
	analyzer       *analysis.Analyzer
	maxUploadBytes int64
	decodeTimeout  time.Duration
}

func NewAPI(decoder Decoder, analyzer *analysis.Analyzer, opts Options) *API {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.DecodeTimeout <= 0 {
		opts.DecodeTimeout = 30 * time.Second
	}
	return &API{
		decoder:        decoder,
		analyzer:       analyzer,
		maxUploadBytes: opts.MaxUploadBytes,
		decodeTimeout:  opts.DecodeTimeout,
	}
}
