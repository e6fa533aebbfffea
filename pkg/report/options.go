package report

import (
	"io"

	"go.uber.org/zap"

	"github.com/askiada/survey-report/pkg/chart"
	"github.com/askiada/survey-report/pkg/report/model"
)

type Option func(r *Report)

// WithLogger sets the logger used for per-page errors. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Report) {
		r.logger = logger
	}
}

// WithProgress sets where "Creating page N: name" lines are written. Defaults to io.Discard.
func WithProgress(w io.Writer) Option {
	return func(r *Report) {
		r.progress = w
	}
}

// WithRegistry replaces the default generator registry.
func WithRegistry(registry *chart.Registry) Option {
	return func(r *Report) {
		r.registry = registry
	}
}

// WithRunOptions adds run options. They are invoked in the order given.
func WithRunOptions(opts ...model.RunOption) Option {
	return func(r *Report) {
		r.opts = append(r.opts, opts...)
	}
}
