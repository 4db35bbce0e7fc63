package parser

import (
	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// Option configures the parsing pipeline.
type Option func(*options)

type options struct {
	trace func(format string, args ...any)
}

// WithTracing enables one-line-per-section debug tracing through trace.
func WithTracing(trace func(format string, args ...any)) Option {
	return func(o *options) {
		o.trace = trace
	}
}

// Parse runs the section splitter and every section processor over an
// already-classified token sequence, in the fixed order required by spec
// §4.4 (none, objective, constraints, bounds, general, binary, semi, sos,
// end), and returns the finished Model.
func Parse(tokens []classifier.Token, opts ...Option) (*lpmodel.Model, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	trace := func(format string, args ...any) {
		if o.trace != nil {
			o.trace(format, args...)
		}
	}

	secs, sense, err := Split(tokens)
	if err != nil {
		return nil, err
	}

	b := lpmodel.NewBuilder()
	b.SetSense(lpmodel.ObjectiveSense(sense))

	trace("section: objective (%d tokens)", len(secs.objective))
	if err := processObjective(secs.objective, b); err != nil {
		return nil, err
	}

	trace("section: constraints (%d tokens)", len(secs.constraints))
	if err := processConstraints(secs.constraints, b); err != nil {
		return nil, err
	}

	trace("section: bounds (%d tokens)", len(secs.bounds))
	if err := processBounds(secs.bounds, b); err != nil {
		return nil, err
	}

	trace("section: general (%d tokens)", len(secs.general))
	if err := processGeneral(secs.general, b); err != nil {
		return nil, err
	}

	trace("section: binary (%d tokens)", len(secs.binary))
	if err := processBinary(secs.binary, b); err != nil {
		return nil, err
	}

	trace("section: semi (%d tokens)", len(secs.semi))
	if err := processSemi(secs.semi, b); err != nil {
		return nil, err
	}

	trace("section: sos (%d tokens)", len(secs.sos))
	if err := processSOS(secs.sos, b); err != nil {
		return nil, err
	}

	trace("section: end (%d tokens)", len(secs.end))
	if err := processEnd(secs.end); err != nil {
		return nil, err
	}

	return b.Model(), nil
}
