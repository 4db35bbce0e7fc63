// Package lpfile is the public entry point to the LP-format parser: it
// wires the lexer, classifier, and section-driven parser into the single
// function read(source) -> Model described in spec.md §6.
package lpfile

import (
	"io"
	"os"
	"strings"

	"github.com/cwbudde/golp/internal/classifier"
	"github.com/cwbudde/golp/internal/lexer"
	"github.com/cwbudde/golp/internal/lperr"
	"github.com/cwbudde/golp/internal/parser"
	"github.com/cwbudde/golp/pkg/lpmodel"
)

// Option configures a Read call. Options compose across the whole
// pipeline (lexer and parser tracing share one callback).
type Option func(*config)

type config struct {
	trace func(format string, args ...any)
}

// WithTracing enables one-line-per-token, one-line-per-section debug
// tracing through trace, mirroring the teacher's WithTracing lexer/parser
// options.
func WithTracing(trace func(format string, args ...any)) Option {
	return func(c *config) {
		c.trace = trace
	}
}

// Read runs the full pipeline — lex, classify, split, process — over src
// and returns the finished Model, or a *lperr.Error describing the first
// malformed input encountered. No partial model is ever returned
// alongside an error; the byte source is always released before Read
// returns, on success or failure.
//
// src may be a plain file, a gzip.Reader wrapped around a compressed
// file, or a bytes/strings reader over an in-memory buffer — the parser
// treats all three identically, reading src to completion up front so
// parse errors can be reported with full source context.
func Read(src io.Reader, opts ...Option) (*lpmodel.Model, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	lexOpts := []lexer.Option{}
	if c.trace != nil {
		lexOpts = append(lexOpts, lexer.WithTracing(c.trace))
	}

	l := lexer.New(lexer.NewBytesSource(data), lexOpts...)
	defer l.Close()

	raw, err := l.Drain()
	if err != nil {
		return nil, attachSource(err, string(data))
	}

	processed, err := classifier.Classify(raw)
	if err != nil {
		return nil, attachSource(err, string(data))
	}

	parseOpts := []parser.Option{}
	if c.trace != nil {
		parseOpts = append(parseOpts, parser.WithTracing(c.trace))
	}

	model, err := parser.Parse(processed, parseOpts...)
	if err != nil {
		return nil, attachSource(err, string(data))
	}

	return model, nil
}

// ReadFile opens path, reads it, and parses it, closing the file
// regardless of outcome.
func ReadFile(path string) (*lpmodel.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// ReadString parses an in-memory LP document.
func ReadString(s string) (*lpmodel.Model, error) {
	return Read(strings.NewReader(s))
}

func attachSource(err error, source string) error {
	if pe, ok := err.(*lperr.Error); ok {
		return pe.WithSource(source)
	}
	return err
}
