package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/goliatone/go-workflowgen/internal/logging"
	"github.com/goliatone/go-workflowgen/pkg/schema"
)

// Option customises a Converter.
type Option func(*Converter)

// WithLogger routes conversion diagnostics (skipped references, overwritten
// fields) to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithFallback selects how absent or falsy optional values are defaulted.
func WithFallback(policy FallbackPolicy) Option {
	return func(c *Converter) {
		c.fallback = policy
	}
}

// Converter turns source schema documents into v3 workflows. It holds no per
// run state and can be reused.
type Converter struct {
	logger   *slog.Logger
	fallback FallbackPolicy
}

// NewConverter constructs a Converter applying any provided options.
func NewConverter(options ...Option) *Converter {
	c := &Converter{fallback: FallbackPresence}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	return c
}

// Convert parses raw JSON and assembles the workflow. Invalid JSON yields
// schema.ErrMalformedDocument; schema content never causes an error.
func (c *Converter) Convert(ctx context.Context, raw []byte) (Workflow, error) {
	if ctx == nil {
		return Workflow{}, errors.New("workflow: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Workflow{}, err
	}
	if !gjson.ValidBytes(raw) {
		return Workflow{}, fmt.Errorf("workflow: %w", schema.ErrMalformedDocument)
	}
	return c.assemble(gjson.ParseBytes(raw)), nil
}

// ConvertDocument converts a loaded schema document.
func (c *Converter) ConvertDocument(ctx context.Context, doc schema.Document) (Workflow, error) {
	c.logger.Debug("converting schema", "source", doc.Location(), "fallback", c.fallback.String())
	wf, err := c.Convert(ctx, doc.Raw())
	if err != nil {
		return Workflow{}, fmt.Errorf("%s: %w", doc.Location(), err)
	}
	return wf, nil
}
