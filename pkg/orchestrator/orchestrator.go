package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/goliatone/go-workflowgen/internal/loader"
	"github.com/goliatone/go-workflowgen/internal/logging"
	"github.com/goliatone/go-workflowgen/pkg/output"
	"github.com/goliatone/go-workflowgen/pkg/schema"
	"github.com/goliatone/go-workflowgen/pkg/workflow"
)

// DefaultOutputName is the file written next to the source schema.
const DefaultOutputName = "workflow.json"

// Writer persists the encoded workflow.
type Writer interface {
	Write(ctx context.Context, path string, data []byte) error
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom schema loader.
func WithLoader(l schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithConverter injects a preconfigured converter.
func WithConverter(c *workflow.Converter) Option {
	return func(o *Orchestrator) {
		o.converter = c
	}
}

// WithWriter injects the destination writer.
func WithWriter(w Writer) Option {
	return func(o *Orchestrator) {
		o.writer = w
	}
}

// WithLogger sets the logger used by the orchestrator and the default
// converter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithOutputName overrides the output file name.
func WithOutputName(name string) Option {
	return func(o *Orchestrator) {
		o.outputName = name
	}
}

// Orchestrator coordinates the full pipeline from schema source to written
// workflow document. Missing dependencies are initialised with the built-in
// implementations.
type Orchestrator struct {
	loader     schema.Loader
	converter  *workflow.Converter
	writer     Writer
	logger     *slog.Logger
	outputName string
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one conversion.
type Request struct {
	// Source identifies where the schema document lives. Optional when Document
	// is supplied.
	Source schema.Source

	// Document allows callers to bypass the loader when they already have the
	// payload.
	Document *schema.Document

	// OutputDir is the directory the workflow is written to. When empty it
	// defaults to the directory of a file source.
	OutputDir string
}

// Result reports what Generate produced.
type Result struct {
	Workflow workflow.Workflow
	Output   []byte
	Path     string
}

// Generate executes the load → convert → encode → write sequence. Nothing is
// written unless every earlier step succeeded.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	target, err := o.outputPath(req, doc)
	if err != nil {
		return Result{}, err
	}

	wf, err := o.converter.ConvertDocument(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: convert: %w", err)
	}

	data, err := workflow.Encode(wf)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: %w", err)
	}

	if err := o.writer.Write(ctx, target, data); err != nil {
		return Result{}, fmt.Errorf("orchestrator: write %s: %w", target, err)
	}
	o.logger.Debug("workflow written", "source", doc.Location(), "kind", doc.Source().Kind(), "path", target, "bytes", len(data))

	return Result{Workflow: wf, Output: data, Path: target}, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (schema.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return schema.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return schema.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) outputPath(req Request, doc schema.Document) (string, error) {
	dir := req.OutputDir
	if dir == "" {
		var ok bool
		if dir, ok = doc.Dir(); !ok {
			return "", errors.New("orchestrator: output directory is required for non-file sources")
		}
	}
	return filepath.Join(dir, o.outputName), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.loader == nil {
		o.loader = loader.New(schema.NewLoaderOptions())
	}
	if o.converter == nil {
		o.converter = workflow.NewConverter(workflow.WithLogger(o.logger))
	}
	if o.writer == nil {
		o.writer = output.NewFileWriter()
	}
	if o.outputName == "" {
		o.outputName = DefaultOutputName
	}
}
