package workflowgen

import (
	"context"

	"github.com/goliatone/go-workflowgen/pkg/orchestrator"
	"github.com/goliatone/go-workflowgen/pkg/schema"
	"github.com/goliatone/go-workflowgen/pkg/workflow"
)

// Workflow aliases the v3 descriptor type for callers of the root package.
type Workflow = workflow.Workflow

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Convert turns a raw JSON schema into the encoded v3 workflow without
// touching the filesystem.
func Convert(ctx context.Context, raw []byte, options ...workflow.Option) ([]byte, error) {
	wf, err := workflow.NewConverter(options...).Convert(ctx, raw)
	if err != nil {
		return nil, err
	}
	return workflow.Encode(wf)
}

// ConvertFile reads the schema at path and writes workflow.json next to it.
// It returns the path of the written file.
func ConvertFile(ctx context.Context, path string, options ...orchestrator.Option) (string, error) {
	result, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source: schema.SourceFromFile(path),
	})
	if err != nil {
		return "", err
	}
	return result.Path, nil
}
