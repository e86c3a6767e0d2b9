package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-workflowgen/internal/logging"
	"github.com/goliatone/go-workflowgen/pkg/orchestrator"
	"github.com/goliatone/go-workflowgen/pkg/schema"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).RunContext(ctx, args); err != nil {
		red := color.New(color.FgRed, color.Bold)
		if f, ok := stderr.(*os.File); !ok || f != os.Stderr {
			red.DisableColor()
		}
		red.Fprint(stderr, "Error: ")
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:        "workflowgen",
		Usage:       "convert an allOf/definitions JSON Schema into a v3 workflow.json",
		ArgsUsage:   "<schema-file>",
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   stderr,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one schema file argument, got %d", c.NArg())
			}

			logger := logging.New(c.App.ErrWriter, slog.LevelInfo)
			gen := orchestrator.New(orchestrator.WithLogger(logger))

			result, err := gen.Generate(c.Context, orchestrator.Request{
				Source: schema.SourceFromFile(c.Args().First()),
			})
			if err != nil {
				return err
			}

			logger.Info("workflow written",
				"path", result.Path,
				"inputs", result.Workflow.Inputs.Len(),
				"sections", len(result.Workflow.UI.Inputs),
			)
			return nil
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("incorrect usage: %w", err)
		},
	}
}
