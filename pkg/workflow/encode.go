package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode renders wf as JSON indented by two spaces, without a trailing
// newline. Output for the same workflow is byte-identical across runs.
func Encode(wf Workflow) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wf); err != nil {
		return nil, fmt.Errorf("workflow: encode: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
