package workflow

import "github.com/tidwall/gjson"

// assemble merges the flattened inputs and UI with the fixed v3 metadata.
func (c *Converter) assemble(root gjson.Result) Workflow {
	inputs, ui := c.flatten(root)
	return Workflow{
		Schema:          SchemaVersion,
		ID:              "",
		DisplayName:     "",
		Title:           c.fallback.text(lookup(root, "title"), ""),
		WorkflowVersion: "",
		Categories:      []string{},
		Description:     c.fallback.text(lookup(root, "description"), ""),
		Inputs:          inputs,
		UI:              ui,
	}
}
