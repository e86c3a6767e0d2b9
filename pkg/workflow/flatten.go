package workflow

import "github.com/tidwall/gjson"

// flatten folds every resolvable allOf entry into one inputs map and one
// ordered list of UI sections.
func (c *Converter) flatten(root gjson.Result) (Inputs, UI) {
	inputs := NewInputs()
	ui := UI{Inputs: []Section{}}

	allOf := lookup(root, "allOf")
	if !allOf.IsArray() {
		return inputs, ui
	}
	definitions := lookup(root, "definitions")

	for index, ref := range allOf.Array() {
		name := groupName(ref)
		if name == "" {
			c.logger.Warn("skipping allOf entry", "index", index, "reason", "missing $ref")
			continue
		}
		group := lookup(definitions, name)
		if !group.Exists() {
			c.logger.Warn("skipping allOf entry", "index", index, "ref", name, "reason", "definition not found")
			continue
		}
		if !group.IsObject() {
			c.logger.Warn("skipping allOf entry", "index", index, "ref", name, "reason", "definition is not an object")
			continue
		}

		groupInputs, section := c.extractGroup(name, group)
		for _, field := range inputs.Merge(groupInputs) {
			c.logger.Debug("input overwritten by later group", "field", field, "group", name)
		}
		ui.Inputs = append(ui.Inputs, section)
	}

	return inputs, ui
}
