package workflow

import "github.com/tidwall/gjson"

// extractGroup normalizes the object-valued properties of one definition group
// and summarizes the group as a UI section. The section lists every property
// key, including ones whose value was not an object and produced no input.
func (c *Converter) extractGroup(name string, group gjson.Result) (Inputs, Section) {
	properties := members(lookup(group, "properties"))
	required := requiredFields(lookup(group, "required"))

	inputs := NewInputs()
	fields := make([]string, 0, len(properties))
	for _, property := range properties {
		fields = append(fields, property.key)
		if !property.value.IsObject() {
			continue
		}
		_, isRequired := required[property.key]
		inputs.Set(property.key, c.normalizeProperty(property.value, isRequired))
	}

	section := Section{
		ID:          name,
		Title:       c.fallback.text(lookup(group, "title"), name),
		Description: c.fallback.text(lookup(group, "description"), ""),
		Fields:      fields,
	}
	return inputs, section
}

// requiredFields collects the string members of a required array. Anything
// other than an array marks no field as required.
func requiredFields(list gjson.Result) map[string]struct{} {
	out := make(map[string]struct{})
	if !list.IsArray() {
		return out
	}
	for _, item := range list.Array() {
		if name, ok := str(item); ok {
			out[name] = struct{}{}
		}
	}
	return out
}
