package workflow

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// normalizeProperty converts one property schema into an Input. Rules apply in
// order: string enum, string file-path, string directory-path, integer,
// boolean. Everything else, plain strings included, becomes a string with a
// pattern.
func (c *Converter) normalizeProperty(property gjson.Result, required bool) Input {
	policy := c.fallback
	input := Input{
		Title:       policy.text(lookup(property, "title"), ""),
		Required:    required,
		Description: policy.text(lookup(property, "description"), ""),
		Default:     policy.value(lookup(property, "default")),
		HelpText:    policy.text(lookup(property, "help_text"), ""),
		Hidden:      truthy(lookup(property, "hidden")),
	}

	kind, _ := str(lookup(property, "type"))
	if kind == TypeString {
		// The enum branch is gated on key presence, not on the value.
		if enum := lookup(property, "enum"); enum.Exists() {
			input.Type = TypeString
			input.Format = FormatEnum
			input.Enum = enumOptions(enum)
			return input
		}
		format, _ := str(lookup(property, "format"))
		switch format {
		case SourceFormatFilePath:
			input.Type = TypeString
			input.Format = FormatFile
			return input
		case SourceFormatDirectoryPath:
			input.Type = TypeString
			input.Format = FormatDirPath
			return input
		}
	}

	switch kind {
	case TypeInteger:
		input.Type = TypeInteger
		input.Minimum = policy.value(lookup(property, "minimum"))
		input.Maximum = policy.value(lookup(property, "maximum"))
	case TypeBoolean:
		input.Type = TypeBoolean
	default:
		pattern := policy.text(lookup(property, "pattern"), "")
		input.Type = TypeString
		input.Pattern = &pattern
	}
	return input
}

// enumOptions maps each enum value to an {id, name} pair, preserving order. A
// non-array enum yields an empty list.
func enumOptions(enum gjson.Result) *[]EnumOption {
	options := []EnumOption{}
	if enum.IsArray() {
		for _, value := range enum.Array() {
			raw := json.RawMessage(value.Raw)
			options = append(options, EnumOption{ID: raw, Name: raw})
		}
	}
	return &options
}
