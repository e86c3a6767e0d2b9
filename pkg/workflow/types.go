package workflow

import "encoding/json"

// SchemaVersion tags every emitted workflow document.
const SchemaVersion = "v3"

// Source property types recognized by the normalizer.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Source formats and the formats they are rewritten to.
const (
	SourceFormatFilePath      = "file-path"
	SourceFormatDirectoryPath = "directory-path"

	FormatEnum    = "enum"
	FormatFile    = "file"
	FormatDirPath = "dir-path"
)

var emptyString = json.RawMessage(`""`)

// Workflow is the v3 descriptor. Field order matches the emitted key order.
type Workflow struct {
	Schema          string   `json:"schema"`
	ID              string   `json:"id"`
	DisplayName     string   `json:"displayName"`
	Title           string   `json:"title"`
	WorkflowVersion string   `json:"workflowVersion"`
	Categories      []string `json:"categories"`
	Description     string   `json:"description"`
	Inputs          Inputs   `json:"inputs"`
	UI              UI       `json:"ui"`
}

// Input is the normalized descriptor for a single field. Type specific keys
// are only emitted for the rule that produced them.
type Input struct {
	Title       string          `json:"title"`
	Required    bool            `json:"required"`
	Description string          `json:"description"`
	Default     json.RawMessage `json:"default"`
	HelpText    string          `json:"help_text"`
	Hidden      bool            `json:"hidden"`
	Type        string          `json:"type"`
	Format      string          `json:"format,omitempty"`
	// Enum is a pointer so an empty source enum still renders as [].
	Enum    *[]EnumOption   `json:"enum,omitempty"`
	Minimum json.RawMessage `json:"minimum,omitempty"`
	Maximum json.RawMessage `json:"maximum,omitempty"`
	Pattern *string         `json:"pattern,omitempty"`
}

// EnumOption carries one allowed value. ID and Name both hold the source value.
type EnumOption struct {
	ID   json.RawMessage `json:"id"`
	Name json.RawMessage `json:"name"`
}

// UI holds the field layout, one section per resolved definition group.
type UI struct {
	Inputs []Section `json:"inputs"`
}

// Section summarizes a definition group.
type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}
