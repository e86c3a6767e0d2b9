package workflow

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
)

func normalize(t *testing.T, c *Converter, raw string, required bool) Input {
	t.Helper()
	if !gjson.Valid(raw) {
		t.Fatalf("invalid property fixture: %s", raw)
	}
	return c.normalizeProperty(gjson.Parse(raw), required)
}

func ptr(s string) *string {
	return &s
}

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func base(required bool) Input {
	return Input{
		Required: required,
		Default:  emptyString,
	}
}

func TestNormalizeProperty_Rules(t *testing.T) {
	cases := []struct {
		name     string
		property string
		required bool
		want     func() Input
	}{
		{
			name:     "string enum",
			property: `{"type":"string","enum":["a","b"]}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Format = FormatEnum
				in.Enum = &[]EnumOption{
					{ID: raw(`"a"`), Name: raw(`"a"`)},
					{ID: raw(`"b"`), Name: raw(`"b"`)},
				}
				return in
			},
		},
		{
			name:     "empty enum still selects the enum branch",
			property: `{"type":"string","enum":[],"format":"file-path"}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Format = FormatEnum
				in.Enum = &[]EnumOption{}
				return in
			},
		},
		{
			name:     "non array enum degrades to empty options",
			property: `{"type":"string","enum":null}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Format = FormatEnum
				in.Enum = &[]EnumOption{}
				return in
			},
		},
		{
			name:     "enum values keep their JSON type",
			property: `{"type":"string","enum":[1,true,"x"]}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Format = FormatEnum
				in.Enum = &[]EnumOption{
					{ID: raw(`1`), Name: raw(`1`)},
					{ID: raw(`true`), Name: raw(`true`)},
					{ID: raw(`"x"`), Name: raw(`"x"`)},
				}
				return in
			},
		},
		{
			name:     "file path",
			property: `{"type":"string","format":"file-path","pattern":"\\.csv$"}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Format = FormatFile
				return in
			},
		},
		{
			name:     "directory path",
			property: `{"type":"string","format":"directory-path"}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Format = FormatDirPath
				return in
			},
		},
		{
			name:     "plain string falls through to pattern",
			property: `{"type":"string","format":"email","pattern":"^\\S+@\\S+$"}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Pattern = ptr(`^\S+@\S+$`)
				return in
			},
		},
		{
			name:     "integer with bounds",
			property: `{"type":"integer","minimum":1,"maximum":10}`,
			required: true,
			want: func() Input {
				in := base(true)
				in.Type = TypeInteger
				in.Minimum = raw(`1`)
				in.Maximum = raw(`10`)
				return in
			},
		},
		{
			name:     "integer without bounds",
			property: `{"type":"integer"}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeInteger
				in.Minimum = emptyString
				in.Maximum = emptyString
				return in
			},
		},
		{
			name:     "integer ignores enum",
			property: `{"type":"integer","enum":[1,2],"minimum":0}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeInteger
				in.Minimum = raw(`0`)
				in.Maximum = emptyString
				return in
			},
		},
		{
			name:     "boolean",
			property: `{"type":"boolean","default":true,"pattern":"ignored"}`,
			want: func() Input {
				in := base(false)
				in.Default = raw(`true`)
				in.Type = TypeBoolean
				return in
			},
		},
		{
			name:     "unrecognized type",
			property: `{"type":"object"}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Pattern = ptr("")
				return in
			},
		},
		{
			name:     "absent type keeps pattern",
			property: `{"pattern":"[a-z]+"}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Pattern = ptr("[a-z]+")
				return in
			},
		},
		{
			name:     "non string type value",
			property: `{"type":["string","null"],"enum":["a"]}`,
			want: func() Input {
				in := base(false)
				in.Type = TypeString
				in.Pattern = ptr("")
				return in
			},
		},
		{
			name:     "base fields",
			property: `{"type":"boolean","title":"Skip QC","description":"Skip quality control","help_text":"Use with care","hidden":true,"default":false}`,
			required: true,
			want: func() Input {
				return Input{
					Title:       "Skip QC",
					Required:    true,
					Description: "Skip quality control",
					Default:     raw(`false`),
					HelpText:    "Use with care",
					Hidden:      true,
					Type:        TypeBoolean,
				}
			},
		},
	}

	c := NewConverter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalize(t, c, tc.property, tc.required)
			if diff := cmp.Diff(tc.want(), got); diff != "" {
				t.Fatalf("input mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeProperty_JSONShape(t *testing.T) {
	cases := []struct {
		name     string
		property string
		required bool
		want     string
	}{
		{
			name:     "integer",
			property: `{"type":"integer","minimum":1,"maximum":10}`,
			required: true,
			want:     `{"title":"","required":true,"description":"","default":"","help_text":"","hidden":false,"type":"integer","minimum":1,"maximum":10}`,
		},
		{
			name:     "boolean has no type specific keys",
			property: `{"type":"boolean"}`,
			want:     `{"title":"","required":false,"description":"","default":"","help_text":"","hidden":false,"type":"boolean"}`,
		},
		{
			name:     "file path has no pattern",
			property: `{"type":"string","format":"file-path"}`,
			want:     `{"title":"","required":false,"description":"","default":"","help_text":"","hidden":false,"type":"string","format":"file"}`,
		},
		{
			name:     "empty enum renders as array",
			property: `{"type":"string","enum":[]}`,
			want:     `{"title":"","required":false,"description":"","default":"","help_text":"","hidden":false,"type":"string","format":"enum","enum":[]}`,
		},
		{
			name:     "fallback string",
			property: `{"type":"array"}`,
			want:     `{"title":"","required":false,"description":"","default":"","help_text":"","hidden":false,"type":"string","pattern":""}`,
		},
	}

	c := NewConverter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(normalize(t, c, tc.property, tc.required))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if diff := cmp.Diff(tc.want, string(got)); diff != "" {
				t.Fatalf("json mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeProperty_FallbackPolicies(t *testing.T) {
	property := `{"type":"integer","default":0,"minimum":0,"maximum":null,"title":"","hidden":false}`

	presence := normalize(t, NewConverter(), property, false)
	if string(presence.Default) != `0` {
		t.Fatalf("presence policy should keep default 0, got %s", presence.Default)
	}
	if string(presence.Minimum) != `0` {
		t.Fatalf("presence policy should keep minimum 0, got %s", presence.Minimum)
	}
	if string(presence.Maximum) != `""` {
		t.Fatalf("null maximum should fall back to empty string, got %s", presence.Maximum)
	}

	legacy := normalize(t, NewConverter(WithFallback(FallbackTruthy)), property, false)
	if string(legacy.Default) != `""` {
		t.Fatalf("truthy policy should drop default 0, got %s", legacy.Default)
	}
	if string(legacy.Minimum) != `""` {
		t.Fatalf("truthy policy should drop minimum 0, got %s", legacy.Minimum)
	}
	if legacy.Hidden || presence.Hidden {
		t.Fatalf("hidden false must stay false")
	}
}

func TestNormalizeProperty_FalseDefaultUnderPolicies(t *testing.T) {
	property := `{"type":"boolean","default":false}`

	if got := normalize(t, NewConverter(), property, false); string(got.Default) != `false` {
		t.Fatalf("presence policy should keep false default, got %s", got.Default)
	}
	if got := normalize(t, NewConverter(WithFallback(FallbackTruthy)), property, false); string(got.Default) != `""` {
		t.Fatalf("truthy policy should collapse false default, got %s", got.Default)
	}
}

func TestNormalizeProperty_HiddenCoercion(t *testing.T) {
	c := NewConverter()
	if got := normalize(t, c, `{"hidden":"yes"}`, false); !got.Hidden {
		t.Fatalf("expected truthy hidden value to coerce to true")
	}
	if got := normalize(t, c, `{"hidden":0}`, false); got.Hidden {
		t.Fatalf("expected falsy hidden value to coerce to false")
	}
}

func TestNormalizeProperty_ObjectDefaultIsPreserved(t *testing.T) {
	got := normalize(t, NewConverter(), `{"type":"string","default":{"a":[1,2]}}`, false)
	if diff := cmp.Diff(raw(`{"a":[1,2]}`), got.Default); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
}
