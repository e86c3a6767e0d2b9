package workflow

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInputs_ZeroValue(t *testing.T) {
	var in Inputs
	if in.Len() != 0 {
		t.Fatalf("expected empty inputs")
	}
	if _, ok := in.Get("x"); ok {
		t.Fatalf("expected missing key")
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected {}, got %s", data)
	}
}

func TestInputs_SetKeepsFirstPosition(t *testing.T) {
	var in Inputs
	in.Set("b", Input{Type: TypeString})
	in.Set("a", Input{Type: TypeBoolean})
	if replaced := in.Set("b", Input{Type: TypeInteger}); !replaced {
		t.Fatalf("expected Set to report the overwrite")
	}

	if diff := cmp.Diff([]string{"b", "a"}, in.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	b, _ := in.Get("b")
	if b.Type != TypeInteger {
		t.Fatalf("expected overwritten value, got %q", b.Type)
	}
}

func TestInputs_Merge(t *testing.T) {
	left := NewInputs()
	left.Set("x", Input{Title: "left"})
	left.Set("y", Input{Title: "left"})

	right := NewInputs()
	right.Set("z", Input{Title: "right"})
	right.Set("x", Input{Title: "right"})

	replaced := left.Merge(right)
	if diff := cmp.Diff([]string{"x"}, replaced); diff != "" {
		t.Fatalf("replaced mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, left.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	want := NewInputs()
	want.Set("x", Input{Title: "right"})
	want.Set("y", Input{Title: "left"})
	want.Set("z", Input{Title: "right"})
	if !cmp.Equal(want, left) {
		t.Fatalf("merged inputs differ from expectation")
	}
}

func TestInputs_MarshalOrder(t *testing.T) {
	in := NewInputs()
	in.Set("zeta", Input{Type: TypeBoolean, Default: emptyString})
	in.Set("alpha", Input{Type: TypeBoolean, Default: emptyString})

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zeta":{"title":"","required":false,"description":"","default":"","help_text":"","hidden":false,"type":"boolean"},"alpha":{"title":"","required":false,"description":"","default":"","help_text":"","hidden":false,"type":"boolean"}}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestInputs_MarshalKeepsMarkup(t *testing.T) {
	pattern := `^a>b&c<d$`
	in := NewInputs()
	in.Set("<in>", Input{Description: "<path> & more", Default: raw(`"a&b"`), Type: TypeString, Pattern: &pattern})

	data, err := in.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"<in>":{"title":"","required":false,"description":"<path> & more","default":"a&b","help_text":"","hidden":false,"type":"string","pattern":"^a>b&c<d$"}}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}
