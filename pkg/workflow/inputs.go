package workflow

import (
	"bytes"
	"encoding/json"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Inputs maps field names to normalized inputs, keeping first-insertion order.
// Overwriting a name replaces its value in place. The zero value is empty and
// ready to use.
type Inputs struct {
	entries *orderedmap.OrderedMap[string, Input]
}

// NewInputs returns an empty Inputs.
func NewInputs() Inputs {
	return Inputs{entries: orderedmap.New[string, Input]()}
}

// Set stores input under name. It reports whether an earlier value was
// replaced.
func (in *Inputs) Set(name string, input Input) bool {
	if in.entries == nil {
		in.entries = orderedmap.New[string, Input]()
	}
	_, replaced := in.entries.Set(name, input)
	return replaced
}

// Get returns the input stored under name.
func (in Inputs) Get(name string) (Input, bool) {
	if in.entries == nil {
		return Input{}, false
	}
	return in.entries.Get(name)
}

// Len returns the number of inputs.
func (in Inputs) Len() int {
	if in.entries == nil {
		return 0
	}
	return in.entries.Len()
}

// Keys lists field names in insertion order.
func (in Inputs) Keys() []string {
	keys := make([]string, 0, in.Len())
	in.Each(func(name string, _ Input) {
		keys = append(keys, name)
	})
	return keys
}

// Each calls fn for every input in insertion order.
func (in Inputs) Each(fn func(name string, input Input)) {
	if in.entries == nil {
		return
	}
	for pair := in.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Merge copies every entry of other into in, last write wins. It returns the
// names that were overwritten.
func (in *Inputs) Merge(other Inputs) []string {
	var replaced []string
	other.Each(func(name string, input Input) {
		if in.Set(name, input) {
			replaced = append(replaced, name)
		}
	})
	return replaced
}

// Equal reports whether both maps hold the same entries in the same order.
func (in Inputs) Equal(other Inputs) bool {
	if in.Len() != other.Len() {
		return false
	}
	if !reflect.DeepEqual(in.Keys(), other.Keys()) {
		return false
	}
	equal := true
	in.Each(func(name string, input Input) {
		candidate, _ := other.Get(name)
		if !reflect.DeepEqual(input, candidate) {
			equal = false
		}
	})
	return equal
}

// MarshalJSON renders the inputs as a JSON object in insertion order. HTML
// characters are written verbatim, the same as the rest of the document.
func (in Inputs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	if in.entries != nil {
		for pair := in.entries.Oldest(); pair != nil; pair = pair.Next() {
			if buf.Len() > 1 {
				buf.WriteByte(',')
			}
			if err := enc.Encode(pair.Key); err != nil {
				return nil, err
			}
			buf.Truncate(buf.Len() - 1)
			buf.WriteByte(':')
			if err := enc.Encode(pair.Value); err != nil {
				return nil, err
			}
			buf.Truncate(buf.Len() - 1)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
