package workflow

import (
	"strings"

	"github.com/tidwall/gjson"
)

// member is one key/value pair of a JSON object.
type member struct {
	key   string
	value gjson.Result
}

// members lists the pairs of obj in declaration order. A repeated key keeps
// its first position and takes its last value, the way JSON.parse does.
// Non-objects have no members.
func members(obj gjson.Result) []member {
	if !obj.IsObject() {
		return nil
	}
	var out []member
	index := make(map[string]int)
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if i, ok := index[name]; ok {
			out[i].value = value
			return true
		}
		index[name] = len(out)
		out = append(out, member{key: name, value: value})
		return true
	})
	return out
}

// lookup returns the value stored under key in obj. Keys are compared
// literally so names containing gjson path syntax resolve correctly.
func lookup(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	if !obj.IsObject() {
		return found
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}

// str returns the string held by v and whether v is a JSON string.
func str(v gjson.Result) (string, bool) {
	if v.Type != gjson.String {
		return "", false
	}
	return v.Str, true
}

// groupName extracts the definition name from a $ref such as
// "#/definitions/Group". Missing, non-string or empty refs yield "".
func groupName(ref gjson.Result) string {
	raw, ok := str(lookup(ref, "$ref"))
	if !ok || raw == "" {
		return ""
	}
	return raw[strings.LastIndex(raw, "/")+1:]
}
