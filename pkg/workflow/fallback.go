package workflow

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// FallbackPolicy decides when an optional source value is replaced by its
// default.
type FallbackPolicy int

const (
	// FallbackPresence keeps any present, non-null value, including 0, false
	// and "".
	FallbackPresence FallbackPolicy = iota
	// FallbackTruthy replaces falsy values (0, false, "", null) with the
	// default, the way a JavaScript `value || ""` expression does.
	FallbackTruthy
)

func (p FallbackPolicy) String() string {
	switch p {
	case FallbackTruthy:
		return "truthy"
	default:
		return "presence"
	}
}

func (p FallbackPolicy) keeps(v gjson.Result) bool {
	if !v.Exists() || v.Type == gjson.Null {
		return false
	}
	if p == FallbackTruthy {
		return truthy(v)
	}
	return true
}

// text returns the textual form of v, or fallback when the policy drops it.
func (p FallbackPolicy) text(v gjson.Result, fallback string) string {
	if !p.keeps(v) {
		return fallback
	}
	return v.String()
}

// value returns v as raw JSON, or "" when the policy drops it.
func (p FallbackPolicy) value(v gjson.Result) json.RawMessage {
	if !p.keeps(v) {
		return emptyString
	}
	return json.RawMessage(v.Raw)
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return v.Exists()
	}
}
