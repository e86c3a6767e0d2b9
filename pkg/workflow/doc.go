// Package workflow converts a JSON Schema that composes its configuration
// surface through allOf/definitions into a flattened v3 workflow descriptor.
//
// Each allOf entry names a definition group. Groups contribute normalized
// inputs, keyed by field name, and one UI section listing their fields in
// declaration order. The conversion never fails on schema content; absent or
// malformed optional values degrade to empty defaults.
package workflow
