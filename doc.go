// Package workflowgen converts workflow parameter schemas into v3 workflow
// descriptors. Convert works on in-memory payloads; ConvertFile reads a schema
// from disk and writes workflow.json next to it.
package workflowgen
