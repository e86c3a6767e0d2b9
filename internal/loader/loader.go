package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/tidwall/gjson"

	"github.com/goliatone/go-workflowgen/pkg/schema"
)

// Loader implements schema.Loader by delegating to file or fs.FS strategies.
// YAML sources are bridged to JSON so every Document carries JSON.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options schema.LoaderOptions) schema.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("loader: unsupported source kind")
	}
	if err != nil {
		return schema.Document{}, err
	}

	payload, err := decode(schema.EncodingOf(src), data)
	if err != nil {
		return schema.Document{}, fmt.Errorf("loader: %s: %w", src.Location(), err)
	}

	return schema.NewDocument(src, payload)
}

func decode(encoding schema.Encoding, data []byte) ([]byte, error) {
	if encoding == schema.EncodingYAML {
		payload, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", schema.ErrMalformedDocument, err)
		}
		return payload, nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: document is empty", schema.ErrMalformedDocument)
	}
	if !gjson.ValidBytes(trimmed) {
		return nil, fmt.Errorf("%w: invalid JSON", schema.ErrMalformedDocument)
	}
	return trimmed, nil
}
