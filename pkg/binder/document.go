package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForFile picks the format from the file extension.
func FormatForFile(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Document decodes a single JSON or YAML document into v. Unknown fields are
// rejected in both formats.
func Document(format Format, data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty document", ErrFailedToParseDoc)
	}

	switch format {
	case FormatJSON:
		if err := decodeJSON(data, v); err != nil {
			return errors.Join(ErrFailedToParseDoc, err)
		}
		return nil
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %v", ErrFailedToParseDoc, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
