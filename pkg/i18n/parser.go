package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes catalog content into key -> locale -> template entries.
type Parser interface {
	// Parse decodes content. The outer map is keyed by message key, the inner
	// map by locale code.
	Parse(ctx context.Context, content []byte) (map[string]map[string]string, error)

	// SupportsFileExtension reports whether the parser handles files with the
	// given extension. A leading dot is optional ("json" and ".json" both work).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser from the file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
