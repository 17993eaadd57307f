package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CatalogSource loads raw catalog entries from some storage.
type CatalogSource interface {
	Load(ctx context.Context) (map[string]map[string]string, error)
}

// LoadCatalog reads entries from src and builds an immutable Catalog.
func LoadCatalog(ctx context.Context, src CatalogSource) (*Catalog, error) {
	if src == nil {
		return nil, ErrNilCatalog
	}
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(entries)
}

// MapSource serves entries from memory.
type MapSource struct {
	Data map[string]map[string]string
}

// Load implements CatalogSource.
func (s *MapSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Data == nil {
		return make(map[string]map[string]string), nil
	}
	return s.Data, nil
}

// FileSource reads a single catalog file from the local file system.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource creates a FileSource. When parser is nil it is picked from the
// file extension.
func NewFileSource(parser Parser, path string) *FileSource {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FileSource{parser: parser, path: path}
}

// Load implements CatalogSource.
func (s *FileSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if s.parser == nil {
		return nil, ErrNilParser
	}
	if s.path == "" {
		return nil, ErrEmptyPath
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(s.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}

	return parseContent(ctx, s.parser, s.path, content)
}

// FSSource reads a single catalog file from an fs.FS, typically an embed.FS.
type FSSource struct {
	fsys   fs.FS
	parser Parser
	path   string
}

// NewFSSource creates an FSSource. When parser is nil it is picked from the
// file extension.
func NewFSSource(fsys fs.FS, parser Parser, path string) *FSSource {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FSSource{fsys: fsys, parser: parser, path: path}
}

// Load implements CatalogSource.
func (s *FSSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if s.parser == nil {
		return nil, ErrNilParser
	}
	if s.fsys == nil || s.path == "" {
		return nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parseContent(ctx, s.parser, s.path, content)
}

func parseContent(ctx context.Context, parser Parser, path string, content []byte) (map[string]map[string]string, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalogFile, path)
	}

	entries, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return entries, nil
}
