package i18n

import "errors"

// Loading errors keep the underlying cause joined so callers can still inspect it
// with errors.Is / errors.As.
var (
	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidCatalogShape  = errors.New("catalog content must map message keys to locale templates")

	// Sources
	ErrNilParser            = errors.New("catalog parser is nil")
	ErrEmptyPath            = errors.New("catalog path is empty")
	ErrLoadingFileCancelled = errors.New("loading catalog file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read catalog file")
	ErrFailedToParseFile    = errors.New("failed to parse catalog file")
	ErrEmptyCatalogFile     = errors.New("catalog file is empty")

	// Catalog
	ErrEmptyMessageKey = errors.New("catalog contains an empty message key")
	ErrEmptyLocale     = errors.New("catalog contains an empty locale code")
	ErrNilCatalog      = errors.New("catalog is nil")

	// Localizer
	ErrInvalidTemplate = errors.New("invalid message template")
)
