package i18n

import "net/http"

// LangExtractor derives a locale from an incoming request.
// An empty result means "no preference".
type LangExtractor func(r *http.Request) string
