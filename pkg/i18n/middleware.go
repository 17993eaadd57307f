package i18n

import "net/http"

// Middleware stores the request locale in the request context so handlers and
// validators can read it with GetLocale. A nil extractor means
// DefaultLangExtractor(); an empty extraction falls back to defaultLang
// (DefaultLanguage when empty).
func Middleware(extr LangExtractor, defaultLang string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if defaultLang = NormalizeLocale(defaultLang); defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = defaultLang
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
