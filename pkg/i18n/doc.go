// Package i18n provides the message catalog and localizer used to render
// validation messages in the caller's language.
//
// The package allows you to:
//
//   - Build an immutable Catalog of message templates (key -> locale -> template)
//     from memory, a file on disk, or an embedded file system, in YAML or JSON.
//   - Resolve a key for a locale with positional arguments ({0}, {1}, ...)
//     through a Localizer that falls back to a default language and finally to
//     the key itself.
//   - Negotiate the request locale from query parameters, headers, and the
//     Accept-Language header, and carry it through context.Context.
//
// # Architecture
//
// Catalog is plain data and never changes after construction. Localizer
// registers each catalog template with a go-playground universal-translator
// instance backed by the CLDR locale data from go-playground/locales, and uses
// it to substitute positional arguments. Locales are normalized to their base
// language subtag before lookup ("en-US" -> "en").
//
// # Usage
//
//	catalog, err := i18n.LoadCatalog(ctx, i18n.NewFileSource(nil, "messages.yaml"))
//	if err != nil {
//		log.Fatalf("load catalog: %v", err)
//	}
//
//	localizer, err := i18n.NewLocalizer(catalog,
//		i18n.WithFallbackLanguage("en"),
//		i18n.WithLogger(log),
//	)
//	if err != nil {
//		log.Fatalf("init localizer: %v", err)
//	}
//
//	msg := localizer.Resolve("LengthRange", "de-AT", 3, 20)
//	// msg == "Wert muss zwischen 3 und 20 Zeichen lang sein."
//
// # HTTP Middleware
//
// Middleware negotiates the request language and stores it in the request
// context where ResolveContext (and the validator package) pick it up:
//
//	router.Use(i18n.Middleware(i18n.DefaultLangExtractor(
//		i18n.WithSupportedLanguages(localizer.SupportedLanguages()...),
//	), "en"))
//
// # Error Handling
//
// Resolve never fails. Catalog loading and Localizer construction return
// errors wrapping the sentinels in errors.go, e.g.:
//
//	if errors.Is(err, i18n.ErrInvalidTemplate) {
//	    // a catalog template has a malformed placeholder
//	}
package i18n
