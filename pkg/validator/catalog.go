package validator

import (
	"context"
	"embed"
	"sync"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

//go:embed messages.yaml
var messagesFS embed.FS

const messagesFile = "messages.yaml"

var (
	defaultCatalog = sync.OnceValue(func() *i18n.Catalog {
		catalog, err := i18n.LoadCatalog(context.Background(), i18n.NewFSSource(messagesFS, nil, messagesFile))
		if err != nil {
			panic("validator: embedded message catalog: " + err.Error())
		}
		return catalog
	})

	defaultLocalizer = sync.OnceValue(func() *i18n.Localizer {
		return i18n.MustLocalizer(DefaultCatalog())
	})
)

// DefaultCatalog returns the built-in message catalog covering every operator
// key in en, fa, ru, de, fr, es, zh, ja, it, tr, ko and hi.
func DefaultCatalog() *i18n.Catalog {
	return defaultCatalog()
}

// DefaultLocalizer returns a shared Localizer over DefaultCatalog with "en" as
// the fallback language.
func DefaultLocalizer() *i18n.Localizer {
	return defaultLocalizer()
}
