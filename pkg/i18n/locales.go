package i18n

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fa"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/hi"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/uk"
	"github.com/go-playground/locales/zh"
)

// builtinLocales maps base language subtags to CLDR translators.
// Catalog locales outside this set format numbers plainly unless a translator
// is supplied with WithLocaleTranslators.
var builtinLocales = map[string]func() locales.Translator{
	"ar": ar.New,
	"de": de.New,
	"en": en.New,
	"es": es.New,
	"fa": fa.New,
	"fr": fr.New,
	"hi": hi.New,
	"it": it.New,
	"ja": ja.New,
	"ko": ko.New,
	"nl": nl.New,
	"pl": pl.New,
	"pt": pt.New,
	"ru": ru.New,
	"tr": tr.New,
	"uk": uk.New,
	"zh": zh.New,
}
