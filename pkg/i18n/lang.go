package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when no locale is known and as the default fallback.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps header parsing; 4KB is far above any real header.
const maxAcceptLanguageLength = 4096

// NormalizeLocale reduces a culture name to its lowercased base language subtag:
// "en-US" -> "en", "zh_Hant_TW" -> "zh", " FR " -> "fr".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, "-_"); idx >= 0 {
		locale = locale[:idx]
	}
	return strings.ToLower(locale)
}

type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader splits an RFC 7231 Accept-Language header into
// lowercased tags ordered by descending quality. Malformed q-values count as 1.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		lang, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || lang == "*" {
			continue
		}

		q := 1.0
		if qPart, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(qPart, 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		if q == 0 {
			continue
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

// ParseAcceptLanguage picks the best supported language for an Accept-Language
// header. Exact tags are tried first in quality order, then base languages
// ("en-GB" -> "en"). Returns defaultLang when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(supported, lq.lang) {
			return lq.lang
		}
	}

	for _, lq := range languages {
		if base := NormalizeLocale(lq.lang); slices.Contains(supported, base) {
			return base
		}
	}

	return defaultLang
}
