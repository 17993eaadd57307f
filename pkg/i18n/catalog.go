package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Catalog is an immutable table of message templates keyed by message key and
// then by locale. Templates use positional placeholders ({0}, {1}, ...).
//
// A Catalog is built once at startup and never mutated afterwards, so it is safe
// for concurrent reads without synchronisation.
type Catalog struct {
	entries map[string]map[string]string
}

// NewCatalog copies the given entries into a new Catalog.
// Locale codes are reduced with NormalizeLocale, so "pt-BR" is stored as "pt".
// When several codes of one entry collapse to the same language, the bare
// language code wins, otherwise the first code in sorted order.
// Empty keys or locale codes are rejected.
func NewCatalog(entries map[string]map[string]string) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]map[string]string, len(entries))}

	for key, translations := range entries {
		if strings.TrimSpace(key) == "" {
			return nil, ErrEmptyMessageKey
		}

		codes := lo.Keys(translations)
		slices.Sort(codes)

		copied := make(map[string]string, len(translations))
		exact := make(map[string]bool, len(translations))
		for _, code := range codes {
			locale := NormalizeLocale(code)
			if locale == "" {
				return nil, fmt.Errorf("%w: key %q", ErrEmptyLocale, key)
			}
			isBase := strings.ToLower(strings.TrimSpace(code)) == locale
			if _, taken := copied[locale]; taken && (exact[locale] || !isBase) {
				continue
			}
			copied[locale] = translations[code]
			exact[locale] = isBase
		}
		c.entries[key] = copied
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid input.
// Intended for package-level catalogs built from literals.
func MustCatalog(entries map[string]map[string]string) *Catalog {
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the raw template for key in exactly the given locale.
func (c *Catalog) Lookup(key, locale string) (string, bool) {
	if c == nil {
		return "", false
	}
	translations, ok := c.entries[key]
	if !ok {
		return "", false
	}
	tmpl, ok := translations[locale]
	return tmpl, ok
}

// Entry returns a copy of all translations registered for key.
func (c *Catalog) Entry(key string) (map[string]string, bool) {
	if c == nil {
		return nil, false
	}
	translations, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return maps.Clone(translations), true
}

// Keys returns all message keys in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := lo.Keys(c.entries)
	slices.Sort(keys)
	return keys
}

// Locales returns every locale that has at least one template, sorted.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	var locales []string
	for _, translations := range c.entries {
		locales = append(locales, lo.Keys(translations)...)
	}
	locales = lo.Uniq(locales)
	slices.Sort(locales)
	return locales
}

// Len returns the number of message keys.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Merge returns a new Catalog holding the entries of c overlaid with the entries
// of other. Templates from other win per (key, locale) pair. Neither input is modified.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := &Catalog{entries: make(map[string]map[string]string)}
	for _, src := range []*Catalog{c, other} {
		if src == nil {
			continue
		}
		for key, translations := range src.entries {
			dst, ok := merged.entries[key]
			if !ok {
				dst = make(map[string]string, len(translations))
				merged.entries[key] = dst
			}
			maps.Copy(dst, translations)
		}
	}
	return merged
}
