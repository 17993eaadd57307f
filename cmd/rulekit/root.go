package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Version is injected during build.
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rulekit",
		Short: "Localized object validation",
		Long: `rulekit validates user documents against a declarative rule set and
reports field errors in the caller's language.

Run "rulekit serve" for the HTTP API, "rulekit check" to validate a YAML or
JSON document, or "rulekit messages" to inspect the message catalog.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newCheckCmd(), newMessagesCmd())
	return root
}

// loadLocalizer builds a localizer over the built-in catalog, overlaid with the
// catalog file at path when one is given.
func loadLocalizer(ctx context.Context, path string, log *slog.Logger) (*i18n.Localizer, error) {
	catalog := validator.DefaultCatalog()
	if path != "" {
		custom, err := i18n.LoadCatalog(ctx, i18n.NewFileSource(nil, path))
		if err != nil {
			return nil, err
		}
		catalog = catalog.Merge(custom)
	}

	return i18n.NewLocalizer(catalog,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
