package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

func newMessagesCmd() *cobra.Command {
	var (
		lang        string
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Print every catalog message for a language",
		Long: `Print each message key with its template resolved for --lang.
Keys missing in that language show the fallback (English) text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			localizer, err := loadLocalizer(cmd.Context(), catalogPath, logger.Discard())
			if err != nil {
				return fmt.Errorf("load message catalog: %w", err)
			}

			locale := i18n.NormalizeLocale(lang)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, key := range localizer.Catalog().Keys() {
				marker := ""
				if !localizer.Has(key, locale) {
					marker = " (fallback)"
				}
				fmt.Fprintf(w, "%s\t%s%s\n", key, localizer.Resolve(key, locale), marker)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "language to resolve messages for")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML or JSON catalog merged over the built-in messages")
	return cmd
}
