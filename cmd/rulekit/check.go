package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

var errInvalidDocument = errors.New("document is invalid")

func newCheckCmd() *cobra.Command {
	var (
		lang        string
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a YAML or JSON user document",
		Long: `Decode FILE (.yaml, .yml or .json) as a user document and validate it.
Field errors are printed one per line as "field: message"; the exit code is 1
when the document is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := binder.FormatForFile(path)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var dto UserDto
			if err := binder.Document(format, data, &dto); err != nil {
				return err
			}

			localizer, err := loadLocalizer(cmd.Context(), catalogPath, logger.Discard())
			if err != nil {
				return fmt.Errorf("load message catalog: %w", err)
			}

			errs, err := newUserValidator(validator.WithLocalizer(localizer)).Validate(lang, dto)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if errs.IsEmpty() {
				fmt.Fprintln(out, "Valid!")
				return nil
			}
			for _, fe := range errs {
				fmt.Fprintf(out, "%s: %s\n", fe.Field, fe.Message)
			}
			return errInvalidDocument
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "language for error messages")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML or JSON catalog merged over the built-in messages")
	return cmd
}
