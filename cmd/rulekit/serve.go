package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/clientip"
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type appConfig struct {
	AppName       string `env:"APP_NAME" envDefault:"rulekit"`
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
	CatalogPath   string `env:"CATALOG_PATH"`

	HTTP httpserver.Config
}

func newServeCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP API",
		Long: `Serve POST /users and GET /healthz.

Configuration comes from the environment (and an optional .env file):
APP_NAME, APP_ENV, LOG_LEVEL, DEFAULT_LOCALE, CATALOG_PATH and HTTP_*.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}

			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			localizer, err := loadLocalizer(cmd.Context(), cfg.CatalogPath, log.With(logger.Component("i18n")))
			if err != nil {
				return fmt.Errorf("load message catalog: %w", err)
			}

			users := newUserValidator(
				validator.WithLocalizer(localizer),
				validator.WithDefaultLocale(cfg.DefaultLocale),
				validator.WithLogger(log.With(logger.Component("validator"))),
			)
			router := newRouter(users, localizer.SupportedLanguages(), cfg.DefaultLocale, log)

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("http"))))
			return srv.Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load")
	return cmd
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithOutput(os.Stdout),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
