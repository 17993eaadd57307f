// Package logger builds *slog.Logger instances through functional options and
// adds attributes pulled from context.Context to every record.
//
// New picks a text or JSON handler, applies the level and static attributes,
// and wraps the result in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks (request id, negotiated locale) on each call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "rulekit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "user rejected",
//		logger.ValidationErrors(len(errs)),
//		logger.Duration(time.Since(start)),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel (see ParseLevel): minimum level.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("catalog loaded", logger.Error(err))
//
// needs no nil check.
package logger
