// Package httpserver runs an http.Handler with timeouts, structured lifecycle
// logging and graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or
// Shutdown is called, then drains connections within the shutdown timeout.
// Ready and Addr let callers (and tests) wait for the listener when binding
// to ":0".
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listen and serve failures are wrapped with ErrStart, shutdown failures with
// ErrShutdown.
package httpserver
