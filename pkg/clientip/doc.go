// Package clientip resolves the client address of an HTTP request from proxy
// headers and RemoteAddr, and carries it through the request context so it
// can be attached to log records.
//
// Proxy headers are only trustworthy when the service sits behind a proxy that
// overwrites them. Use FromHeaders to narrow the list for other deployments.
//
//	router.Use(clientip.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
