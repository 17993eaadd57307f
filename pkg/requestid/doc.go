// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts a client-supplied X-Request-ID made of letters, digits,
// '-' and '_' (at most 128 characters) and otherwise generates a UUIDv4 with
// github.com/google/uuid. The id is echoed in the response header, stored in
// the request context (FromContext) and, through LoggerExtractor, added to
// log records:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
