// Package requestid tags HTTP requests with a correlation id.
//
// Middleware keeps a valid client-supplied X-Request-ID header or generates a
// UUIDv4, stores the id in the request context and echoes it back in the
// response. FromContext reads it, and LoggerExtractor plugs it into
// pkg/logger so every record logged with the request context carries
// "request_id".
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Invalid ids (empty, too long, or containing characters other than letters,
// digits, '-' and '_') are replaced silently.
package requestid
