// Package clientip resolves the address of the client behind an HTTP request
// and carries it in the request context.
//
// Proxy headers are only honoured when the server runs behind a trusted
// reverse proxy; otherwise any client could pick its own address:
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		ip := clientip.FromContext(r.Context())
//	}
//
// LoggerExtractor adds the address to every log record written with the
// request context.
package clientip
