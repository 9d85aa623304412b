package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// Response headers set by Middleware.
const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// KeyFunc returns the bucket key of a request.
type KeyFunc func(r *http.Request) string

// Middleware spends one token of the request's bucket per request and sets
// the X-RateLimit-* headers. Denied requests get Retry-After and are passed to
// denied, or answered with a plain 429 when denied is nil. Store failures
// answer 500.
func Middleware(b *Bucket, key KeyFunc, denied http.Handler) func(http.Handler) http.Handler {
	if denied == nil {
		denied = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := b.Allow(r.Context(), key(r))
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			h := w.Header()
			h.Set(HeaderLimit, strconv.Itoa(res.Limit))
			h.Set(HeaderRemaining, strconv.Itoa(max(res.Remaining, 0)))
			h.Set(HeaderReset, strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int(math.Ceil(res.RetryAfter(time.Now()).Seconds()))
				h.Set(HeaderRetryAfter, strconv.Itoa(max(secs, 1)))
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
