// Package ratelimiter implements a token bucket rate limiter with an
// in-memory store and HTTP middleware.
//
// Each key owns a bucket holding up to Capacity tokens. Every RefillInterval
// RefillRate tokens are added back; a request consumes one token and is denied
// once the bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       20,
//		RefillRate:     5,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(bucket, keyFunc, nil)).Post("/v1/majority", h)
//
// Config carries env tags so it can be nested in an application config.
package ratelimiter
