// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"bytes"
	"net/http"
	"strconv"

	"yenisei/internal/cache"
)

// CacheStatusHeader reports HIT or MISS on cacheable requests.
const CacheStatusHeader = "X-Cache"

// captureWriter tees the body into a buffer while writing it through.
type captureWriter struct {
	*responseWriter
	buf bytes.Buffer
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.responseWriter.Write(b)
}

// CacheKey scopes a request URI to a catalog generation. A response rendered
// from an older snapshot and stored after a reload lands under a key no new
// request asks for.
func CacheKey(generation uint64, uri string) string {
	return "g" + strconv.FormatUint(generation, 10) + ":" + uri
}

// ResponseCache serves GET responses from rc keyed by the catalog generation
// and the request URI, and stores successful responses on a miss. Requests
// for which skip returns true bypass the cache entirely. A nil rc disables
// caching; a nil generation keys everything under generation 0.
func ResponseCache(rc *cache.ResponseCache, skip func(*http.Request) bool, generation func() uint64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !rc.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || (skip != nil && skip(r)) {
				next.ServeHTTP(w, r)
				return
			}

			var gen uint64
			if generation != nil {
				gen = generation()
			}
			key := CacheKey(gen, r.URL.RequestURI())
			if e, ok := rc.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", e.ContentType)
				w.Header().Set(CacheStatusHeader, "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(e.Body)
				return
			}

			w.Header().Set(CacheStatusHeader, "MISS")
			cw := &captureWriter{responseWriter: wrap(w)}
			next.ServeHTTP(cw, r)

			if cw.statusCode == http.StatusOK {
				rc.Set(r.Context(), key, cache.Entry{
					ContentType: cw.Header().Get("Content-Type"),
					Body:        cw.buf.Bytes(),
				})
			}
		})
	}
}
