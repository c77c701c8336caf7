package middleware

import (
	"net/http"
)

const (
	cacheNoStore = "no-store, no-cache, must-revalidate"
	cacheCatalog = "public, max-age=300"
	catalogPath  = "/api/discover/tests"
)

// CacheControl adds cache headers per route. Only the quiz catalog is
// static; everything else is computed per request or reports live state.
type CacheControl struct{}

// NewCacheControl creates a new cache control middleware.
func NewCacheControl() *CacheControl {
	return &CacheControl{}
}

func (c *CacheControl) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == catalogPath {
			w.Header().Set("Cache-Control", cacheCatalog)
		} else {
			w.Header().Set("Cache-Control", cacheNoStore)
			w.Header().Set("Pragma", "no-cache")
		}

		next.ServeHTTP(w, r)
	})
}
