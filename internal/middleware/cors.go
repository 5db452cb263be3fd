// Package middleware holds the HTTP middleware shared by the webhook and
// admin API routes.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig lists what the admin dashboard may do cross-origin. An origin
// entry of "*" allows any origin; "https://*.kaapav.com" allows subdomains.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSConfig allows origins for the admin dashboard; none means any.
func DefaultCORSConfig(origins ...string) *CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", RequestIDHeader, SessionTokenHeader},
		ExposedHeaders: []string{RequestIDHeader, "Retry-After"},
		MaxAge:         86400,
	}
}

func (c *CORSConfig) allows(origin string) bool {
	for _, pattern := range c.AllowedOrigins {
		if pattern == "*" || strings.EqualFold(pattern, origin) {
			return true
		}
		scheme, host, ok := strings.Cut(pattern, "://*.")
		if !ok {
			continue
		}
		rest, found := strings.CutPrefix(strings.ToLower(origin), strings.ToLower(scheme)+"://")
		if found && strings.HasSuffix(rest, "."+strings.ToLower(host)) {
			return true
		}
	}
	return false
}

// CORS answers preflights itself and decorates actual requests. Requests
// without an Origin header pass through untouched; a preflight from an
// origin that is not allowed gets 403.
func CORS(config *CORSConfig) func(next http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

			if !config.allows(origin) {
				if preflight {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if preflight {
				h.Add("Vary", "Access-Control-Request-Method")
				h.Add("Vary", "Access-Control-Request-Headers")
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", headers)
				if config.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if exposed != "" {
				h.Set("Access-Control-Expose-Headers", exposed)
			}
			next.ServeHTTP(w, r)
		})
	}
}
