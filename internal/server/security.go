package server

import (
	"net/http"
	"strings"
)

// SecurityConfig holds the security-related settings of the HTTP API.
type SecurityConfig struct {
	// EnableCORS turns on cross-origin response headers.
	EnableCORS bool
	// AllowedOrigins lists origins allowed to call the API; "*" matches any.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised to browsers.
	AllowedMethods []string
	// MaxSweepSamples caps the sample count a sweep request may ask for,
	// bounding the work a single call can demand.
	MaxSweepSamples int
}

// DefaultSecurityConfig returns the security settings used when the server
// is constructed without explicit configuration.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:      true,
		AllowedOrigins:  []string{"*"},
		AllowedMethods:  []string{"GET", "OPTIONS"},
		MaxSweepSamples: 100_000,
	}
}

// SecurityMiddleware wraps next with security response headers and CORS
// handling. OPTIONS preflight requests are answered directly with 204.
//
// Parameters:
//   - config: The security settings to apply.
//   - next: The handler to wrap.
//
// Returns:
//   - http.HandlerFunc: The wrapped handler.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Security headers on every response
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// matchOrigin returns the Access-Control-Allow-Origin value for the request
// origin, or "" when the origin is not allowed. A wildcard entry matches
// regardless of the request origin.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}
