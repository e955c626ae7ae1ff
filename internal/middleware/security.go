// internal/middleware/security.go
//
// Security-header middleware.
//
// Injects industry-standard headers on every response:
//
//   • Strict-Transport-Security  –  forces HTTPS (2 years + preload)
//   • Content-Security-Policy   –  sane default self-only policy
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  drops path/query from Referer
//   • Permissions-Policy        –  disables powerful features by default
//
// Notes
// -----
// • Headers are added *before* next.ServeHTTP; once a handler has written
//   the status line (redirects included) the header map is frozen.  A
//   handler may still override any value.
// • HSTS is only sent when HTTPS is enforced; announcing it on a plain
//   HTTP development server would pin browsers to a port that does not
//   speak TLS.
// • Oxford commas, two spaces after periods.

package middleware

import "net/http"

// Security returns a wrapper that sets security headers on every
// response.  hsts adds Strict-Transport-Security.
func Security(hsts bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return securityHeaders(next, hsts)
	}
}

func securityHeaders(next http.Handler, withHSTS bool) http.Handler {
	const (
		hsts = "max-age=63072000; includeSubDomains; preload"
		csp  = "default-src 'self'; img-src 'self' data:; object-src 'none'; " +
			"base-uri 'self'; frame-ancestors 'none'"
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "strict-origin-when-cross-origin"
		perm  = "geolocation=(), microphone=(), camera=()"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		add := w.Header().Add // shorthand

		if withHSTS && w.Header().Get("Strict-Transport-Security") == "" {
			add("Strict-Transport-Security", hsts)
		}
		if w.Header().Get("Content-Security-Policy") == "" {
			add("Content-Security-Policy", csp)
		}
		if w.Header().Get("X-Frame-Options") == "" {
			add("X-Frame-Options", xfo)
		}
		if w.Header().Get("X-Content-Type-Options") == "" {
			add("X-Content-Type-Options", nosn)
		}
		if w.Header().Get("Referrer-Policy") == "" {
			add("Referrer-Policy", refer)
		}
		if w.Header().Get("Permissions-Policy") == "" {
			add("Permissions-Policy", perm)
		}

		next.ServeHTTP(w, r)
	})
}
