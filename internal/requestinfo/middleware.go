// internal/requestinfo/middleware.go
//
// HTTP middleware that enriches each request with *RequestInfo.
//
/*
Context
--------
This handler sits right after the request logger.  For every request it
parses the User-Agent header and Accept-Language list, extracts the
client IP from X-Forwarded-For or X-Real-IP, and stores a `*RequestInfo`
in the request context.  The redirect action and the page templates read
it from there instead of reparsing.

Notes
-----
  • A DEBUG span with browser, device, bot flag, and path is logged per
    request.
  • Oxford commas, two spaces after periods.  No em dash.
*/
package requestinfo

import (
	"net/http"

	"go.uber.org/zap"
)

// Enrich wraps an http.Handler, attaches *RequestInfo, and forwards.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := build(r)

		zap.S().Debugw("request info",
			"ip", info.IP,
			"browser", info.UA.Browser,
			"device", info.UA.Device,
			"bot", info.UA.IsBot,
			"lang", info.PrimaryLang,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r.WithContext(WithInfo(r.Context(), info)))
	})
}
