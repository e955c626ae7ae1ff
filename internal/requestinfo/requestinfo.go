//
//  internal/requestinfo/requestinfo.go
//
//  Lightweight per-request metadata (user-agent fingerprint, client IP,
//  primary language, and timestamp).  These structs are inert.  They
//  contain no pointers to database handles or large buffers, so they are
//  safe to log.
//
//  Dependencies
//  • internal/ua (github.com/avct/uasurfer)
//

package requestinfo

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yanizio/singlecat/internal/ua"
)

// RequestInfo is stored in the request context by Enrich.
type RequestInfo struct {
	UA          ua.Info
	IP          net.IP
	PrimaryLang string // first tag from Accept-Language ("en", "pt-br", ...)
	Timestamp   time.Time
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich, or nil.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// WithInfo stores info in ctx.
func WithInfo(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// Of returns the info attached to r, or parses it on the spot when Enrich
// has not run (unit tests, handlers mounted outside the router).
func Of(r *http.Request) *RequestInfo {
	if info := FromContext(r.Context()); info != nil {
		return info
	}
	return build(r)
}

func build(r *http.Request) *RequestInfo {
	return &RequestInfo{
		UA:          ua.Parse(r.UserAgent()),
		IP:          clientIP(r),
		PrimaryLang: primaryLang(r.Header.Get("Accept-Language")),
		Timestamp:   time.Now().UTC(),
	}
}

// clientIP extracts the left-most address from X-Forwarded-For or
// X-Real-IP, falling back to r.RemoteAddr ("ip:port").
func clientIP(r *http.Request) net.IP {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip
			}
		}
	}
	if xrip := r.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return nil
}

// primaryLang extracts the first language subtag before any ";q=" rule.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	tag, _, _ := strings.Cut(al, ",")
	tag, _, _ = strings.Cut(strings.TrimSpace(tag), ";")
	return strings.ToLower(tag)
}
