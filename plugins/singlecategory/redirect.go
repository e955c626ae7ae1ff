package singlecategory

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/yanizio/singlecat/internal/metrics"
	"github.com/yanizio/singlecat/internal/requestinfo"
	"github.com/yanizio/singlecat/internal/routing"
)

// DefaultRedirectStatus is temporary on purpose: detection is a heuristic
// and a wrong 301 would be cached by browsers and crawlers.
const DefaultRedirectStatus = http.StatusFound

// RedirectTarget returns the canonical URL for a request that still uses a
// hierarchical category path, or "" when q is already canonical.
//
//   - Category archive: the requested path differs from the resolved
//     slug ("news/tech" vs "tech").
//   - Single post: the requested category path has more than one segment,
//     so "news/golang" already redirects.  Counting slashes over the whole
//     "category/post" path with "> 1" would wait for three segments.
func (p *Plugin) RedirectTarget(ctx context.Context, q *routing.Query) (string, error) {
	switch {
	case q.IsCategory():
		if q.RawCategoryName != "" && q.RawCategoryName != q.CategoryName {
			return p.CategoryLink(ctx, "", q.CategoryID)
		}
	case q.IsSingle():
		if routing.Segments(q.RawCategoryName) > 1 {
			post, err := p.store.PostByID(ctx, q.PostID)
			if err != nil {
				return "", err
			}
			return p.links.PostLink(ctx, *post)
		}
	}
	return "", nil
}

// Redirect is the template_redirect action.
func (p *Plugin) Redirect(w http.ResponseWriter, r *http.Request, q *routing.Query) bool {
	ctx := r.Context()

	target, err := p.RedirectTarget(ctx, q)
	if err != nil {
		zap.L().Warn("single category redirect skipped",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		return false
	}
	if target == "" || sameLocation(target, r) {
		return false
	}

	status, err := p.hooks.RedirectStatus.Apply(ctx, DefaultRedirectStatus, target)
	if err != nil || status < 300 || status > 399 {
		zap.L().Warn("redirect status filter ignored",
			zap.Int("status", status),
			zap.Error(err))
		status = DefaultRedirectStatus
	}

	bot := requestinfo.Of(r).UA.IsBot
	metrics.RedirectsTotal.WithLabelValues(q.Kind.String(), strconv.FormatBool(bot)).Inc()
	zap.L().Info("hierarchical category url redirected",
		zap.String("from", r.URL.RequestURI()),
		zap.String("to", target),
		zap.Int("status", status),
		zap.Bool("bot", bot))

	http.Redirect(w, r, target, status)
	return true
}

// sameLocation reports whether target points back at the current request,
// which would loop.
func sameLocation(target string, r *http.Request) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	if u.Host != "" && u.Host != r.Host {
		return false
	}
	return u.Path == r.URL.Path && u.RawQuery == r.URL.RawQuery
}
