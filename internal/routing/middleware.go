// internal/routing/middleware.go
//
// Chi middleware that resolves each request and stores the Query in the
// request context.  Must run before template_redirect callbacks and the
// public handlers, which read the Query through FromContext.

package routing

import (
	"net/http"

	"go.uber.org/zap"
)

// Middleware returns a resolver-bound middleware.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q, err := res.Resolve(r.Context(), r)
			if err != nil {
				zap.L().Error("route resolve failed",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError),
					http.StatusInternalServerError)
				return
			}

			zap.L().Debug("route resolved",
				zap.String("path", r.URL.Path),
				zap.Stringer("kind", q.Kind),
				zap.String("category_raw", q.RawCategoryName),
				zap.String("category", q.CategoryName),
				zap.Int64("post_id", q.PostID))

			next.ServeHTTP(w, r.WithContext(WithQuery(r.Context(), q)))
		})
	}
}
