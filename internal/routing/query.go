// internal/routing/query.go
//
// Resolved request state.
//
// Context
// -------
// Query is what the host knows about a request once routing is done.  It
// is handed to template_redirect callbacks and to the public handlers as
// an explicit value instead of living in package globals, so every
// consumer can be tested with a hand-built Query.
//
// RawCategoryName keeps the category path exactly as requested
// ("news/tech/golang"), while CategoryName holds the canonical single slug
// routing resolved it to ("golang").  The difference between the two is
// what marks a legacy hierarchical URL.

package routing

import "context"

// Kind classifies a resolved request.
type Kind int

const (
	KindNone     Kind = iota // nothing matched, render 404
	KindHome                 // site root
	KindCategory             // category archive
	KindSingle               // single post
)

// String returns a short lowercase label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindCategory:
		return "category"
	case KindSingle:
		return "single"
	default:
		return "none"
	}
}

// Query is the routing result for one request.
type Query struct {
	Kind Kind

	RawCategoryName string // category path as requested, "" for ?cat=
	CategoryName    string // canonical (leaf) slug
	CategoryID      int64

	PostID   int64
	PostSlug string
}

// IsCategory reports a category archive.
func (q *Query) IsCategory() bool { return q != nil && q.Kind == KindCategory }

// IsSingle reports a single-post view.
func (q *Query) IsSingle() bool { return q != nil && q.Kind == KindSingle }

type ctxKey struct{} // unexported, collision-proof

// WithQuery returns a child context carrying q.
func WithQuery(ctx context.Context, q *Query) context.Context {
	return context.WithValue(ctx, ctxKey{}, q)
}

// FromContext returns the Query stored by Middleware, or nil.
func FromContext(ctx context.Context) *Query {
	q, _ := ctx.Value(ctxKey{}).(*Query)
	return q
}
