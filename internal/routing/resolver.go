// internal/routing/resolver.go
//
// Request → Query resolution.
//
// Workflow
// --------
//  1. Strip the SiteURL sub-path (if the site lives under "/blog").
//  2. Query-string links (?cat=, ?p=) resolve by ID regardless of mode.
//  3. "/" is the home page.
//  4. With pretty links on, the category permastruct is tried first, then
//     the post structure.  Archive rules must win: with "/%category%/
//     %postname%/" the path "/category/tech/" would otherwise read as post
//     "tech" in category "category".
//  5. Unknown categories or posts resolve to KindNone; only store failures
//     are errors.  A multi-segment archive path must be the category's
//     real ancestor chain, so "/category/bogus/golang/" is a 404 rather
//     than an alias of "/category/golang/".

package routing

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

// Resolver maps requests onto posts and categories.
type Resolver struct {
	store    taxonomy.Reader
	settings site.Provider
}

// NewResolver returns a Resolver reading from store and settings.
func NewResolver(store taxonomy.Reader, settings site.Provider) *Resolver {
	return &Resolver{store: store, settings: settings}
}

// Resolve classifies r.
func (rs *Resolver) Resolve(ctx context.Context, r *http.Request) (*Query, error) {
	s, err := rs.settings.Settings(ctx)
	if err != nil {
		return nil, err
	}

	args := r.URL.Query()
	if v := args.Get("cat"); v != "" {
		return rs.categoryByID(ctx, v)
	}
	if v := args.Get("p"); v != "" {
		return rs.postByID(ctx, v)
	}

	path := stripBase(r.URL.Path, s.Home())
	if path == "/" {
		return &Query{Kind: KindHome}, nil
	}
	if !s.Pretty() {
		return &Query{Kind: KindNone}, nil
	}

	cp, err := Compile(s.CategoryPermastruct())
	if err != nil {
		return nil, err
	}
	if m := cp.Match(path); m != nil {
		return rs.categoryByPath(ctx, m["category"])
	}

	pp, err := Compile(s.PermalinkStructure)
	if err != nil {
		return nil, err
	}
	if m := pp.Match(path); m != nil {
		return rs.single(ctx, m)
	}
	return &Query{Kind: KindNone}, nil
}

func (rs *Resolver) categoryByID(ctx context.Context, raw string) (*Query, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &Query{Kind: KindNone}, nil
	}
	c, err := rs.store.CategoryByID(ctx, id)
	if err != nil {
		return none(err)
	}
	return &Query{Kind: KindCategory, CategoryName: c.Slug, CategoryID: c.ID}, nil
}

func (rs *Resolver) categoryByPath(ctx context.Context, raw string) (*Query, error) {
	c, err := rs.store.CategoryBySlug(ctx, LeafSegment(raw))
	if err != nil {
		return none(err)
	}
	if Segments(raw) > 1 {
		full, err := taxonomy.FullPath(ctx, rs.store, *c)
		if err != nil {
			return none(err)
		}
		if strings.Trim(raw, "/") != full {
			return &Query{Kind: KindNone}, nil
		}
	}
	return &Query{
		Kind:            KindCategory,
		RawCategoryName: raw,
		CategoryName:    c.Slug,
		CategoryID:      c.ID,
	}, nil
}

func (rs *Resolver) postByID(ctx context.Context, raw string) (*Query, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &Query{Kind: KindNone}, nil
	}
	p, err := rs.store.PostByID(ctx, id)
	if err != nil {
		return none(err)
	}
	return &Query{Kind: KindSingle, PostID: p.ID, PostSlug: p.Slug}, nil
}

func (rs *Resolver) single(ctx context.Context, m map[string]string) (*Query, error) {
	var (
		p   *taxonomy.Post
		err error
	)
	switch {
	case m["post_id"] != "":
		id, perr := strconv.ParseInt(m["post_id"], 10, 64)
		if perr != nil {
			return &Query{Kind: KindNone}, nil
		}
		p, err = rs.store.PostByID(ctx, id)
	case m["postname"] != "":
		p, err = rs.store.PostBySlug(ctx, m["postname"])
	default:
		return &Query{Kind: KindNone}, nil
	}
	if err != nil {
		return none(err)
	}

	raw := m["category"]
	return &Query{
		Kind:            KindSingle,
		RawCategoryName: raw,
		CategoryName:    LeafSegment(raw),
		PostID:          p.ID,
		PostSlug:        p.Slug,
	}, nil
}

// none turns ErrNotFound into a KindNone result and passes other errors.
func none(err error) (*Query, error) {
	if errors.Is(err, taxonomy.ErrNotFound) {
		return &Query{Kind: KindNone}, nil
	}
	return nil, err
}

// stripBase removes the path component of home from path and guarantees a
// leading slash.
func stripBase(path, home string) string {
	if u, err := url.Parse(home); err == nil {
		if base := strings.TrimRight(u.Path, "/"); base != "" {
			if path == base {
				return "/"
			}
			if strings.HasPrefix(path, base+"/") {
				path = path[len(base):]
			}
		}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
