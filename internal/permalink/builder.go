// internal/permalink/builder.go
//
// Host permalink generation.
//
// Context
// -------
// Builder produces the links the host would render without any plugin:
// post links expand the permalink structure with the *full* hierarchical
// path of the post's lowest-ID category, and archive links expand the
// category permastruct the same way.  Each result is then passed through
// the matching filter (post_link, category_link) so plugins get the last
// word.
//
// Plain mode (empty permalink structure) yields query-string links:
//
//	<siteurl>/?p=<id>     <siteurl>/?cat=<id>
//
// Notes
// -----
// • Posts without categories use "uncategorized" for %category%.
// • Oxford commas, two spaces after periods.

package permalink

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yanizio/singlecat/internal/hooks"
	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

// DefaultCategorySlug fills %category% for posts without categories.
const DefaultCategorySlug = "uncategorized"

// Builder renders host links.  Safe for concurrent use.
type Builder struct {
	store    taxonomy.Reader
	settings site.Provider
	hooks    *hooks.Hooks
}

// NewBuilder wires a Builder.  h may be nil when no filters are wanted.
func NewBuilder(store taxonomy.Reader, settings site.Provider, h *hooks.Hooks) *Builder {
	if h == nil {
		h = hooks.New()
	}
	return &Builder{store: store, settings: settings, hooks: h}
}

// PostLink returns the filtered permalink of p.
func (b *Builder) PostLink(ctx context.Context, p taxonomy.Post) (string, error) {
	link, err := b.DefaultPostLink(ctx, p)
	if err != nil {
		return "", err
	}
	return b.hooks.PostLink.Apply(ctx, link, p)
}

// CategoryLink returns the filtered archive link of category id.
func (b *Builder) CategoryLink(ctx context.Context, id int64) (string, error) {
	link, err := b.DefaultCategoryLink(ctx, id)
	if err != nil {
		return "", err
	}
	return b.hooks.CategoryLink.Apply(ctx, link, id)
}

// DefaultPostLink returns the unfiltered permalink of p.
func (b *Builder) DefaultPostLink(ctx context.Context, p taxonomy.Post) (string, error) {
	s, err := b.settings.Settings(ctx)
	if err != nil {
		return "", err
	}
	if !s.Pretty() {
		return s.Home() + "/?p=" + strconv.FormatInt(p.ID, 10), nil
	}

	category := ""
	if s.HasCategoryTag() {
		if category, err = b.categoryPath(ctx, p.ID); err != nil {
			return "", err
		}
	}
	path := Expand(s.PermalinkStructure, p, category)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.Home() + path, nil
}

// DefaultCategoryLink returns the unfiltered archive link of category id.
func (b *Builder) DefaultCategoryLink(ctx context.Context, id int64) (string, error) {
	s, err := b.settings.Settings(ctx)
	if err != nil {
		return "", err
	}
	ps := s.CategoryPermastruct()
	if ps == "" {
		return s.Home() + "/?cat=" + strconv.FormatInt(id, 10), nil
	}

	c, err := b.store.CategoryByID(ctx, id)
	if err != nil {
		return "", err
	}
	full, err := taxonomy.FullPath(ctx, b.store, *c)
	if err != nil {
		return "", fmt.Errorf("category %d path: %w", id, err)
	}
	link := strings.Replace(ps, site.CategoryTag, full, 1)
	return s.Home() + "/" + s.TrailingSlash(strings.TrimLeft(link, "/")), nil
}

// categoryPath returns the full path of the post's lowest-ID category.
func (b *Builder) categoryPath(ctx context.Context, postID int64) (string, error) {
	cats, err := b.store.PostCategories(ctx, postID)
	if err != nil {
		return "", err
	}
	low, err := taxonomy.Lowest(cats)
	if errors.Is(err, taxonomy.ErrNoCategories) {
		return DefaultCategorySlug, nil
	}
	return taxonomy.FullPath(ctx, b.store, low)
}

// Expand substitutes every known tag in structure for p.  category is the
// already-resolved %category% value.
func Expand(structure string, p taxonomy.Post, category string) string {
	t := p.PublishedAt
	r := strings.NewReplacer(
		"%year%", strconv.Itoa(t.Year()),
		"%monthnum%", fmt.Sprintf("%02d", int(t.Month())),
		"%day%", fmt.Sprintf("%02d", t.Day()),
		"%hour%", fmt.Sprintf("%02d", t.Hour()),
		"%minute%", fmt.Sprintf("%02d", t.Minute()),
		"%second%", fmt.Sprintf("%02d", t.Second()),
		"%post_id%", strconv.FormatInt(p.ID, 10),
		"%postname%", p.Slug,
		"%author%", p.Author,
		site.CategoryTag, category,
	)
	return r.Replace(structure)
}
