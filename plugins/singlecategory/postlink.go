package singlecategory

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/singlecat/internal/metrics"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

// PostLink is the post_link filter.  When the permalink structure embeds
// %category%, the full hierarchical path of the post's lowest-ID category
// is replaced by that category's own slug.
//
// A post without categories keeps its permalink; so does a permalink in
// which the hierarchical path can not be found.
func (p *Plugin) PostLink(ctx context.Context, link string, post taxonomy.Post) (string, error) {
	s, err := p.settings.Settings(ctx)
	if err != nil {
		return link, err
	}
	if !s.HasCategoryTag() {
		return link, nil
	}

	cats, err := p.store.PostCategories(ctx, post.ID)
	if err != nil {
		return link, err
	}
	low, err := taxonomy.Lowest(cats)
	if errors.Is(err, taxonomy.ErrNoCategories) {
		metrics.LinkFallbacksTotal.WithLabelValues("no_categories").Inc()
		zap.L().Debug("post has no categories, permalink kept",
			zap.Int64("post_id", post.ID))
		return link, nil
	}
	if err != nil {
		return link, err
	}
	if low.IsRoot() {
		return link, nil
	}

	parents, err := taxonomy.ParentPath(ctx, p.store, low.ParentID)
	if err != nil {
		return link, err
	}

	out, ok := CollapseCategoryPath(link, s.Home(), parents+low.Slug, low.Slug)
	if !ok {
		metrics.LinkFallbacksTotal.WithLabelValues("path_not_found").Inc()
		zap.L().Debug("category path not in permalink, kept",
			zap.Int64("post_id", post.ID),
			zap.String("path", parents+low.Slug),
			zap.String("link", link))
		return link, nil
	}

	metrics.LinkRewritesTotal.WithLabelValues("post").Inc()
	return out, nil
}

// CollapseCategoryPath replaces the first occurrence of "/"+full in link
// with "/"+leaf.  The search starts after home when link begins with it,
// and a match must end on a segment boundary ("/", "?", "#", or the end),
// so "news/tech" never matches inside "news/technology".  ok is false when
// no such occurrence exists; link is then returned as is.
func CollapseCategoryPath(link, home, full, leaf string) (out string, ok bool) {
	start := 0
	if home != "" && strings.HasPrefix(link, home) {
		start = len(home)
	}
	rest := link[start:]
	needle := "/" + strings.Trim(full, "/")

	for off := 0; off < len(rest); {
		i := strings.Index(rest[off:], needle)
		if i < 0 {
			break
		}
		i += off
		end := i + len(needle)
		if end == len(rest) || strings.IndexByte("/?#", rest[end]) >= 0 {
			return link[:start] + rest[:i] + "/" + leaf + rest[end:], true
		}
		off = i + 1
	}
	return link, false
}
