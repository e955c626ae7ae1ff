package singlecategory

import (
	"context"
	"strconv"
	"strings"

	"github.com/yanizio/singlecat/internal/metrics"
	"github.com/yanizio/singlecat/internal/site"
)

// CategoryLink is the category_link filter.  It ignores the host-built
// link and renders the archive URL from the category's own slug only, so
// depth in the tree never shows up in the URL.
//
// With pretty links off the result is "<siteurl>/?cat=<id>".  A failed
// category lookup is returned to the caller unchanged.
func (p *Plugin) CategoryLink(ctx context.Context, _ string, id int64) (string, error) {
	s, err := p.settings.Settings(ctx)
	if err != nil {
		return "", err
	}

	ps := s.CategoryPermastruct()
	if ps == "" {
		return s.Home() + "/?cat=" + strconv.FormatInt(id, 10), nil
	}

	c, err := p.store.CategoryByID(ctx, id)
	if err != nil {
		return "", err
	}

	link := strings.Replace(ps, site.CategoryTag, c.Slug, 1)
	metrics.LinkRewritesTotal.WithLabelValues("category").Inc()
	return s.Home() + "/" + s.TrailingSlash(strings.TrimLeft(link, "/")), nil
}
