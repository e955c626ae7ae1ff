// internal/handlers/public.go
//
// Public pages: front page, category archive, and single post.
//
// Context
// -------
// The handler runs last in the chain, after routing.Middleware has stored
// a *routing.Query and template_redirect callbacks had their chance to
// end the request.  It never parses the URL itself; the Query decides
// which page is rendered.
//
// Every link on a page (post titles, category chips, the canonical tag)
// comes from permalink.Builder, so it carries whatever the post_link and
// category_link filters made of it.
//
// Notes
// -----
// • Store errors other than ErrNotFound render a bare 500 and are logged.
// • Oxford commas, two spaces after periods.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/singlecat/internal/head"
	"github.com/yanizio/singlecat/internal/permalink"
	"github.com/yanizio/singlecat/internal/requestinfo"
	"github.com/yanizio/singlecat/internal/routing"
	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
	"github.com/yanizio/singlecat/internal/view"
)

// Link is a rendered anchor.
type Link struct {
	Name string
	URL  string
}

// PostView is a post with its links resolved.
type PostView struct {
	Title       string
	Author      string
	URL         string
	PublishedAt time.Time
	Categories  []Link
}

// Page is the data handed to every template.
type Page struct {
	Head     *head.Builder
	Info     *requestinfo.RequestInfo
	Home     string
	SiteName string
	Heading  string
	Posts    []PostView
	Post     *PostView
}

// Public renders the pages.  Safe for concurrent use.
type Public struct {
	store    taxonomy.Reader
	settings site.Provider
	links    *permalink.Builder
	view     *view.Renderer
	name     string
	perPage  int
}

// NewPublic wires the handler.  perPage <= 0 means ten.
func NewPublic(store taxonomy.Reader, settings site.Provider, links *permalink.Builder, v *view.Renderer, name string, perPage int) *Public {
	if perPage <= 0 {
		perPage = 10
	}
	return &Public{store: store, settings: settings, links: links, view: v, name: name, perPage: perPage}
}

func (p *Public) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := routing.FromContext(ctx)

	s, err := p.settings.Settings(ctx)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	page := &Page{
		Head:     head.New(),
		Info:     requestinfo.Of(r),
		Home:     s.Home(),
		SiteName: p.name,
	}

	var (
		name   string
		status = http.StatusOK
	)
	switch {
	case q == nil || q.Kind == routing.KindNone:
		name, status = "notfound", http.StatusNotFound
		err = p.notFound(page)
	case q.Kind == routing.KindHome:
		name, err = "home", p.home(ctx, page)
	case q.IsCategory():
		name, err = "category", p.category(ctx, page, q)
	case q.IsSingle():
		name, err = "single", p.single(ctx, page, q)
	}
	if errors.Is(err, taxonomy.ErrNotFound) {
		name, status = "notfound", http.StatusNotFound
		err = p.notFound(page)
	}
	if err != nil {
		p.fail(w, r, err)
		return
	}

	if err := p.view.Render(w, status, name, page); err != nil {
		p.fail(w, r, err)
	}
}

func (p *Public) home(ctx context.Context, page *Page) error {
	posts, err := p.store.RecentPosts(ctx, p.perPage)
	if err != nil {
		return err
	}
	page.Heading = p.name
	page.Head.SetTitle(p.name)
	page.Head.Canonical(page.Home + "/")
	page.Posts, err = p.postViews(ctx, posts)
	return err
}

func (p *Public) category(ctx context.Context, page *Page, q *routing.Query) error {
	c, err := p.store.CategoryByID(ctx, q.CategoryID)
	if err != nil {
		return err
	}
	canonical, err := p.links.CategoryLink(ctx, c.ID)
	if err != nil {
		return err
	}
	posts, err := p.store.PostsInCategory(ctx, c.ID, p.perPage)
	if err != nil {
		return err
	}

	page.Heading = c.Name
	page.Head.SetTitle(c.Name + " | " + p.name)
	page.Head.Canonical(canonical)
	page.Posts, err = p.postViews(ctx, posts)
	return err
}

func (p *Public) single(ctx context.Context, page *Page, q *routing.Query) error {
	post, err := p.store.PostByID(ctx, q.PostID)
	if err != nil {
		return err
	}
	pv, err := p.postView(ctx, *post)
	if err != nil {
		return err
	}

	page.Heading = post.Title
	page.Post = &pv
	page.Head.SetTitle(post.Title + " | " + p.name)
	page.Head.Canonical(pv.URL)
	page.Head.Meta("author", post.Author)
	return nil
}

func (p *Public) notFound(page *Page) error {
	page.Heading = "Not found"
	page.Head.SetTitle("Not found | " + p.name)
	page.Head.Meta("robots", "noindex")
	return nil
}

func (p *Public) postViews(ctx context.Context, posts []taxonomy.Post) ([]PostView, error) {
	out := make([]PostView, 0, len(posts))
	for _, post := range posts {
		pv, err := p.postView(ctx, post)
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, nil
}

func (p *Public) postView(ctx context.Context, post taxonomy.Post) (PostView, error) {
	url, err := p.links.PostLink(ctx, post)
	if err != nil {
		return PostView{}, err
	}
	cats, err := p.store.PostCategories(ctx, post.ID)
	if err != nil {
		return PostView{}, err
	}

	pv := PostView{
		Title:       post.Title,
		Author:      post.Author,
		URL:         url,
		PublishedAt: post.PublishedAt,
		Categories:  make([]Link, 0, len(cats)),
	}
	for _, c := range cats {
		link, err := p.links.CategoryLink(ctx, c.ID)
		if err != nil {
			return PostView{}, err
		}
		pv.Categories = append(pv.Categories, Link{Name: c.Name, URL: link})
	}
	return pv, nil
}

func (p *Public) fail(w http.ResponseWriter, r *http.Request, err error) {
	zap.L().Error("render failed",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
