// plugins/singlecategory/plugin.go
//
// Single Category Permalink.
//
// Context
// -------
// Hierarchical categories make the host embed the whole ancestor chain in
// links: "/news/tech/golang/go-1-22-released/".  This plugin reduces every
// post and category link to the lowest-level category only
// ("/golang/go-1-22-released/", "/category/golang/") and redirects visitors
// who still arrive through the long form.
//
// Extension points used
// ---------------------
//   • post_link          ─ PostLink
//   • category_link      ─ CategoryLink
//   • template_redirect  ─ Redirect
//
// The redirect status comes from the RedirectStatus filter, 302 unless a
// callback says otherwise.
//
// Notes
// -----
// • Stateless.  Every callback reads settings and categories per call.
// • Oxford commas, two spaces after periods.

package singlecategory

import (
	"github.com/yanizio/singlecat/internal/hooks"
	"github.com/yanizio/singlecat/internal/permalink"
	"github.com/yanizio/singlecat/internal/plugin"
	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

// Name is the registry key.
const Name = "single-category-permalink"

// compile-time assertion
var _ plugin.Plugin = (*Plugin)(nil)

// Plugin holds the host handles captured at Init.
type Plugin struct {
	store    taxonomy.Reader
	settings site.Provider
	links    *permalink.Builder
	hooks    *hooks.Hooks
}

// New returns a plugin bound to h without registering any hooks.  Init
// does both; New exists for callers that want the callbacks directly.
func New(h plugin.Host) *Plugin {
	return &Plugin{
		store:    h.Store(),
		settings: h.Settings(),
		links:    h.Links(),
		hooks:    h.Hooks(),
	}
}

func (p *Plugin) Name() string { return Name }

// Init captures the host and attaches the three callbacks.
func (p *Plugin) Init(h plugin.Host) error {
	*p = *New(h)

	p.hooks.PostLink.Add(hooks.DefaultPriority, p.PostLink)
	p.hooks.CategoryLink.Add(hooks.DefaultPriority, p.CategoryLink)
	p.hooks.TemplateRedirect.Add(hooks.DefaultPriority, p.Redirect)
	return nil
}

func init() {
	plugin.Register(&Plugin{})
}
