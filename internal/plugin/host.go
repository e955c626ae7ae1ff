// internal/plugin/host.go
//
// Exposes host resources to plugins during Init() without handing out the
// concrete wiring from cmd/web.

package plugin

import (
	"github.com/yanizio/singlecat/internal/hooks"
	"github.com/yanizio/singlecat/internal/permalink"
	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

// Host provides read-only access to what a plugin may need.
type Host interface {
	Store() taxonomy.Reader
	Settings() site.Provider
	Links() *permalink.Builder
	Hooks() *hooks.Hooks
}

type host struct {
	store    taxonomy.Reader
	settings site.Provider
	links    *permalink.Builder
	hooks    *hooks.Hooks
}

// NewHost bundles the host resources.
func NewHost(store taxonomy.Reader, settings site.Provider, links *permalink.Builder, h *hooks.Hooks) Host {
	return &host{store: store, settings: settings, links: links, hooks: h}
}

func (h *host) Store() taxonomy.Reader    { return h.store }
func (h *host) Settings() site.Provider   { return h.settings }
func (h *host) Links() *permalink.Builder { return h.links }
func (h *host) Hooks() *hooks.Hooks       { return h.hooks }
