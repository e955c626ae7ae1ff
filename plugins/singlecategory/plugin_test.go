package singlecategory

import (
	"context"
	"testing"

	"github.com/yanizio/singlecat/internal/hooks"
	"github.com/yanizio/singlecat/internal/permalink"
	"github.com/yanizio/singlecat/internal/plugin"
	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

var pretty = site.Static{
	PermalinkStructure: "/%category%/%postname%/",
	SiteURL:            "https://blog.example",
}

type fixture struct {
	store *taxonomy.Memory
	hooks *hooks.Hooks
	links *permalink.Builder
	p     *Plugin
}

// setup returns the demo store wired to an initialised plugin.
func setup(t *testing.T, s site.Static) fixture {
	t.Helper()
	store := taxonomy.Demo()
	h := hooks.New()
	b := permalink.NewBuilder(store, s, h)

	p := &Plugin{}
	if err := p.Init(plugin.NewHost(store, s, b, h)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return fixture{store: store, hooks: h, links: b, p: p}
}

func TestInit_AttachesEveryHook(t *testing.T) {
	f := setup(t, pretty)
	if f.hooks.PostLink.Len() != 1 || f.hooks.CategoryLink.Len() != 1 {
		t.Fatalf("filters not attached: post=%d category=%d",
			f.hooks.PostLink.Len(), f.hooks.CategoryLink.Len())
	}
	if f.hooks.RedirectStatus.Len() != 0 {
		t.Fatal("plugin must not install a status filter of its own")
	}
}

func TestRegistered(t *testing.T) {
	for _, p := range plugin.All() {
		if p.Name() == Name {
			return
		}
	}
	t.Fatalf("%s missing from registry", Name)
}

func TestInit_LeavesOtherHostLinksAlone(t *testing.T) {
	f := setup(t, pretty)
	got, err := f.links.DefaultPostLink(context.Background(), taxonomy.Post{ID: 11, Slug: "go-1-22-released"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "https://blog.example/news/tech/golang/go-1-22-released/" {
		t.Fatalf("unfiltered link changed: %s", got)
	}
}
