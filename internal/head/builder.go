// internal/head/builder.go
//
// The Builder collects everything that should appear inside a page’s
// <head> element.  It is scoped to a single request.  Handlers push tags
// into the builder, then the base layout emits each slice.
//
// Features
// --------
//   - SetTitle   – single <title> tag (last call wins).
//   - Canonical  – single <link rel="canonical"> (last call wins).  Pages
//     reached through a legacy hierarchical URL still advertise the
//     single-category form here.
//   - Meta, Link – arbitrary pre-escaped tags with deduplication.
//   - Render helpers return template.HTML.
package head

import (
	"html/template"
	"strings"
	"sync"
)

// Builder is meant for one goroutine per request; the mutex only guards
// against accidental sharing.
type Builder struct {
	mu sync.Mutex

	title     string
	canonical string

	metas []string
	links []string

	// seen tracks keys for deduplication.
	seen map[string]struct{}
}

func New() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// ------------------------------------------------------------------
// Single-value helpers
// ------------------------------------------------------------------

// SetTitle overrides the page <title>.  The last caller wins.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// Canonical sets the canonical URL.  The last caller wins.
func (b *Builder) Canonical(url string) {
	b.mu.Lock()
	b.canonical = url
	b.mu.Unlock()
}

// Title returns a fully formed <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	if b.title == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(b.title) + "</title>")
}

// CanonicalURL returns the raw canonical URL ("" when unset).
func (b *Builder) CanonicalURL() string { return b.canonical }

// ------------------------------------------------------------------
// Slice helpers with deduplication
// ------------------------------------------------------------------

// Meta adds <meta name="…" content="…">, escaping both values.
func (b *Builder) Meta(name, content string) {
	tag := `<meta name="` + template.HTMLEscapeString(name) +
		`" content="` + template.HTMLEscapeString(content) + `">`
	b.add("meta:"+name, &b.metas, tag)
}

// Link adds a pre-escaped <link> tag.
func (b *Builder) Link(tag string) { b.add("link:"+tag, &b.links, tag) }

func (b *Builder) add(key string, tgt *[]string, tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	*tgt = append(*tgt, tag)
}

// ------------------------------------------------------------------
// Rendering helpers called from the layout
// ------------------------------------------------------------------

func (b *Builder) Metas() template.HTML { return concat(b.metas) }

// Links returns the canonical tag (if any) followed by every Link.
func (b *Builder) Links() template.HTML {
	out := b.links
	if b.canonical != "" {
		tag := `<link rel="canonical" href="` + template.HTMLEscapeString(b.canonical) + `">`
		out = append([]string{tag}, out...)
	}
	return concat(out)
}

// concat joins pre-escaped tags without a separator.
func concat(sl []string) template.HTML {
	return template.HTML(strings.Join(sl, ""))
}
