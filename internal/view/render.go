// internal/view/render.go
//
// Central view engine: embedded templates, func-map injection, and one
// parsed set per page.
//
// Public helpers
// --------------
//   - New            – parse every page once at startup.
//   - Render         – buffer, then write rendered HTML with a status.
//   - RenderToString – return template.HTML (tests, error pages).
//
// Layout
// ------
// `templates/layout.html` defines "layout", which calls
// {{ template "content" . }}.  Every other file is a page that defines
// "content" and is parsed into its own clone of the layout, so pages never
// see each other's blocks.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/yanizio/singlecat/internal/viewhelpers"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

// Renderer holds one template set per page.  Safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	return parse(files)
}

func parse(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("layout").Funcs(buildFuncMap()).ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("view: layout: %w", err)
	}

	names, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, file := range names {
		if file == layoutFile {
			continue
		}
		t, err := template.Must(base.Clone()).ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("view: %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return r, nil
}

// Render executes page into a buffer and writes it with status.  Nothing
// is written when execution fails, so the caller can still send a 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	html, err := r.RenderToString(page, data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write([]byte(html))
	return err
}

// RenderToString executes page and returns the HTML.
func (r *Renderer) RenderToString(page string, data any) (template.HTML, error) {
	t, ok := r.pages[page]
	if !ok {
		return "", fmt.Errorf("view: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

//
// func-map builders
//

func buildFuncMap() template.FuncMap {
	fm := template.FuncMap{"dict": dict}
	for k, v := range viewhelpers.FuncMap() {
		fm[k] = v
	}
	return fm
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}
