package head

import (
	"strings"
	"testing"
)

func TestBuilder(t *testing.T) {
	b := New()
	b.SetTitle("Go & friends")
	b.Canonical("https://blog.example/golang/post/")
	b.Meta("robots", "index")
	b.Meta("robots", "noindex") // deduplicated by name
	b.Link(`<link rel="alternate" href="/feed">`)

	if got := string(b.Title()); got != "<title>Go &amp; friends</title>" {
		t.Fatalf("title = %s", got)
	}
	if got := string(b.Metas()); strings.Count(got, "<meta") != 1 || !strings.Contains(got, `content="index"`) {
		t.Fatalf("metas = %s", got)
	}
	links := string(b.Links())
	if !strings.HasPrefix(links, `<link rel="canonical" href="https://blog.example/golang/post/">`) {
		t.Fatalf("links = %s", links)
	}
	if !strings.Contains(links, `rel="alternate"`) {
		t.Fatalf("links = %s", links)
	}
}

func TestBuilder_Empty(t *testing.T) {
	b := New()
	if b.Title() != "" || b.Links() != "" || b.Metas() != "" {
		t.Fatal("empty builder rendered tags")
	}
}
