package singlecategory

import (
	"context"
	"testing"
	"time"

	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

func postLink(t *testing.T, f fixture, id int64) string {
	t.Helper()
	ctx := context.Background()
	p, err := f.store.PostByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	link, err := f.links.PostLink(ctx, *p)
	if err != nil {
		t.Fatalf("PostLink(%d): %v", id, err)
	}
	return link
}

func TestPostLink_NoCategoryTag(t *testing.T) {
	f := setup(t, site.Static{PermalinkStructure: "/%year%/%postname%/", SiteURL: "https://blog.example"})
	const in = "https://blog.example/news/tech/golang/whatever/"
	got, err := f.p.PostLink(context.Background(), in, taxonomy.Post{ID: 11})
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("got %s, want input unchanged", got)
	}
}

func TestPostLink_RootCategory(t *testing.T) {
	f := setup(t, pretty)
	if got := postLink(t, f, 10); got != "https://blog.example/uncategorized/hello-world/" {
		t.Fatalf("got %s", got)
	}
}

func TestPostLink_CollapsesChain(t *testing.T) {
	f := setup(t, pretty)
	p, _ := f.store.PostByID(context.Background(), 11)
	long, err := f.links.DefaultPostLink(context.Background(), *p)
	if err != nil {
		t.Fatal(err)
	}

	got := postLink(t, f, 11)
	if got != "https://blog.example/golang/go-1-22-released/" {
		t.Fatalf("got %s", got)
	}
	if len(got) > len(long) {
		t.Fatalf("collapsed link %q longer than %q", got, long)
	}
}

func TestPostLink_LowestIDWins(t *testing.T) {
	f := setup(t, pretty)
	// Post 12 sits in travel (5) and tech (3); tech has the lower ID.
	if got := postLink(t, f, 12); got != "https://blog.example/tech/lisbon-in-spring/" {
		t.Fatalf("got %s", got)
	}
}

func TestPostLink_NoCategories(t *testing.T) {
	f := setup(t, pretty)
	f.store.AddPost(taxonomy.Post{ID: 30, Slug: "orphan", PublishedAt: time.Now()})

	const in = "https://blog.example/uncategorized/orphan/"
	got, err := f.p.PostLink(context.Background(), in, taxonomy.Post{ID: 30})
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("got %s, want input unchanged", got)
	}
}

func TestPostLink_PathMissingIsKept(t *testing.T) {
	f := setup(t, pretty)
	const in = "https://blog.example/elsewhere/go-1-22-released/"
	got, err := f.p.PostLink(context.Background(), in, taxonomy.Post{ID: 11})
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("got %s, want input unchanged", got)
	}
}

func TestCollapseCategoryPath(t *testing.T) {
	cases := []struct {
		name             string
		link, home       string
		full, leaf, want string
		ok               bool
	}{
		{"chain", "https://b.example/a/b/c/post/", "https://b.example", "a/b/c", "c", "https://b.example/c/post/", true},
		{"already leaf", "https://b.example/c/post/", "https://b.example", "c", "c", "https://b.example/c/post/", true},
		{"segment boundary", "https://b.example/news/technology/post/", "https://b.example", "news/tech", "tech", "https://b.example/news/technology/post/", false},
		{"boundary then match", "https://b.example/news/technology/news/tech/x", "https://b.example", "news/tech", "tech", "https://b.example/news/technology/tech/x", true},
		{"query boundary", "https://b.example/news/tech?x=1", "https://b.example", "news/tech", "tech", "https://b.example/tech?x=1", true},
		{"home skipped", "https://b.example/news/tech/news/tech/p/", "https://b.example/news/tech", "news/tech", "tech", "https://b.example/news/tech/tech/p/", true},
		{"first only", "/a/b/x/a/b/", "", "a/b", "b", "/b/x/a/b/", true},
		{"absent", "https://b.example/p/", "https://b.example", "a/b", "b", "https://b.example/p/", false},
	}
	for _, c := range cases {
		got, ok := CollapseCategoryPath(c.link, c.home, c.full, c.leaf)
		if got != c.want || ok != c.ok {
			t.Errorf("%s: got (%q, %v), want (%q, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}
