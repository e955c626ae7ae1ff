package permalink

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yanizio/singlecat/internal/hooks"
	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

var pretty = site.Static{
	PermalinkStructure: "/%category%/%postname%/",
	SiteURL:            "https://blog.example/",
}

func post(t *testing.T, store taxonomy.Reader, id int64) taxonomy.Post {
	t.Helper()
	p, err := store.PostByID(context.Background(), id)
	if err != nil {
		t.Fatalf("PostByID(%d): %v", id, err)
	}
	return *p
}

func TestDefaultPostLink_FullHierarchy(t *testing.T) {
	store := taxonomy.Demo()
	b := NewBuilder(store, pretty, nil)

	got, err := b.DefaultPostLink(context.Background(), post(t, store, 11))
	if err != nil {
		t.Fatalf("DefaultPostLink: %v", err)
	}
	if want := "https://blog.example/news/tech/golang/go-1-22-released/"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefaultPostLink_LowestIDCategory(t *testing.T) {
	store := taxonomy.Demo() // post 12 carries travel (5) and tech (3)
	b := NewBuilder(store, pretty, nil)

	got, _ := b.DefaultPostLink(context.Background(), post(t, store, 12))
	if want := "https://blog.example/news/tech/lisbon-in-spring/"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefaultPostLink_NoCategories(t *testing.T) {
	store := taxonomy.NewMemory().AddPost(taxonomy.Post{ID: 1, Slug: "orphan"})
	b := NewBuilder(store, pretty, nil)

	got, err := b.DefaultPostLink(context.Background(), post(t, store, 1))
	if err != nil {
		t.Fatalf("DefaultPostLink: %v", err)
	}
	if want := "https://blog.example/uncategorized/orphan/"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefaultPostLink_Plain(t *testing.T) {
	store := taxonomy.Demo()
	b := NewBuilder(store, site.Static{SiteURL: "https://blog.example"}, nil)

	got, _ := b.DefaultPostLink(context.Background(), post(t, store, 10))
	if want := "https://blog.example/?p=10"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefaultCategoryLink(t *testing.T) {
	b := NewBuilder(taxonomy.Demo(), pretty, nil)

	got, err := b.DefaultCategoryLink(context.Background(), 4)
	if err != nil {
		t.Fatalf("DefaultCategoryLink: %v", err)
	}
	if want := "https://blog.example/category/news/tech/golang/"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if _, err := b.DefaultCategoryLink(context.Background(), 404); !errors.Is(err, taxonomy.ErrNotFound) {
		t.Fatalf("missing category err = %v, want ErrNotFound", err)
	}
}

func TestFiltersApplied(t *testing.T) {
	h := hooks.New()
	h.PostLink.Add(hooks.DefaultPriority, func(_ context.Context, link string, p taxonomy.Post) (string, error) {
		return link + "#" + p.Slug, nil
	})
	h.CategoryLink.Add(hooks.DefaultPriority, func(_ context.Context, link string, id int64) (string, error) {
		return "filtered", nil
	})

	store := taxonomy.Demo()
	b := NewBuilder(store, pretty, h)

	got, _ := b.PostLink(context.Background(), post(t, store, 10))
	if want := "https://blog.example/uncategorized/hello-world/#hello-world"; got != want {
		t.Fatalf("PostLink = %q, want %q", got, want)
	}
	if got, _ := b.CategoryLink(context.Background(), 2); got != "filtered" {
		t.Fatalf("CategoryLink = %q, want filtered", got)
	}
}

func TestExpand(t *testing.T) {
	p := taxonomy.Post{
		ID:          42,
		Slug:        "hello",
		Author:      "ana",
		PublishedAt: time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC),
	}
	got := Expand("/%year%/%monthnum%/%day%/%hour%%minute%%second%/%author%/%category%/%post_id%-%postname%", p, "a/b")
	if want := "/2024/03/05/070809/ana/a/b/42-hello"; got != want {
		t.Fatalf("Expand = %q, want %q", got, want)
	}
}
