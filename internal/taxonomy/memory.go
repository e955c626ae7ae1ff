// internal/taxonomy/memory.go
//
// In-memory Reader.  Backs the development server when no DSN is
// configured and the unit tests of every package that needs categories.
// Safe for concurrent reads after construction; Add* calls must finish
// before the store is shared.

package taxonomy

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Memory is a map-backed Reader.
type Memory struct {
	cats  map[int64]Category
	posts map[int64]Post
	links map[int64][]int64 // post ID → category IDs
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		cats:  make(map[int64]Category),
		posts: make(map[int64]Post),
		links: make(map[int64][]int64),
	}
}

var _ Reader = (*Memory)(nil)

// AddCategory inserts or replaces a category and returns the store.
func (m *Memory) AddCategory(c Category) *Memory {
	m.cats[c.ID] = c
	return m
}

// AddPost inserts or replaces a post with its category IDs.
func (m *Memory) AddPost(p Post, categoryIDs ...int64) *Memory {
	m.posts[p.ID] = p
	m.links[p.ID] = append([]int64(nil), categoryIDs...)
	return m
}

func (m *Memory) CategoryByID(_ context.Context, id int64) (*Category, error) {
	c, ok := m.cats[id]
	if !ok {
		return nil, fmt.Errorf("category id %d: %w", id, ErrNotFound)
	}
	return &c, nil
}

func (m *Memory) CategoryBySlug(_ context.Context, slug string) (*Category, error) {
	for _, c := range m.cats {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, fmt.Errorf("category slug %q: %w", slug, ErrNotFound)
}

func (m *Memory) PostCategories(_ context.Context, postID int64) ([]Category, error) {
	out := make([]Category, 0, len(m.links[postID]))
	for _, id := range m.links[postID] {
		if c, ok := m.cats[id]; ok {
			out = append(out, c)
		}
	}
	SortByID(out)
	return out, nil
}

func (m *Memory) PostByID(_ context.Context, id int64) (*Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, fmt.Errorf("post id %d: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (m *Memory) PostBySlug(_ context.Context, slug string) (*Post, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("post slug %q: %w", slug, ErrNotFound)
}

func (m *Memory) RecentPosts(_ context.Context, limit int) ([]Post, error) {
	out := make([]Post, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, p)
	}
	return newestFirst(out, limit), nil
}

func (m *Memory) PostsInCategory(_ context.Context, categoryID int64, limit int) ([]Post, error) {
	var out []Post
	for pid, ids := range m.links {
		for _, id := range ids {
			if id == categoryID {
				out = append(out, m.posts[pid])
				break
			}
		}
	}
	return newestFirst(out, limit), nil
}

func newestFirst(posts []Post, limit int) []Post {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

// Demo returns a small seeded store used by the development server: a
// three-level category chain plus a root category and a handful of posts.
func Demo() *Memory {
	day := time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)
	return NewMemory().
		AddCategory(Category{ID: 1, Slug: "uncategorized", Name: "Uncategorized"}).
		AddCategory(Category{ID: 2, Slug: "news", Name: "News"}).
		AddCategory(Category{ID: 3, Slug: "tech", Name: "Tech", ParentID: 2}).
		AddCategory(Category{ID: 4, Slug: "golang", Name: "Go", ParentID: 3}).
		AddCategory(Category{ID: 5, Slug: "travel", Name: "Travel"}).
		AddPost(Post{ID: 10, Slug: "hello-world", Title: "Hello world", Author: "admin", PublishedAt: day}, 1).
		AddPost(Post{ID: 11, Slug: "go-1-22-released", Title: "Go 1.22 released", Author: "admin", PublishedAt: day.AddDate(0, 0, 1)}, 4).
		AddPost(Post{ID: 12, Slug: "lisbon-in-spring", Title: "Lisbon in spring", Author: "editor", PublishedAt: day.AddDate(0, 0, 2)}, 5, 3)
}
