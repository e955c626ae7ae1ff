// internal/taxonomy/store.go
//
// MySQL-backed Reader.
//
// Workflow
// --------
//  1. Callers supply a *sqlx.DB opened by internal/database.
//  2. Each method executes exactly one parameterised SELECT.
//  3. sql.ErrNoRows is translated to ErrNotFound so callers never import
//     database/sql just to test for a missing row.
//
// Notes
// -----
//   - Column lists match the struct tags in model.go; update both together.
//   - The helpers never log.  Callers wrap or log with the project logger.
//   - Oxford commas, two spaces after periods.

package taxonomy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	categoryColumns = `id, slug, name, parent_id`
	postColumns     = `p.id, p.slug, p.title, p.author, p.published_at`
)

// SQLStore implements Reader on top of sqlx.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore wraps an open pool.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

var _ Reader = (*SQLStore)(nil)

// CategoryByID fetches one category.
func (s *SQLStore) CategoryByID(ctx context.Context, id int64) (*Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM category WHERE id = ? LIMIT 1`
	var c Category
	if err := s.db.GetContext(ctx, &c, q, id); err != nil {
		return nil, notFound(err, "category id %d", id)
	}
	return &c, nil
}

// CategoryBySlug fetches one category by its unique slug.
func (s *SQLStore) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM category WHERE slug = ? LIMIT 1`
	var c Category
	if err := s.db.GetContext(ctx, &c, q, slug); err != nil {
		return nil, notFound(err, "category slug %q", slug)
	}
	return &c, nil
}

// PostCategories returns every category assigned to postID ordered by ID.
// An unknown post simply yields an empty slice.
func (s *SQLStore) PostCategories(ctx context.Context, postID int64) ([]Category, error) {
	const q = `
        SELECT c.id, c.slug, c.name, c.parent_id
        FROM   category c
        JOIN   post_category pc ON pc.category_id = c.id
        WHERE  pc.post_id = ?
        ORDER  BY c.id`
	cats := make([]Category, 0, 4)
	if err := s.db.SelectContext(ctx, &cats, q, postID); err != nil {
		return nil, fmt.Errorf("post %d categories: %w", postID, err)
	}
	return cats, nil
}

// PostByID fetches one post.
func (s *SQLStore) PostByID(ctx context.Context, id int64) (*Post, error) {
	const q = `SELECT ` + postColumns + ` FROM post p WHERE p.id = ? LIMIT 1`
	var p Post
	if err := s.db.GetContext(ctx, &p, q, id); err != nil {
		return nil, notFound(err, "post id %d", id)
	}
	return &p, nil
}

// PostBySlug fetches one post by its unique slug.
func (s *SQLStore) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	const q = `SELECT ` + postColumns + ` FROM post p WHERE p.slug = ? LIMIT 1`
	var p Post
	if err := s.db.GetContext(ctx, &p, q, slug); err != nil {
		return nil, notFound(err, "post slug %q", slug)
	}
	return &p, nil
}

// RecentPosts returns the newest posts first.
func (s *SQLStore) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	const q = `SELECT ` + postColumns + ` FROM post p ORDER BY p.published_at DESC LIMIT ?`
	posts := make([]Post, 0, limit)
	if err := s.db.SelectContext(ctx, &posts, q, limit); err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	return posts, nil
}

// PostsInCategory returns the newest posts assigned to categoryID.
func (s *SQLStore) PostsInCategory(ctx context.Context, categoryID int64, limit int) ([]Post, error) {
	const q = `
        SELECT ` + postColumns + `
        FROM   post p
        JOIN   post_category pc ON pc.post_id = p.id
        WHERE  pc.category_id = ?
        ORDER  BY p.published_at DESC
        LIMIT  ?`
	posts := make([]Post, 0, limit)
	if err := s.db.SelectContext(ctx, &posts, q, categoryID, limit); err != nil {
		return nil, fmt.Errorf("category %d posts: %w", categoryID, err)
	}
	return posts, nil
}

// notFound maps sql.ErrNoRows to ErrNotFound and wraps everything else.
func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}
