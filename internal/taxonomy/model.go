// internal/taxonomy/model.go
//
// Category and post models plus the read-only Reader contract.
//
// Context
// -------
// Categories form a tree through ParentID.  A post may carry any number of
// categories; permalink code only ever looks at the one with the lowest ID.
// Nothing in this package mutates rows.  Writers live outside the service
// (the editorial tool owns the tables).
//
// Schema reference
//
//	CREATE TABLE category (
//	    id        BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    slug      VARCHAR(200) NOT NULL UNIQUE,
//	    name      VARCHAR(200) NOT NULL,
//	    parent_id BIGINT UNSIGNED NOT NULL DEFAULT 0
//	);
//	CREATE TABLE post (
//	    id           BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    slug         VARCHAR(200) NOT NULL UNIQUE,
//	    title        VARCHAR(255) NOT NULL,
//	    author       VARCHAR(60)  NOT NULL,
//	    published_at DATETIME     NOT NULL
//	);
//	CREATE TABLE post_category (
//	    post_id     BIGINT UNSIGNED NOT NULL,
//	    category_id BIGINT UNSIGNED NOT NULL,
//	    PRIMARY KEY (post_id, category_id)
//	);
//
// Notes
// -----
// • ParentID 0 means root; the column is NOT NULL to keep scans simple.
// • Oxford commas, two spaces after periods.

package taxonomy

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a category or post row does not exist.
	ErrNotFound = errors.New("taxonomy: not found")

	// ErrNoCategories is returned by Lowest for an empty category set.
	ErrNoCategories = errors.New("taxonomy: post has no categories")

	// ErrCycle is returned when a parent chain loops back on itself.
	ErrCycle = errors.New("taxonomy: category parent cycle")
)

// Category mirrors one row in the `category` table.
type Category struct {
	ID       int64  `db:"id"`
	Slug     string `db:"slug"`
	Name     string `db:"name"`
	ParentID int64  `db:"parent_id"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool { return c.ParentID == 0 }

// Post mirrors one row in the `post` table.
type Post struct {
	ID          int64     `db:"id"`
	Slug        string    `db:"slug"`
	Title       string    `db:"title"`
	Author      string    `db:"author"`
	PublishedAt time.Time `db:"published_at"`
}

// Reader is the read side used by the permalink builder, the router, the
// public handlers, and plugins.  SQLStore and Memory satisfy it.
type Reader interface {
	CategoryByID(ctx context.Context, id int64) (*Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)
	PostCategories(ctx context.Context, postID int64) ([]Category, error)
	PostByID(ctx context.Context, id int64) (*Post, error)
	PostBySlug(ctx context.Context, slug string) (*Post, error)
	RecentPosts(ctx context.Context, limit int) ([]Post, error)
	PostsInCategory(ctx context.Context, categoryID int64, limit int) ([]Post, error)
}
