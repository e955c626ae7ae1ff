// internal/taxonomy/store_test.go
//
// Unit-tests for SQLStore using sqlmock.
//
// Run: go test ./internal/taxonomy -v

package taxonomy

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLStore(sqlx.NewDb(db, "mysql")), mock
}

func TestSQLStore_CategoryByID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, slug, name, parent_id FROM category WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name", "parent_id"}).
			AddRow(3, "tech", "Tech", 2))

	c, err := s.CategoryByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("CategoryByID error: %v", err)
	}
	if c.Slug != "tech" || c.ParentID != 2 {
		t.Fatalf("unexpected category: %#v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestSQLStore_CategoryByID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`FROM category WHERE id = \?`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.CategoryByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLStore_CategoryBySlug_DriverError(t *testing.T) {
	s, mock := newMockStore(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`FROM category WHERE slug = \?`).
		WithArgs("tech").
		WillReturnError(boom)

	_, err := s.CategoryBySlug(context.Background(), "tech")
	if !errors.Is(err, boom) || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want wrapped driver error", err)
	}
}

func TestSQLStore_PostCategories(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`FROM category c JOIN post_category pc ON pc.category_id = c.id WHERE pc.post_id = \?`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name", "parent_id"}).
			AddRow(3, "tech", "Tech", 2).
			AddRow(5, "travel", "Travel", 0))

	cats, err := s.PostCategories(context.Background(), 12)
	if err != nil {
		t.Fatalf("PostCategories error: %v", err)
	}
	if len(cats) != 2 || cats[0].ID != 3 || cats[1].Slug != "travel" {
		t.Fatalf("unexpected result: %#v", cats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestSQLStore_PostBySlug(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM post p WHERE p.slug = \?`).
		WithArgs("go-1-22-released").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title", "author", "published_at"}).
			AddRow(11, "go-1-22-released", "Go 1.22 released", "admin", at))

	p, err := s.PostBySlug(context.Background(), "go-1-22-released")
	if err != nil {
		t.Fatalf("PostBySlug error: %v", err)
	}
	if p.ID != 11 || !p.PublishedAt.Equal(at) {
		t.Fatalf("unexpected post: %#v", p)
	}
}

func TestSQLStore_PostsInCategory(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`JOIN post_category pc ON pc.post_id = p.id WHERE pc.category_id = \?`).
		WithArgs(int64(5), int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title", "author", "published_at"}).
			AddRow(12, "lisbon-in-spring", "Lisbon in spring", "editor", at))

	posts, err := s.PostsInCategory(context.Background(), 5, 20)
	if err != nil {
		t.Fatalf("PostsInCategory error: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "lisbon-in-spring" {
		t.Fatalf("unexpected posts: %#v", posts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
