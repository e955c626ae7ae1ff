// internal/taxonomy/path.go
//
// Hierarchy helpers.
//
//   • SortByID   ─ orders a category slice by ascending ID.
//   • Lowest     ─ picks the lowest-ID category of a post.
//   • ParentPath ─ "root/.../parent/" slug chain for a parent ID.
//   • FullPath   ─ ParentPath + the category's own slug.
//
// The lowest-ID rule is arbitrary but deterministic; it must stay in sync
// between link generation and link rewriting or the two disagree on which
// category a post lives under.

package taxonomy

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// maxDepth bounds ParentPath walks on corrupt data.
const maxDepth = 64

// SortByID sorts cats in place by ascending ID.
func SortByID(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
}

// Lowest returns the category with the lowest ID without reordering cats.
func Lowest(cats []Category) (Category, error) {
	if len(cats) == 0 {
		return Category{}, ErrNoCategories
	}
	low := cats[0]
	for _, c := range cats[1:] {
		if c.ID < low.ID {
			low = c
		}
	}
	return low, nil
}

// ParentPath returns the slugs from the root down to parentID joined by
// "/", with a trailing "/".  parentID 0 yields "".
func ParentPath(ctx context.Context, r Reader, parentID int64) (string, error) {
	if parentID == 0 {
		return "", nil
	}

	var chain []string
	seen := make(map[int64]struct{}, 4)
	for id := parentID; id != 0; {
		if _, dup := seen[id]; dup || len(seen) >= maxDepth {
			return "", fmt.Errorf("%w at category %d", ErrCycle, id)
		}
		seen[id] = struct{}{}

		c, err := r.CategoryByID(ctx, id)
		if err != nil {
			return "", err
		}
		chain = append(chain, c.Slug)
		id = c.ParentID
	}

	var b strings.Builder
	for i := len(chain) - 1; i >= 0; i-- {
		b.WriteString(chain[i])
		b.WriteByte('/')
	}
	return b.String(), nil
}

// FullPath returns the hierarchical path of c, e.g. "news/tech/go".
func FullPath(ctx context.Context, r Reader, c Category) (string, error) {
	parents, err := ParentPath(ctx, r, c.ParentID)
	if err != nil {
		return "", err
	}
	return parents + c.Slug, nil
}
