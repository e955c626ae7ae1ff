// internal/site/config.go
//
// Helpers for fetching key-value settings from the `site_config` table.
// Only the permalink keys are selected; the table may hold unrelated
// options owned by other tools.
package site

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LoadConfig returns a map[key]value with the permalink options present in
// `site_config`.  Missing keys are simply absent from the map.
func LoadConfig(ctx context.Context, db *sqlx.DB) (map[string]string, error) {
	q, args, err := sqlx.In(`
	    SELECT  `+"`key`, value"+`
	    FROM    site_config
	    WHERE   `+"`key`"+` IN (?)`,
		[]string{KeyPermalinkStructure, KeyCategoryBase, KeySiteURL})
	if err != nil {
		return nil, err
	}

	rows := make([]struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}, 0, 3)

	if err := db.SelectContext(ctx, &rows, db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("site_config: %w", err)
	}

	cfg := make(map[string]string, len(rows))
	for _, r := range rows {
		cfg[r.Key] = r.Value
	}
	return cfg, nil
}
