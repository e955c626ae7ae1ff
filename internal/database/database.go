// Package database centralises sqlx connection helpers.  The driver is
// go-sql-driver/mysql, which also works with MariaDB.
//
// Public entry points:
//
//	Open(ctx, dsn)                     – conservative pool sizes, no retries.
//	OpenWithOptions(ctx, dsn, opts)    – pool sizes plus connect retries.
//	DSN(template, password)            – fills the password into a template.
//
// Both helpers Ping the database before returning so callers can fail fast
// during bootstrap.  Callers should Close() the returned *sqlx.DB when no
// longer needed.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Options tunes one pool.
type Options struct {
	MaxOpen int
	MaxIdle int
	Retries int           // extra ping attempts after the first
	Backoff time.Duration // wait between attempts; 0 means one second
}

// Open returns a *sqlx.DB with sane defaults: 15 max open, 5 idle, and a
// 30-minute connection lifetime.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(ctx, dsn, Options{MaxOpen: 15, MaxIdle: 5})
}

// OpenWithOptions opens the pool and pings it, retrying while the server
// is still coming up (typical for compose stacks).
func OpenWithOptions(ctx context.Context, dsn string, opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(opts.MaxOpen)
	db.SetMaxIdleConns(opts.MaxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := ping(ctx, db, opts); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ping tries 1+Retries times.
func ping(ctx context.Context, db *sqlx.DB, opts Options) error {
	wait := opts.Backoff
	if wait <= 0 {
		wait = time.Second
	}

	var err error
	for attempt := 0; attempt <= opts.Retries; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		zap.L().Warn("database ping failed",
			zap.Int("attempt", attempt+1),
			zap.Int("of", opts.Retries+1),
			zap.Error(err))
		if attempt == opts.Retries {
			break
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return fmt.Errorf("database unreachable: %w", err)
}

// DSN substitutes password for the single %s verb in template.  A
// template without a verb is returned unchanged.
func DSN(template, password string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return strings.Replace(template, "%s", password, 1)
}
