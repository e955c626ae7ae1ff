// cmd/web/main.go
//
// Single-category blog host – HTTP entry point.
//
// Start-up sequence
// -----------------
//
//  1. Load configuration (.env → conf/global.yaml → SINGLECAT_ env).
//
//  2. Start the daily rotating logger (tees to console in a TTY).
//
//  3. Storage:
//
//     • database.dsn set   – resolve a vault: password, open MySQL, serve
//     categories from SQLStore and settings from the site_config cache.
//     • database.dsn empty – demo store and static settings from YAML.
//
//  4. Hooks, permalink builder, and plugin initialisation (plugins link
//     themselves in through blank imports below).
//
//  5. Optional redirect.status override as a RedirectStatus filter.
//
//  6. chi router, http.Server with configured timeouts, graceful shutdown
//     on SIGINT or SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yanizio/singlecat/internal/config"
	"github.com/yanizio/singlecat/internal/database"
	"github.com/yanizio/singlecat/internal/handlers"
	"github.com/yanizio/singlecat/internal/hooks"
	"github.com/yanizio/singlecat/internal/logger"
	"github.com/yanizio/singlecat/internal/permalink"
	"github.com/yanizio/singlecat/internal/plugin"
	"github.com/yanizio/singlecat/internal/router"
	"github.com/yanizio/singlecat/internal/routing"
	"github.com/yanizio/singlecat/internal/server"
	"github.com/yanizio/singlecat/internal/site"
	"github.com/yanizio/singlecat/internal/taxonomy"
	"github.com/yanizio/singlecat/internal/vault"
	"github.com/yanizio/singlecat/internal/view"

	_ "github.com/yanizio/singlecat/plugins/singlecategory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logDir := cfg.Log.Dir
	if !filepath.IsAbs(logDir) {
		logDir = filepath.Join(cfg.Paths.Root, logDir)
	}
	logOut, err := logger.New(logger.Options{Dir: logDir, Level: cfg.Log.Level, Tee: logger.IsTTY()})
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	if err := run(ctx, cfg); err != nil {
		logOut.Fatalw("server stopped", "err", err)
	}
	logOut.Info("bye")
}

func run(ctx context.Context, cfg *config.Config) error {
	defaults := site.Settings{
		PermalinkStructure: cfg.Site.PermalinkStructure,
		CategoryBase:       cfg.Site.CategoryBase,
		SiteURL:            cfg.Site.URL,
	}

	//
	// ── 1.  Storage ─────────────────────────────────────────────────────
	//
	var (
		store    taxonomy.Reader
		settings site.Provider
		ready    func(context.Context) error
	)
	if cfg.Database.DSN == "" {
		zap.L().Warn("database.dsn empty, serving demo content")
		store = taxonomy.Demo()
		settings = site.Static(defaults)
	} else {
		db, err := openDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		store = taxonomy.NewSQLStore(db)
		settings = site.NewCache(db, defaults, cfg.Site.SettingsTTL)
		ready = func(ctx context.Context) error { return db.PingContext(ctx) }
	}

	//
	// ── 2.  Hooks, links, plugins ───────────────────────────────────────
	//
	h := hooks.New()
	links := permalink.NewBuilder(store, settings, h)

	active, err := plugin.InitAll(plugin.NewHost(store, settings, links, h), cfg.Plugins.Disabled)
	if err != nil {
		return err
	}
	zap.L().Info("plugins online", zap.Strings("active", active))

	if status := cfg.Redirect.Status; status != 0 {
		h.RedirectStatus.Add(hooks.DefaultPriority, func(context.Context, int, string) (int, error) {
			return status, nil
		})
		zap.L().Info("redirect status overridden", zap.Int("status", status))
	}

	//
	// ── 3.  HTTP ────────────────────────────────────────────────────────
	//
	v, err := view.New()
	if err != nil {
		return err
	}
	handler := router.New(router.Deps{
		Resolver:   routing.NewResolver(store, settings),
		Hooks:      h,
		Public:     handlers.NewPublic(store, settings, links, v, cfg.Site.Name, cfg.Site.PerPage),
		ForceHTTPS: cfg.HTTP.ForceHTTPS,
		Ready:      ready,
	})

	t := server.Timeouts{
		Read:     cfg.HTTP.ReadTimeout,
		Write:    cfg.HTTP.WriteTimeout,
		Idle:     cfg.HTTP.IdleTimeout,
		Shutdown: cfg.HTTP.ShutdownTimeout,
	}
	return server.Run(ctx, server.New(cfg.HTTP.ListenAddr, handler, t), t)
}

// openDB resolves a vault: password, fills the DSN template, and connects.
func openDB(ctx context.Context, c config.Database) (*sqlx.DB, error) {
	password := c.Password
	if vault.IsRef(password) {
		cli, err := vault.New(ctx)
		if err != nil {
			return nil, err
		}
		if password, err = cli.Resolve(ctx, password, 0); err != nil {
			return nil, err
		}
		zap.L().Info("database password resolved from vault")
	}

	zap.L().Info("connecting to database …")
	db, err := database.OpenWithOptions(ctx, database.DSN(c.DSN, password), database.Options{
		MaxOpen: c.MaxOpen,
		MaxIdle: c.MaxIdle,
		Retries: c.ConnectRetries,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("database online")
	return db, nil
}
