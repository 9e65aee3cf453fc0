// Package store opens the configured document store. The scheme of
// store.uri picks the backend:
//
//	mongodb://, mongodb+srv://   MongoDB
//	sqlite:, file:               SQLite JSON documents
//	postgres://, postgresql://   Postgres JSONB documents
package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/adapters/store/mongostore"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/sqldoc"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Open connects to the backend named by cfg.URI and verifies the connection.
// A store that cannot be reached is an error.
func Open(ctx context.Context, cfg *config.StoreConfig, logger *slog.Logger) (ports.Store, error) {
	u, err := url.Parse(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parsing store uri: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return opened(mongostore.Open(connectCtx, mongostore.Config{
			URI:            cfg.URI,
			Database:       cfg.Database,
			Collection:     cfg.Collection,
			ConnectTimeout: cfg.ConnectTimeout,
		}, logger))

	case "sqlite":
		return opened(sqldoc.Open(connectCtx, sqldoc.Config{
			Dialect: sqldoc.DialectSQLite,
			DSN:     sqliteDSN(u),
			Table:   cfg.Collection,
		}, logger))

	case "file":
		return opened(sqldoc.Open(connectCtx, sqldoc.Config{
			Dialect: sqldoc.DialectSQLite,
			DSN:     cfg.URI,
			Table:   cfg.Collection,
		}, logger))

	case "postgres", "postgresql":
		return opened(sqldoc.Open(connectCtx, sqldoc.Config{
			Dialect: sqldoc.DialectPostgres,
			DSN:     cfg.URI,
			Table:   cfg.Collection,
		}, logger))

	default:
		return nil, fmt.Errorf("unsupported store uri scheme %q", u.Scheme)
	}
}

// opened converts a concrete store result, keeping a nil interface on error.
func opened[S ports.Store](s S, err error) (ports.Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// sqliteDSN extracts the database path from a sqlite URI:
//
//	sqlite::memory:            -> :memory:
//	sqlite:todo.db             -> todo.db
//	sqlite:///var/lib/todo.db  -> /var/lib/todo.db
//	sqlite://todo.db?_pragma=… -> todo.db?_pragma=…
func sqliteDSN(u *url.URL) string {
	dsn := u.Opaque
	if dsn == "" {
		dsn = u.Host + u.Path
	}
	if u.RawQuery != "" {
		dsn += "?" + u.RawQuery
	}
	return dsn
}
