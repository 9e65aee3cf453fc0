// Package sqldoc stores todo items as JSON documents in a single SQL table,
// keyed by the hex identifier with a created_at column for ordering. SQLite
// (github.com/glebarez/go-sqlite) and Postgres (github.com/jackc/pgx/v5)
// are supported.
package sqldoc

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"regexp"
	"sync/atomic"
	"time"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.Store = (*Store)(nil)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config selects the engine and table.
type Config struct {
	Dialect string
	DSN     string
	Table   string
}

// Recovery probing while the connection is marked lost.
const (
	probeInterval = time.Second
	probeTimeout  = 2 * time.Second
)

// Store implements ports.Store over database/sql.
type Store struct {
	db      *sql.DB
	dialect dialect
	stmts   statements
	ready   atomic.Bool
	logger  *slog.Logger

	// lastProbe holds the UnixNano time of the latest recovery ping.
	lastProbe atomic.Int64
}

// document is the JSON shape kept in the data column. It matches the
// MongoDB document layout.
type document struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Open connects, pings and creates the table if missing. The returned Store
// reports ready.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	d, err := lookupDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	if !tableNamePattern.MatchString(cfg.Table) {
		return nil, fmt.Errorf("invalid table name %q", cfg.Table)
	}

	db, err := sql.Open(d.driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", d.name, err)
	}
	if d.name == DialectSQLite {
		// Each SQLite connection to ":memory:" is a separate database, and
		// SQLite serialises writers anyway.
		db.SetMaxOpenConns(1)
	}

	s, err := New(ctx, db, d.name, cfg.Table, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database handle. It pings and creates the table.
func New(ctx context.Context, db *sql.DB, dialectName, table string, logger *slog.Logger) (*Store, error) {
	d, err := lookupDialect(dialectName)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{
		db:      db,
		dialect: d,
		stmts:   d.statements(table),
		logger:  logger,
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging %s database: %w", d.name, err)
	}
	if _, err := db.ExecContext(ctx, s.stmts.create); err != nil {
		return nil, fmt.Errorf("creating table %s: %w", table, err)
	}
	if _, err := db.ExecContext(ctx, s.stmts.index); err != nil {
		return nil, fmt.Errorf("creating index on %s: %w", table, err)
	}

	s.ready.Store(true)
	return s, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return s.dialect.name
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	err := s.db.PingContext(ctx)
	s.observe(err)
	return err
}

// Ready implements ports.StoreStatus. While the connection is marked lost,
// at most one caller per probeInterval pings the database so the store can
// come back without a successful query.
func (s *Store) Ready() bool {
	if s.ready.Load() {
		return true
	}

	now := time.Now().UnixNano()
	last := s.lastProbe.Load()
	if now-last < int64(probeInterval) || !s.lastProbe.CompareAndSwap(last, now) {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	s.observe(s.db.PingContext(ctx))
	return s.ready.Load()
}

// Close closes the database handle and marks the store not ready.
func (s *Store) Close(_ context.Context) error {
	s.ready.Store(false)
	s.lastProbe.Store(math.MaxInt64) // no recovery probes after Close
	return s.db.Close()
}

// List implements ports.TodoRepository.
func (s *Store) List(ctx context.Context) ([]todo.Item, error) {
	rows, err := s.db.QueryContext(ctx, s.stmts.list)
	if err != nil {
		return nil, s.fail("list", err)
	}
	defer rows.Close()

	items := make([]todo.Item, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, s.fail("list", err)
		}
		item, err := decode(raw)
		if err != nil {
			return nil, s.fail("list", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("list", err)
	}

	s.observe(nil)
	return items, nil
}

// Insert implements ports.TodoRepository.
func (s *Store) Insert(ctx context.Context, item todo.Item) (*todo.Item, error) {
	if item.ID.IsZero() {
		item.ID = todo.NewID()
	}

	raw, err := json.Marshal(toDocument(item))
	if err != nil {
		return nil, domain.NewStoreError("insert", err)
	}

	if _, err := s.db.ExecContext(ctx, s.stmts.insert,
		item.ID.String(), item.CreatedAt.UnixMilli(), string(raw)); err != nil {
		return nil, s.fail("insert", err)
	}

	s.observe(nil)
	return &item, nil
}

// Replace implements ports.TodoRepository. The update and the read-back are
// one statement.
func (s *Store) Replace(ctx context.Context, id todo.ID, draft todo.Draft, updatedAt time.Time) (*todo.Item, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, s.stmts.replace,
		draft.Title, draft.Description, updatedAt.UTC().Format(time.RFC3339Nano), id.String(),
	).Scan(&raw)
	return s.finishOne("replace", raw, err)
}

// Delete implements ports.TodoRepository.
func (s *Store) Delete(ctx context.Context, id todo.ID) (*todo.Item, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, s.stmts.delete, id.String()).Scan(&raw)
	return s.finishOne("delete", raw, err)
}

func (s *Store) finishOne(op string, raw []byte, err error) (*todo.Item, error) {
	if errors.Is(err, sql.ErrNoRows) {
		s.observe(nil)
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, s.fail(op, err)
	}

	item, err := decode(raw)
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}

	s.observe(nil)
	return &item, nil
}

// fail records the outcome and wraps err as a store error. Connection-level
// failures additionally match domain.ErrUnavailable.
func (s *Store) fail(op string, err error) error {
	s.observe(err)
	if isConnectionError(err) {
		err = fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return domain.NewStoreError(op, err)
}

// observe flips readiness on connection-level failures and back on success.
// Cancelled and timed-out calls leave it alone.
func (s *Store) observe(err error) {
	switch {
	case err == nil:
		if !s.ready.Swap(true) {
			s.logger.Info("store connection restored", slog.String("store", s.dialect.name))
		}
	case isConnectionError(err):
		if s.ready.Swap(false) {
			s.logger.Warn("store connection lost",
				slog.String("store", s.dialect.name),
				slog.Any("error", err),
			)
		}
	}
}

func isConnectionError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func toDocument(item todo.Item) document {
	return document{
		ID:          item.ID.String(),
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func decode(raw []byte) (todo.Item, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return todo.Item{}, fmt.Errorf("decoding document: %w", err)
	}

	id, err := todo.ParseID(doc.ID)
	if err != nil {
		return todo.Item{}, fmt.Errorf("decoding document id %q: %w", doc.ID, err)
	}

	return todo.Item{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt.UTC(),
		UpdatedAt:   doc.UpdatedAt.UTC(),
	}, nil
}
