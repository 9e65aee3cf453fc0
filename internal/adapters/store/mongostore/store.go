// Package mongostore implements the todo repository on MongoDB using the
// official driver. Documents keep the {_id, title, description, createdAt,
// updatedAt} layout, and readiness follows the driver's view of the
// deployment topology.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/description"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.Store = (*Store)(nil)

// Config holds connection settings.
type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Store implements ports.Store on a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	ready  atomic.Bool
	logger *slog.Logger
}

type document struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// Open connects to MongoDB and pings the primary within cfg.ConnectTimeout.
// A failed ping disconnects and returns the error.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{logger: logger}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetServerMonitor(&event.ServerMonitor{
			TopologyDescriptionChanged: s.topologyChanged,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	s.client = client
	s.coll = client.Database(cfg.Database).Collection(cfg.Collection)
	s.setReady(true, "connected")

	logger.Info("connected to mongodb",
		slog.String("database", cfg.Database),
		slog.String("collection", cfg.Collection),
	)
	return s, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "mongodb"
}

// HealthCheck pings the primary.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Ready implements ports.StoreStatus.
func (s *Store) Ready() bool {
	return s.ready.Load()
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	s.ready.Store(false)
	return s.client.Disconnect(ctx)
}

// List implements ports.TodoRepository.
func (s *Store) List(ctx context.Context) ([]todo.Item, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, s.fail("list", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, s.fail("list", err)
	}

	items := make([]todo.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.item())
	}
	return items, nil
}

// Insert implements ports.TodoRepository.
func (s *Store) Insert(ctx context.Context, item todo.Item) (*todo.Item, error) {
	if item.ID.IsZero() {
		item.ID = todo.NewID()
	}

	if _, err := s.coll.InsertOne(ctx, fromItem(item)); err != nil {
		return nil, s.fail("insert", err)
	}
	return &item, nil
}

// Replace implements ports.TodoRepository with a single findAndModify that
// returns the document after the update.
func (s *Store) Replace(ctx context.Context, id todo.ID, draft todo.Draft, updatedAt time.Time) (*todo.Item, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: draft.Title},
		{Key: "description", Value: draft.Description},
		{Key: "updatedAt", Value: updatedAt.UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	res := s.coll.FindOneAndUpdate(ctx, byID(id), update, opts)
	return s.decodeOne("replace", res)
}

// Delete implements ports.TodoRepository.
func (s *Store) Delete(ctx context.Context, id todo.ID) (*todo.Item, error) {
	res := s.coll.FindOneAndDelete(ctx, byID(id))
	return s.decodeOne("delete", res)
}

func (s *Store) decodeOne(op string, res *mongo.SingleResult) (*todo.Item, error) {
	var d document
	if err := res.Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, s.fail(op, err)
	}

	item := d.item()
	return &item, nil
}

// fail wraps err as a store error. Network failures and a disconnected
// client also match domain.ErrUnavailable. Readiness is left to the
// topology monitor.
func (s *Store) fail(op string, err error) error {
	if isUnavailable(err) {
		err = fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return domain.NewStoreError(op, err)
}

// topologyChanged runs with the driver's topology locked; it must not issue
// operations on the client.
func (s *Store) topologyChanged(e *event.TopologyDescriptionChangedEvent) {
	s.setReady(writable(e.NewDescription), e.NewDescription.Kind.String())
}

func (s *Store) setReady(ready bool, topology string) {
	if s.ready.Swap(ready) == ready {
		return
	}
	if ready {
		s.logger.Info("mongodb connection ready", slog.String("topology", topology))
		return
	}
	s.logger.Warn("mongodb connection not ready", slog.String("topology", topology))
}

// writable reports whether the deployment can serve writes, the way the
// client as a whole sees it. A failing secondary does not matter.
func writable(t description.Topology) bool {
	return t.Kind == description.LoadBalanced || t.HasWritableServer()
}

// isUnavailable matches failures to reach the deployment. Errors caused by
// the caller's context are excluded even when the driver labels them as
// network errors.
func isUnavailable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return mongo.IsNetworkError(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, topology.ErrServerSelectionTimeout)
}

func byID(id todo.ID) bson.D {
	return bson.D{{Key: "_id", Value: id.ObjectID()}}
}

func fromItem(item todo.Item) document {
	return document{
		ID:          item.ID.ObjectID(),
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (d document) item() todo.Item {
	return todo.Item{
		ID:          todo.ID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}
