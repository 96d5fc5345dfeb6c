// Package store archives parsed GEDCOM snapshots in MongoDB.
//
// A snapshot captures one parse of one source file: its content hash, the
// per-collection stats, and the full JSON export. Snapshots are immutable;
// re-storing the same file produces a new document with its own id.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kaper156/pygedcom/pkg/cache"
	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

// collectionName is the MongoDB collection holding snapshots.
const collectionName = "snapshots"

// Snapshot is one archived parse result.
type Snapshot struct {
	ID         string       `bson:"_id" json:"id"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
	SourceName string       `bson:"source_name" json:"source_name"`
	SourceHash string       `bson:"source_hash" json:"source_hash"`
	Stats      gedcom.Stats `bson:"stats" json:"stats"`
	Export     string       `bson:"export" json:"export"`
}

// Store wraps a MongoDB collection of snapshots.
type Store struct {
	client *mongo.Client
	col    *mongo.Collection
}

// Connect opens a MongoDB connection and returns a snapshot store.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Store{
		client: client,
		col:    client.Database(database).Collection(collectionName),
	}, nil
}

// Save archives the parser's current state. The source text is hashed for
// later change detection; the export is the full JSON rendering with empty
// fields included.
func (s *Store) Save(ctx context.Context, sourceName, sourceText string, p *gedcom.Parser) (Snapshot, error) {
	export, err := p.Export(gedcom.FormatJSON, true)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		SourceName: sourceName,
		SourceHash: cache.Hash([]byte(sourceText)),
		Stats:      p.Stats(),
		Export:     export,
	}
	if _, err := s.col.InsertOne(ctx, snap); err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, nil
}

// FindSnapshot returns the snapshot with the given id.
// Returns mongo.ErrNoDocuments when absent.
func (s *Store) FindSnapshot(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&snap)
	return snap, err
}

// ListSnapshots returns up to limit snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context, limit int64) ([]Snapshot, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer cur.Close(ctx)

	var snaps []Snapshot
	if err := cur.All(ctx, &snaps); err != nil {
		return nil, fmt.Errorf("decode snapshots: %w", err)
	}
	return snaps, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
