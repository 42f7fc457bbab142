// Package store provides persistence for generated puzzles.
//
// Two backends are available:
//   - MemoryStore: in-process, for single-instance servers and tests
//   - MongoStore: durable storage for shared deployments
//
// Puzzles are stored as opaque JSON documents (the pkg/io wire format)
// alongside an ID and creation timestamp. The store does not interpret the
// puzzle content.
package store

import (
	"context"
	"time"
)

// Record is one stored puzzle.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Data      []byte    `json:"data" bson:"data"`
}

// Store persists puzzle documents.
type Store interface {
	// Save stores a puzzle document and returns the record with its
	// generated ID.
	Save(ctx context.Context, data []byte) (*Record, error)

	// Get returns a record by ID. Returns an error with code
	// ErrCodePuzzleNotFound if no record exists.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, most recent first.
	List(ctx context.Context) ([]*Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
