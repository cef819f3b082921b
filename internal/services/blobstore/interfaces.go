package blobstore

import (
	"context"
	"io"
	"time"
)

// Object describes one stored object as reported by a listing.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Store defines the interface for key-addressed object storage.
// Writes and deletes have no partial-result semantics: a call either fully
// succeeds or fully fails, and callers never retry through this interface.
type Store interface {
	// Put writes the object under key with the given content type
	Put(ctx context.Context, key string, data io.Reader, contentType string) error

	// Delete removes the object under key
	Delete(ctx context.Context, key string) error

	// List returns every object in the managed bucket
	List(ctx context.Context) ([]Object, error)

	// URLFor returns the deterministic public URL for key
	URLFor(key string) string

	// OwnsURL reports whether rawURL points into the managed bucket
	OwnsURL(rawURL string) bool

	// KeyForURL extracts the object key from a URL previously produced by URLFor
	KeyForURL(rawURL string) (string, error)
}
