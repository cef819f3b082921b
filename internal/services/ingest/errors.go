package ingest

import (
	"errors"
	"fmt"
)

// Validation and precondition errors surfaced to callers as client errors
var (
	ErrEmptyUpload          = errors.New("no audio payload provided")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload exceeds maximum upload size")
	ErrEpisodeNotFound      = errors.New("episode not found")
	ErrDuplicateAudioURL    = errors.New("an episode already references this audio URL")
	ErrNoUsersAvailable     = errors.New("no users available to own the default podcast")
	ErrPodcastNotFound      = errors.New("podcast not found")
)

// StorageWriteError wraps a blob store failure during upload
type StorageWriteError struct {
	Key string
	Err error
}

func (e StorageWriteError) Error() string {
	return fmt.Sprintf("storage write failed for %s: %v", e.Key, e.Err)
}

func (e StorageWriteError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a repository failure after validation passed
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}

// IsStorageWrite reports whether err is a blob store write failure
func IsStorageWrite(err error) bool {
	var swe StorageWriteError
	return errors.As(err, &swe)
}

// IsPersistence reports whether err is a repository failure
func IsPersistence(err error) bool {
	var pe PersistenceError
	return errors.As(err, &pe)
}
