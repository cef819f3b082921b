package podcasts

import (
	"errors"
	"fmt"
)

var ErrPodcastNotFound = errors.New("podcast not found")

// NotFoundError represents an error when a podcast is not found
type NotFoundError struct {
	ID interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("podcast with identifier %v not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrPodcastNotFound
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFoundErr NotFoundError
	return errors.As(err, &notFoundErr) || errors.Is(err, ErrPodcastNotFound)
}
