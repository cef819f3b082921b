package ingest

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Key prefixes inside the managed bucket
const (
	audioKeyPrefix     = "episodes"
	thumbnailKeyPrefix = "thumbnails"
)

// Audio container suffixes accepted by the pipeline
var allowedExtensions = map[string]struct{}{
	".mp3": {},
	".wav": {},
	".m4a": {},
}

// Declared content types accepted by the pipeline. Browsers report these
// inconsistently, so a matching filename suffix is accepted as well.
var allowedContentTypes = map[string]struct{}{
	"audio/mpeg":  {},
	"audio/mp3":   {},
	"audio/wav":   {},
	"audio/mp4":   {},
	"audio/x-m4a": {},
}

// ObjectKey builds a collision-resistant storage key under prefix,
// preserving the original file extension.
func ObjectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(filename))
}

// isAllowedAudio reports whether the declared content type or the filename
// suffix is on the audio allow-list. Either one matching is sufficient.
func isAllowedAudio(filename, contentType string) bool {
	if _, ok := allowedContentTypes[strings.ToLower(contentType)]; ok {
		return true
	}
	_, ok := allowedExtensions[strings.ToLower(path.Ext(filename))]
	return ok
}

// isAudioKey reports whether a stored object key carries an audio suffix
func isAudioKey(key string) bool {
	_, ok := allowedExtensions[strings.ToLower(path.Ext(key))]
	return ok
}
