package blobstore

import (
	"testing"

	"github.com/podhaven/ingest-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, cfg config.StorageConfig) *S3Store {
	t.Helper()
	store, err := NewS3Store(cfg)
	require.NoError(t, err)
	return store
}

func TestURLFor_VirtualHosted(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Bucket: "podhaven-media",
		Region: "us-east-1",
	})

	url := store.URLFor("episodes/abc.mp3")
	assert.Equal(t, "https://podhaven-media.s3.us-east-1.amazonaws.com/episodes/abc.mp3", url)
}

func TestURLFor_CustomEndpoint(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Bucket:     "podhaven-media",
		Region:     "us-east-1",
		Endpoint:   "http://localhost:9000",
		DisableSSL: true,
	})

	url := store.URLFor("episodes/abc.mp3")
	assert.Equal(t, "http://localhost:9000/podhaven-media/episodes/abc.mp3", url)
}

func TestKeyForURL_RoundTrip(t *testing.T) {
	configs := []config.StorageConfig{
		{Bucket: "podhaven-media", Region: "eu-west-2"},
		{Bucket: "podhaven-media", Region: "us-east-1", Endpoint: "https://minio.internal:9000"},
	}

	for _, cfg := range configs {
		store := newTestStore(t, cfg)

		url := store.URLFor("episodes/3f9a1b2c.mp3")
		key, err := store.KeyForURL(url)
		require.NoError(t, err)
		assert.Equal(t, "episodes/3f9a1b2c.mp3", key)
		assert.True(t, store.OwnsURL(url))
	}
}

func TestKeyForURL_ForeignURLs(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Bucket: "podhaven-media",
		Region: "us-east-1",
	})

	foreign := []string{
		"https://other-bucket.s3.us-east-1.amazonaws.com/episodes/a.mp3",
		"https://podhaven-media.s3.eu-west-2.amazonaws.com/episodes/a.mp3",
		"https://cdn.example.com/episodes/a.mp3",
		"https://podhaven-media.s3.us-east-1.amazonaws.com/",
		"not a url at all ://",
	}

	for _, rawURL := range foreign {
		_, err := store.KeyForURL(rawURL)
		assert.Error(t, err, rawURL)
		assert.False(t, store.OwnsURL(rawURL), rawURL)
	}
}

func TestKeyForURL_EndpointBucketMismatch(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Bucket:   "podhaven-media",
		Region:   "us-east-1",
		Endpoint: "http://localhost:9000",
	})

	_, err := store.KeyForURL("http://localhost:9000/other-bucket/episodes/a.mp3")
	assert.Error(t, err)

	_, err = store.KeyForURL("http://localhost:9999/podhaven-media/episodes/a.mp3")
	assert.Error(t, err)
}
