package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "separators become spaces",
			filename: "My_Great-Episode.mp3",
			want:     "My Great Episode",
		},
		{
			name:     "embedded identifier stripped",
			filename: "3f9a1b2c-4d5e-6f70-8192-a3b4c5d6e7f8_My_Great-Episode.mp3",
			want:     "My Great Episode",
		},
		{
			name:     "storage key keeps only the base name",
			filename: "episodes/3f9a1b2c-4d5e-6f70-8192-a3b4c5d6e7f8.mp3",
			want:     "",
		},
		{
			name:     "windows path separators",
			filename: `C:\uploads\weekly_recap.mp3`,
			want:     "weekly recap",
		},
		{
			name:     "collapsed whitespace",
			filename: "a__b---c.wav",
			want:     "a b c",
		},
		{
			name:     "no extension",
			filename: "plain title",
			want:     "plain title",
		},
		{
			name:     "identifier in the middle",
			filename: "intro-3f9a1b2c-4d5e-6f70-8192-a3b4c5d6e7f8-outro.m4a",
			want:     "intro outro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.filename))
		})
	}
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("episodes", "show.mp3")
	assert.Regexp(t, `^episodes/[a-f0-9-]{36}\.mp3$`, key)

	// Two keys for the same filename never collide
	assert.NotEqual(t, key, ObjectKey("episodes", "show.mp3"))

	// Files without an extension still get a usable key
	assert.Regexp(t, `^thumbnails/[a-f0-9-]{36}$`, ObjectKey("thumbnails", "cover"))
}
