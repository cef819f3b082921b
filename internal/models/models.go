package models

import (
	"time"

	"gorm.io/gorm"
)

// Podcast represents a show that owns zero or more episodes
type Podcast struct {
	gorm.Model
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	CreatorID     uint      `json:"creator_id" gorm:"not null;index"`
	Category      string    `json:"category" gorm:"not null"`
	CoverImageURL string    `json:"cover_image_url"`
	Episodes      []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID"`
}

// Episode represents one published audio unit backed by an object in blob storage
type Episode struct {
	gorm.Model
	PodcastID   uint   `json:"podcast_id" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	// Media information. AudioURL is unique: two episodes must never
	// reference the same stored object.
	AudioURL     string `json:"audio_url" gorm:"uniqueIndex;not null"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     int    `json:"duration" gorm:"default:0"` // seconds, 0 when extraction failed

	ReleaseDate time.Time `json:"release_date"`

	// Counters are only ever mutated through storage-level increments.
	Views     int `json:"views" gorm:"default:0"`
	PlayCount int `json:"play_count" gorm:"default:0"`

	Host     string `json:"host"`
	Topic    string `json:"topic"`
	Approved bool   `json:"approved" gorm:"default:true"`

	Podcast *Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
}

// User represents a creator or listener account
type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

// Comment is a listener comment on an episode. Stored relationally with a
// foreign key to Episode rather than in process memory so it survives
// restarts and works across instances.
type Comment struct {
	gorm.Model
	EpisodeID uint    `json:"episode_id" gorm:"not null;index"`
	UserID    uint    `json:"user_id" gorm:"not null"`
	Body      string  `json:"body" gorm:"type:text;not null"`
	Episode   Episode `json:"-" gorm:"foreignKey:EpisodeID"`
	User      User    `json:"-" gorm:"foreignKey:UserID"`
}

// Subscription represents a user's subscription to a podcast
type Subscription struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"not null;index"`
	PodcastID uint    `json:"podcast_id" gorm:"not null;index"`
	User      User    `json:"-" gorm:"foreignKey:UserID"`
	Podcast   Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
}

// All returns every model that participates in auto migration.
func All() []any {
	return []any{
		&Podcast{},
		&Episode{},
		&User{},
		&Comment{},
		&Subscription{},
	}
}
