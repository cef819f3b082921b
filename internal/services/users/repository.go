package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/podhaven/ingest-api/internal/models"
	"gorm.io/gorm"
)

// ErrNoUsers is returned when the user table is empty
var ErrNoUsers = errors.New("no users available")

// UserRepository defines the minimal account lookups the ingestion flows need
type UserRepository interface {
	// GetAnyUser returns an arbitrary existing user, or ErrNoUsers
	GetAnyUser(ctx context.Context) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

type Repository struct {
	db *gorm.DB
}

var _ UserRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAnyUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Order("id ASC").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUsers
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}
