// internal/repository/rating.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error) // For mocking support in tests

	Create(ctx context.Context, tx Transaction, rating *model.Rating) error
	FindByIdea(ctx context.Context, tx Transaction, ideaID uuid.UUID) ([]*model.Rating, error)
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *RatingRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

// Create inserts the rating, inside tx when one is given. The
// (idea_id, user_id) unique index is the authority on duplicates; a
// pre-check alone would be racy.
func (r *RatingRepository) Create(ctx context.Context, tx Transaction, rating *model.Rating) error {
	result := dbFrom(r.db, tx).WithContext(ctx).Create(rating)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyRated
		}
		return fmt.Errorf("failed to create rating: %w", result.Error)
	}
	return nil
}

func (r *RatingRepository) FindByIdea(ctx context.Context, tx Transaction, ideaID uuid.UUID) ([]*model.Rating, error) {
	var ratings []*model.Rating
	result := dbFrom(r.db, tx).WithContext(ctx).
		Preload("User").
		Where("idea_id = ?", ideaID).
		Order("created_at DESC").
		Find(&ratings)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", result.Error)
	}
	return ratings, nil
}
