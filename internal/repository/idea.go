// internal/repository/idea.go
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

type IdeaRepositoryIface interface {
	Create(ctx context.Context, idea *model.Idea) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	FindByStatuses(ctx context.Context, statuses []model.IdeaStatus) ([]*model.Idea, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Idea, error)
	Update(ctx context.Context, idea *model.Idea) error
	Delete(ctx context.Context, id uuid.UUID) error
	Transition(ctx context.Context, id uuid.UUID, to model.IdeaStatus, resetAggregates bool) error
	SetAggregates(ctx context.Context, tx Transaction, id uuid.UUID, average float64, count int) error
	AddTeamMember(ctx context.Context, ideaID, userID uuid.UUID) error
	Leaderboard(ctx context.Context, limit int) ([]*model.Idea, error)
}

type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

func (r *IdeaRepository) Create(ctx context.Context, idea *model.Idea) error {
	result := r.db.WithContext(ctx).Create(idea)
	if result.Error != nil {
		return fmt.Errorf("failed to create idea: %w", result.Error)
	}
	return nil
}

func (r *IdeaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	var idea model.Idea
	result := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("TeamMembers").
		First(&idea, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to find idea: %w", result.Error)
	}
	return &idea, nil
}

// FindByStatuses returns ideas whose status is in the given set, newest
// first. An empty set means no status filter.
func (r *IdeaRepository) FindByStatuses(ctx context.Context, statuses []model.IdeaStatus) ([]*model.Idea, error) {
	var ideas []*model.Idea
	q := r.db.WithContext(ctx).Preload("Owner").Order("created_at DESC")
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	if result := q.Find(&ideas); result.Error != nil {
		return nil, fmt.Errorf("failed to find ideas: %w", result.Error)
	}
	return ideas, nil
}

func (r *IdeaRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Idea, error) {
	var ideas []*model.Idea
	result := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("TeamMembers").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ideas)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find owned ideas: %w", result.Error)
	}
	return ideas, nil
}

func (r *IdeaRepository) Update(ctx context.Context, idea *model.Idea) error {
	result := r.db.WithContext(ctx).Save(idea)
	if result.Error != nil {
		return fmt.Errorf("failed to update idea: %w", result.Error)
	}
	return nil
}

func (r *IdeaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Idea{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete idea: %w", result.Error)
	}
	return nil
}

// Transition moves a pending idea to the given terminal status. The update is
// guarded on the current status so that of two racing reviewers exactly one
// succeeds; the other observes ErrIdeaNotPending.
func (r *IdeaRepository) Transition(ctx context.Context, id uuid.UUID, to model.IdeaStatus, resetAggregates bool) error {
	updates := map[string]interface{}{"status": to}
	if resetAggregates {
		updates["average_rating"] = 0
		updates["ratings_count"] = 0
	}

	result := r.db.WithContext(ctx).
		Model(&model.Idea{}).
		Where("id = ? AND status = ?", id, model.IdeaPending).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to transition idea: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrIdeaNotPending
	}
	return nil
}

func (r *IdeaRepository) SetAggregates(ctx context.Context, tx Transaction, id uuid.UUID, average float64, count int) error {
	result := dbFrom(r.db, tx).WithContext(ctx).
		Model(&model.Idea{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"average_rating": average, "ratings_count": count})
	if result.Error != nil {
		return fmt.Errorf("failed to set aggregates: %w", result.Error)
	}
	return nil
}

func (r *IdeaRepository) AddTeamMember(ctx context.Context, ideaID, userID uuid.UUID) error {
	idea := model.Idea{ID: ideaID}
	err := r.db.WithContext(ctx).
		Model(&idea).
		Association("TeamMembers").
		Append(&model.User{ID: userID})
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

func (r *IdeaRepository) Leaderboard(ctx context.Context, limit int) ([]*model.Idea, error) {
	var ideas []*model.Idea
	result := r.db.WithContext(ctx).
		Preload("Owner").
		Where("status = ?", model.IdeaApproved).
		Order("average_rating DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&ideas)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", result.Error)
	}
	return ideas, nil
}
