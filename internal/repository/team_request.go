// internal/repository/team_request.go
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

type TeamRequestRepositoryIface interface {
	Create(ctx context.Context, request *model.TeamRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TeamRequest, error)
	FindByIdea(ctx context.Context, ideaID uuid.UUID) ([]*model.TeamRequest, error)
	FindByIdeaAndRequester(ctx context.Context, ideaID, requesterID uuid.UUID) (*model.TeamRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TeamRequestStatus) error
}

type TeamRequestRepository struct {
	db *gorm.DB
}

func NewTeamRequestRepository(db *gorm.DB) *TeamRequestRepository {
	return &TeamRequestRepository{db: db}
}

func (r *TeamRequestRepository) Create(ctx context.Context, request *model.TeamRequest) error {
	result := r.db.WithContext(ctx).Create(request)
	if result.Error != nil {
		return fmt.Errorf("failed to create team request: %w", result.Error)
	}
	return nil
}

func (r *TeamRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TeamRequest, error) {
	var request model.TeamRequest
	result := r.db.WithContext(ctx).
		Preload("Idea").
		Preload("Idea.TeamMembers").
		Preload("Requester").
		First(&request, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find team request: %w", result.Error)
	}
	return &request, nil
}

func (r *TeamRequestRepository) FindByIdea(ctx context.Context, ideaID uuid.UUID) ([]*model.TeamRequest, error) {
	var requests []*model.TeamRequest
	result := r.db.WithContext(ctx).
		Preload("Requester").
		Where("idea_id = ?", ideaID).
		Order("created_at DESC").
		Find(&requests)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find team requests: %w", result.Error)
	}
	return requests, nil
}

// FindByIdeaAndRequester returns any request for the pair regardless of its
// status. A denied requester therefore stays blocked from re-requesting.
func (r *TeamRequestRepository) FindByIdeaAndRequester(ctx context.Context, ideaID, requesterID uuid.UUID) (*model.TeamRequest, error) {
	var request model.TeamRequest
	result := r.db.WithContext(ctx).
		Where("idea_id = ? AND requester_id = ?", ideaID, requesterID).
		First(&request)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find team request: %w", result.Error)
	}
	return &request, nil
}

// UpdateStatus is deliberately unguarded: resolving an already-resolved
// request overwrites its status again, matching the observed behavior of the
// request lifecycle (membership stays deduped either way).
func (r *TeamRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TeamRequestStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.TeamRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update team request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
