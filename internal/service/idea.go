// internal/service/idea.go
package service

import (
	"context"
	"fmt"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const leaderboardSize = 20

// IdeaService owns the idea lifecycle: creation, edits, the
// pending→approved/rejected state machine, and role-scoped visibility.
type IdeaService struct {
	repo     repository.IdeaRepositoryIface
	notifier *Notifier
	validate *validator.Validate
}

func NewIdeaService(repo repository.IdeaRepositoryIface, notifier *Notifier) *IdeaService {
	return &IdeaService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(),
	}
}

type CreateIdeaInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Technologies []string `json:"technologies"`
}

type UpdateIdeaInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Technologies []string `json:"technologies"`
}

// List returns ideas scoped by the caller's role: students see approved
// ideas only, mentors see pending and approved, admins see everything.
// Newest first.
func (s *IdeaService) List(ctx context.Context, caller model.Caller) ([]IdeaView, error) {
	var statuses []model.IdeaStatus
	switch caller.Role {
	case model.RoleStudent:
		statuses = []model.IdeaStatus{model.IdeaApproved}
	case model.RoleMentor:
		statuses = []model.IdeaStatus{model.IdeaPending, model.IdeaApproved}
	case model.RoleAdmin:
		statuses = nil
	default:
		return nil, domain.ErrForbidden
	}

	ideas, err := s.repo.FindByStatuses(ctx, statuses)
	if err != nil {
		return nil, fmt.Errorf("listing ideas: %w", err)
	}
	return newIdeaViews(ideas), nil
}

// ListMine returns the caller's own ideas regardless of status, newest first.
func (s *IdeaService) ListMine(ctx context.Context, caller model.Caller) ([]IdeaView, error) {
	ideas, err := s.repo.FindByOwner(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("listing owned ideas: %w", err)
	}
	return newIdeaViews(ideas), nil
}

// Get returns a single idea. Students can only see pending ideas they own.
func (s *IdeaService) Get(ctx context.Context, id uuid.UUID, caller model.Caller) (IdeaView, error) {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return IdeaView{}, err
	}

	if idea.Status == model.IdeaPending &&
		caller.Role == model.RoleStudent &&
		idea.OwnerID != caller.ID {
		return IdeaView{}, domain.ErrForbidden
	}

	return newIdeaView(idea), nil
}

// Create submits a new idea. Students only; every idea starts pending with
// zeroed aggregates.
func (s *IdeaService) Create(ctx context.Context, caller model.Caller, input CreateIdeaInput) (IdeaView, error) {
	if caller.Role != model.RoleStudent {
		return IdeaView{}, domain.ErrForbidden
	}

	if err := s.validate.Struct(input); err != nil {
		return IdeaView{}, fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	technologies := input.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	idea := &model.Idea{
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Tags:          tags,
		Technologies:  technologies,
		OwnerID:       caller.ID,
		Status:        model.IdeaPending,
		AverageRating: 0,
		RatingsCount:  0,
	}

	if err := s.repo.Create(ctx, idea); err != nil {
		return IdeaView{}, fmt.Errorf("creating idea: %w", err)
	}

	created, err := s.repo.FindByID(ctx, idea.ID)
	if err != nil {
		return IdeaView{}, fmt.Errorf("reloading idea: %w", err)
	}
	return newIdeaView(created), nil
}

// Update patches a pending idea owned by the caller. Absent or empty fields
// are left unchanged; only title, description, category, tags and
// technologies are mutable.
func (s *IdeaService) Update(ctx context.Context, id uuid.UUID, caller model.Caller, patch UpdateIdeaInput) (IdeaView, error) {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return IdeaView{}, err
	}

	if idea.OwnerID != caller.ID || idea.Status != model.IdeaPending {
		return IdeaView{}, domain.ErrCannotEdit
	}

	if patch.Title != "" {
		idea.Title = patch.Title
	}
	if patch.Description != "" {
		idea.Description = patch.Description
	}
	if patch.Category != "" {
		idea.Category = patch.Category
	}
	if patch.Tags != nil {
		idea.Tags = patch.Tags
	}
	if patch.Technologies != nil {
		idea.Technologies = patch.Technologies
	}

	if err := s.repo.Update(ctx, idea); err != nil {
		return IdeaView{}, fmt.Errorf("updating idea: %w", err)
	}
	return newIdeaView(idea), nil
}

// Delete removes an idea. Students may delete their own pending ideas;
// admins may delete anything.
func (s *IdeaService) Delete(ctx context.Context, id uuid.UUID, caller model.Caller) error {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	switch caller.Role {
	case model.RoleAdmin:
		// always allowed
	case model.RoleStudent:
		if idea.OwnerID != caller.ID || idea.Status != model.IdeaPending {
			return domain.ErrCannotDelete
		}
	default:
		return domain.ErrCannotDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting idea: %w", err)
	}
	return nil
}

// Approve transitions a pending idea to approved and resets its rating
// aggregates to a clean baseline. Mentors and admins only. The transition is
// conditional on the current status, so a racing reviewer loses with
// ErrIdeaNotPending.
func (s *IdeaService) Approve(ctx context.Context, id uuid.UUID, caller model.Caller) (IdeaView, error) {
	return s.transition(ctx, id, caller, model.IdeaApproved)
}

// Reject transitions a pending idea to rejected. Rating fields are left
// untouched. Mentors and admins only.
func (s *IdeaService) Reject(ctx context.Context, id uuid.UUID, caller model.Caller) (IdeaView, error) {
	return s.transition(ctx, id, caller, model.IdeaRejected)
}

func (s *IdeaService) transition(ctx context.Context, id uuid.UUID, caller model.Caller, to model.IdeaStatus) (IdeaView, error) {
	if caller.Role != model.RoleMentor && caller.Role != model.RoleAdmin {
		return IdeaView{}, domain.ErrForbidden
	}

	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return IdeaView{}, err
	}

	resetAggregates := to == model.IdeaApproved
	if err := s.repo.Transition(ctx, id, to, resetAggregates); err != nil {
		return IdeaView{}, err
	}

	idea.Status = to
	if resetAggregates {
		idea.AverageRating = 0
		idea.RatingsCount = 0
	}

	switch to {
	case model.IdeaApproved:
		s.notifier.Emit(ctx, idea.OwnerID, model.NotificationIdeaApproved,
			fmt.Sprintf("Your idea %q has been approved!", idea.Title))
	case model.IdeaRejected:
		s.notifier.Emit(ctx, idea.OwnerID, model.NotificationIdeaRejected,
			fmt.Sprintf("Your idea %q has been rejected.", idea.Title))
	}

	return newIdeaView(idea), nil
}

// Leaderboard returns the top approved ideas ordered by average rating,
// newest first among ties.
func (s *IdeaService) Leaderboard(ctx context.Context, limit int) ([]IdeaView, error) {
	if limit <= 0 {
		limit = leaderboardSize
	}
	ideas, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}
	return newIdeaViews(ideas), nil
}
