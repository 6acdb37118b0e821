// internal/service/rating.go
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

// RatingService owns the one-rating-per-reviewer invariant and keeps the
// idea's aggregate score consistent with the authoritative rating set.
type RatingService struct {
	repo     repository.RatingRepositoryIface
	ideaRepo repository.IdeaRepositoryIface
	notifier *Notifier
	validate *validator.Validate
}

func NewRatingService(
	repo repository.RatingRepositoryIface,
	ideaRepo repository.IdeaRepositoryIface,
	notifier *Notifier,
) *RatingService {
	return &RatingService{
		repo:     repo,
		ideaRepo: ideaRepo,
		notifier: notifier,
		validate: validator.New(),
	}
}

type SubmitRatingInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// List returns all ratings for the idea with rater identity projected,
// newest first.
func (s *RatingService) List(ctx context.Context, ideaID uuid.UUID) ([]RatingView, error) {
	ratings, err := s.repo.FindByIdea(ctx, nil, ideaID)
	if err != nil {
		return nil, fmt.Errorf("listing ratings: %w", err)
	}
	views := make([]RatingView, 0, len(ratings))
	for _, rating := range ratings {
		views = append(views, newRatingView(rating))
	}
	return views, nil
}

// Submit records a reviewer's rating on an approved idea and recomputes the
// idea's aggregates from the full rating set. The mean is never patched
// incrementally; recomputing from the authoritative set each time prevents
// drift under concurrent or partial failures.
func (s *RatingService) Submit(ctx context.Context, ideaID uuid.UUID, caller model.Caller, input SubmitRatingInput) (RatingView, error) {
	if caller.Role != model.RoleMentor && caller.Role != model.RoleAdmin {
		return RatingView{}, domain.ErrForbidden
	}

	if err := s.validate.Struct(input); err != nil {
		return RatingView{}, domain.ErrRatingOutOfRange
	}

	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		return RatingView{}, err
	}
	if idea.Status != model.IdeaApproved {
		return RatingView{}, domain.ErrIdeaNotApproved
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return RatingView{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	rating := &model.Rating{
		IdeaID:  idea.ID,
		UserID:  caller.ID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	// The unique index on (idea_id, user_id) is the duplicate guard; two
	// racing submissions by the same reviewer cannot both insert.
	if err := s.repo.Create(ctx, tx, rating); err != nil {
		return RatingView{}, err
	}

	// Read back inside the same transaction so the recompute sees the
	// uncommitted insert.
	all, err := s.repo.FindByIdea(ctx, tx, idea.ID)
	if err != nil {
		return RatingView{}, fmt.Errorf("recomputing aggregates: %w", err)
	}

	var sum int
	for _, r := range all {
		sum += r.Rating
	}
	average := float64(sum) / float64(len(all))

	if err := s.ideaRepo.SetAggregates(ctx, tx, idea.ID, average, len(all)); err != nil {
		return RatingView{}, err
	}

	if err := tx.Commit(); err != nil {
		return RatingView{}, fmt.Errorf("committing transaction: %w", err)
	}

	s.notifier.Emit(ctx, idea.OwnerID, model.NotificationFeedbackAdded,
		fmt.Sprintf("New %d star rating on your idea %q", input.Rating, idea.Title))

	// The recompute read already carries the new rating with its rater
	// preloaded; reuse it for the projection.
	for _, r := range all {
		if r.ID == rating.ID {
			rating = r
			break
		}
	}
	return newRatingView(rating), nil
}
