// internal/service/team.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/repository"
	"github.com/google/uuid"
)

// TeamService owns the join-request lifecycle and the membership mutation
// that follows an approval.
type TeamService struct {
	repo     repository.TeamRequestRepositoryIface
	ideaRepo repository.IdeaRepositoryIface
	notifier *Notifier
}

func NewTeamService(
	repo repository.TeamRequestRepositoryIface,
	ideaRepo repository.IdeaRepositoryIface,
	notifier *Notifier,
) *TeamService {
	return &TeamService{
		repo:     repo,
		ideaRepo: ideaRepo,
		notifier: notifier,
	}
}

// Request files a join request against an approved idea. The existence check
// spans every prior request for the pair regardless of status, so a denied
// requester cannot re-request.
func (s *TeamService) Request(ctx context.Context, ideaID uuid.UUID, caller model.Caller) (TeamRequestView, error) {
	if caller.Role != model.RoleStudent {
		return TeamRequestView{}, domain.ErrForbidden
	}

	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, domain.ErrIdeaNotFound) {
			return TeamRequestView{}, domain.ErrCannotJoin
		}
		return TeamRequestView{}, fmt.Errorf("loading idea: %w", err)
	}
	if idea.Status != model.IdeaApproved {
		// Missing and unapproved ideas are reported the same way.
		return TeamRequestView{}, domain.ErrCannotJoin
	}

	if idea.OwnerID == caller.ID || idea.HasTeamMember(caller.ID) {
		return TeamRequestView{}, domain.ErrAlreadyOnTeam
	}

	existing, err := s.repo.FindByIdeaAndRequester(ctx, ideaID, caller.ID)
	if err != nil && !errors.Is(err, domain.ErrRequestNotFound) {
		return TeamRequestView{}, fmt.Errorf("checking existing request: %w", err)
	}
	if existing != nil {
		return TeamRequestView{}, domain.ErrRequestExists
	}

	request := &model.TeamRequest{
		IdeaID:      idea.ID,
		RequesterID: caller.ID,
		Status:      model.TeamRequestPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return TeamRequestView{}, fmt.Errorf("creating team request: %w", err)
	}

	s.notifier.Emit(ctx, idea.OwnerID, model.NotificationTeamRequest,
		fmt.Sprintf("%s requested to join your idea %q.", caller.Name, idea.Title))

	request.Requester = &model.User{ID: caller.ID, Name: caller.Name}
	return newTeamRequestView(request), nil
}

// ListRequests returns every request for the idea with requester identity
// projected, newest first. Only the idea's owner may look.
func (s *TeamService) ListRequests(ctx context.Context, ideaID uuid.UUID, caller model.Caller) ([]TeamRequestView, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, domain.ErrIdeaNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("loading idea: %w", err)
	}
	if idea.OwnerID != caller.ID {
		return nil, domain.ErrForbidden
	}

	requests, err := s.repo.FindByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("listing team requests: %w", err)
	}

	views := make([]TeamRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, newTeamRequestView(request))
	}
	return views, nil
}

// Approve resolves a request in the requester's favor and adds them to the
// idea's team. Membership is a set: the append is guarded so a repeated
// approval never duplicates the entry.
func (s *TeamService) Approve(ctx context.Context, requestID uuid.UUID, caller model.Caller) (TeamRequestView, error) {
	request, err := s.authorizeResolution(ctx, requestID, caller)
	if err != nil {
		return TeamRequestView{}, err
	}

	if err := s.repo.UpdateStatus(ctx, request.ID, model.TeamRequestApproved); err != nil {
		return TeamRequestView{}, err
	}
	request.Status = model.TeamRequestApproved

	if !request.Idea.HasTeamMember(request.RequesterID) {
		if err := s.ideaRepo.AddTeamMember(ctx, request.IdeaID, request.RequesterID); err != nil {
			return TeamRequestView{}, err
		}
	}

	s.notifier.Emit(ctx, request.RequesterID, model.NotificationTeamApproved,
		fmt.Sprintf("Your join request for %q has been approved.", request.Idea.Title))

	return newTeamRequestView(request), nil
}

// Deny resolves a request against the requester.
func (s *TeamService) Deny(ctx context.Context, requestID uuid.UUID, caller model.Caller) (TeamRequestView, error) {
	request, err := s.authorizeResolution(ctx, requestID, caller)
	if err != nil {
		return TeamRequestView{}, err
	}

	if err := s.repo.UpdateStatus(ctx, request.ID, model.TeamRequestRejected); err != nil {
		return TeamRequestView{}, err
	}
	request.Status = model.TeamRequestRejected

	s.notifier.Emit(ctx, request.RequesterID, model.NotificationTeamRejected,
		fmt.Sprintf("Your join request for %q has been rejected.", request.Idea.Title))

	return newTeamRequestView(request), nil
}

// authorizeResolution loads the request and checks the caller owns the
// request's idea. There is no pending-status guard: resolving an
// already-resolved request overwrites its status again.
func (s *TeamService) authorizeResolution(ctx context.Context, requestID uuid.UUID, caller model.Caller) (*model.TeamRequest, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Idea == nil {
		return nil, fmt.Errorf("%w: request idea missing", domain.ErrUnavailable)
	}
	if request.Idea.OwnerID != caller.ID {
		return nil, domain.ErrForbidden
	}
	return request, nil
}
