package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/mocks"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTeamRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requester := studentCaller()
	ownerID := uuid.New()
	approved := &model.Idea{
		ID:      uuid.New(),
		Title:   "Solar Campus",
		OwnerID: ownerID,
		Status:  model.IdeaApproved,
	}

	t.Run("a student can request to join an approved idea", func(t *testing.T) {
		notifier, notifRepo := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		gomock.InOrder(
			ideaRepo.EXPECT().FindByID(gomock.Any(), approved.ID).Return(approved, nil),
			repo.EXPECT().
				FindByIdeaAndRequester(gomock.Any(), approved.ID, requester.ID).
				Return(nil, domain.ErrRequestNotFound),
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r *model.TeamRequest) error {
					assert.Equal(t, approved.ID, r.IdeaID)
					assert.Equal(t, requester.ID, r.RequesterID)
					assert.Equal(t, model.TeamRequestPending, r.Status)
					r.ID = uuid.New()
					return nil
				}),
			notifRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n *model.Notification) error {
					assert.Equal(t, ownerID, n.UserID)
					assert.Equal(t, model.NotificationTeamRequest, n.Type)
					assert.Equal(t, `Ada Student requested to join your idea "Solar Campus".`, n.Message)
					return nil
				}),
		)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		view, err := svc.Request(context.Background(), approved.ID, requester)
		assert.NoError(t, err)
		assert.Equal(t, model.TeamRequestPending, view.Status)
		assert.Equal(t, requester.ID, view.Requester.ID)
	})

	t.Run("a prior request blocks regardless of its status", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		denied := &model.TeamRequest{
			ID:          uuid.New(),
			IdeaID:      approved.ID,
			RequesterID: requester.ID,
			Status:      model.TeamRequestRejected,
		}
		gomock.InOrder(
			ideaRepo.EXPECT().FindByID(gomock.Any(), approved.ID).Return(approved, nil),
			repo.EXPECT().
				FindByIdeaAndRequester(gomock.Any(), approved.ID, requester.ID).
				Return(denied, nil),
		)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Request(context.Background(), approved.ID, requester)
		assert.ErrorIs(t, err, domain.ErrRequestExists)
	})

	t.Run("the owner cannot request their own idea", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		ideaRepo.EXPECT().FindByID(gomock.Any(), approved.ID).Return(approved, nil)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Request(context.Background(), approved.ID, model.Caller{ID: ownerID, Role: model.RoleStudent})
		assert.ErrorIs(t, err, domain.ErrAlreadyOnTeam)
	})

	t.Run("existing members cannot re-request", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		withTeam := &model.Idea{
			ID:          approved.ID,
			OwnerID:     ownerID,
			Status:      model.IdeaApproved,
			TeamMembers: []model.User{{ID: requester.ID}},
		}
		ideaRepo.EXPECT().FindByID(gomock.Any(), approved.ID).Return(withTeam, nil)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Request(context.Background(), approved.ID, requester)
		assert.ErrorIs(t, err, domain.ErrAlreadyOnTeam)
	})

	t.Run("unapproved ideas cannot be joined", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		pending := &model.Idea{ID: uuid.New(), OwnerID: ownerID, Status: model.IdeaPending}
		ideaRepo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Request(context.Background(), pending.ID, requester)
		assert.ErrorIs(t, err, domain.ErrCannotJoin)
	})

	t.Run("storage failures surface as unavailable, not cannot-join", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		ideaRepo.EXPECT().
			FindByID(gomock.Any(), approved.ID).
			Return(nil, errors.New("dial tcp: connection refused"))

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Request(context.Background(), approved.ID, requester)
		assert.NotErrorIs(t, err, domain.ErrCannotJoin)
		assert.Equal(t, domain.KindUnavailable, domain.KindOf(err))
	})

	t.Run("mentors cannot join teams", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Request(context.Background(), approved.ID, model.Caller{ID: uuid.New(), Role: model.RoleMentor})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestTeamListRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := studentCaller()
	idea := &model.Idea{ID: uuid.New(), OwnerID: owner.ID, Status: model.IdeaApproved}

	t.Run("only the owner may list", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		ideaRepo.EXPECT().FindByID(gomock.Any(), idea.ID).Return(idea, nil)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.ListRequests(context.Background(), idea.ID, studentCaller())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("storage failures surface as unavailable, not forbidden", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		ideaRepo.EXPECT().
			FindByID(gomock.Any(), idea.ID).
			Return(nil, errors.New("dial tcp: connection refused"))

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.ListRequests(context.Background(), idea.ID, owner)
		assert.NotErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, domain.KindUnavailable, domain.KindOf(err))
	})

	t.Run("the owner sees requester identities", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		requester := &model.User{ID: uuid.New(), Name: "Bo Builder", Email: "bo@example.com"}
		gomock.InOrder(
			ideaRepo.EXPECT().FindByID(gomock.Any(), idea.ID).Return(idea, nil),
			repo.EXPECT().
				FindByIdea(gomock.Any(), idea.ID).
				Return([]*model.TeamRequest{
					{ID: uuid.New(), IdeaID: idea.ID, RequesterID: requester.ID, Requester: requester, Status: model.TeamRequestPending},
				}, nil),
		)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		views, err := svc.ListRequests(context.Background(), idea.ID, owner)
		assert.NoError(t, err)
		if assert.Len(t, views, 1) {
			assert.Equal(t, "Bo Builder", views[0].Requester.Name)
		}
	})
}

func TestTeamApprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := studentCaller()
	requesterID := uuid.New()

	newRequest := func(members ...model.User) *model.TeamRequest {
		idea := &model.Idea{
			ID:          uuid.New(),
			Title:       "Solar Campus",
			OwnerID:     owner.ID,
			Status:      model.IdeaApproved,
			TeamMembers: members,
		}
		return &model.TeamRequest{
			ID:          uuid.New(),
			IdeaID:      idea.ID,
			Idea:        idea,
			RequesterID: requesterID,
			Requester:   &model.User{ID: requesterID, Name: "Bo Builder"},
			Status:      model.TeamRequestPending,
		}
	}

	t.Run("approval adds the requester to the team", func(t *testing.T) {
		notifier, notifRepo := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		request := newRequest()
		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), request.ID).Return(request, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), request.ID, model.TeamRequestApproved).Return(nil),
			ideaRepo.EXPECT().AddTeamMember(gomock.Any(), request.IdeaID, requesterID).Return(nil),
			notifRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n *model.Notification) error {
					assert.Equal(t, requesterID, n.UserID)
					assert.Equal(t, model.NotificationTeamApproved, n.Type)
					assert.Equal(t, `Your join request for "Solar Campus" has been approved.`, n.Message)
					return nil
				}),
		)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		view, err := svc.Approve(context.Background(), request.ID, owner)
		assert.NoError(t, err)
		assert.Equal(t, model.TeamRequestApproved, view.Status)
	})

	t.Run("membership is never duplicated", func(t *testing.T) {
		notifier, notifRepo := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		request := newRequest(model.User{ID: requesterID})
		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), request.ID).Return(request, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), request.ID, model.TeamRequestApproved).Return(nil),
			// No AddTeamMember call: the requester is already on the team.
			notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Approve(context.Background(), request.ID, owner)
		assert.NoError(t, err)
	})

	t.Run("only the idea owner may resolve", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		request := newRequest()
		repo.EXPECT().FindByID(gomock.Any(), request.ID).Return(request, nil)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		_, err := svc.Approve(context.Background(), request.ID, studentCaller())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("deny resolves against the requester", func(t *testing.T) {
		notifier, notifRepo := newTestNotifier(ctrl)
		repo := mocks.NewMockTeamRequestRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		request := newRequest()
		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), request.ID).Return(request, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), request.ID, model.TeamRequestRejected).Return(nil),
			notifRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n *model.Notification) error {
					assert.Equal(t, model.NotificationTeamRejected, n.Type)
					assert.Equal(t, `Your join request for "Solar Campus" has been rejected.`, n.Message)
					return nil
				}),
		)

		svc := service.NewTeamService(repo, ideaRepo, notifier)
		view, err := svc.Deny(context.Background(), request.ID, owner)
		assert.NoError(t, err)
		assert.Equal(t, model.TeamRequestRejected, view.Status)
	})
}
