package service_test

import (
	"context"
	"testing"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/mocks"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/repository"
	"github.com/campusforge/ideabank/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSubmitRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mentor := model.Caller{ID: uuid.New(), Role: model.RoleMentor, Name: "Ida Mentor"}
	ownerID := uuid.New()
	idea := &model.Idea{
		ID:      uuid.New(),
		Title:   "Solar Campus",
		OwnerID: ownerID,
		Status:  model.IdeaApproved,
	}

	t.Run("first rating sets the mean to its value", func(t *testing.T) {
		notifier, notifRepo := newTestNotifier(ctrl)
		repo := mocks.NewMockRatingRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		ratingID := uuid.New()
		ideaRepo.EXPECT().FindByID(gomock.Any(), idea.ID).Return(idea, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		// Every statement between Begin and Commit must run on the handle
		// Begin returned, so the matchers pin tx itself.
		repo.EXPECT().
			Create(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.Transaction, r *model.Rating) error {
				assert.Equal(t, idea.ID, r.IdeaID)
				assert.Equal(t, mentor.ID, r.UserID)
				assert.Equal(t, 4, r.Rating)
				r.ID = ratingID
				return nil
			})
		repo.EXPECT().
			FindByIdea(gomock.Any(), tx, idea.ID).
			Return([]*model.Rating{
				{
					ID:     ratingID,
					IdeaID: idea.ID,
					UserID: mentor.ID,
					User:   &model.User{ID: mentor.ID, Name: mentor.Name},
					Rating: 4,
				},
			}, nil)
		ideaRepo.EXPECT().SetAggregates(gomock.Any(), tx, idea.ID, 4.0, 1).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)
		notifRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, ownerID, n.UserID)
				assert.Equal(t, model.NotificationFeedbackAdded, n.Type)
				assert.Equal(t, `New 4 star rating on your idea "Solar Campus"`, n.Message)
				return nil
			})

		svc := service.NewRatingService(repo, ideaRepo, notifier)
		view, err := svc.Submit(context.Background(), idea.ID, mentor, service.SubmitRatingInput{Rating: 4})
		assert.NoError(t, err)
		assert.Equal(t, 4, view.Rating)
		assert.Equal(t, mentor.Name, view.User.Name)
	})

	t.Run("the mean is recomputed over the full set", func(t *testing.T) {
		notifier, notifRepo := newTestNotifier(ctrl)
		repo := mocks.NewMockRatingRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		admin := model.Caller{ID: uuid.New(), Role: model.RoleAdmin, Name: "Root"}
		newID := uuid.New()

		ideaRepo.EXPECT().FindByID(gomock.Any(), idea.ID).Return(idea, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().
			Create(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.Transaction, r *model.Rating) error {
				r.ID = newID
				return nil
			})
		repo.EXPECT().
			FindByIdea(gomock.Any(), tx, idea.ID).
			Return([]*model.Rating{
				{ID: newID, IdeaID: idea.ID, UserID: admin.ID, User: &model.User{ID: admin.ID, Name: admin.Name}, Rating: 2},
				{ID: uuid.New(), IdeaID: idea.ID, UserID: uuid.New(), Rating: 4},
			}, nil)
		ideaRepo.EXPECT().SetAggregates(gomock.Any(), tx, idea.ID, 3.0, 2).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)
		notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewRatingService(repo, ideaRepo, notifier)
		view, err := svc.Submit(context.Background(), idea.ID, admin, service.SubmitRatingInput{Rating: 2, Comment: "solid"})
		assert.NoError(t, err)
		assert.Equal(t, 2, view.Rating)
	})

	t.Run("a duplicate submission rolls back", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockRatingRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		ideaRepo.EXPECT().FindByID(gomock.Any(), idea.ID).Return(idea, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(domain.ErrAlreadyRated)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewRatingService(repo, ideaRepo, notifier)
		_, err := svc.Submit(context.Background(), idea.ID, mentor, service.SubmitRatingInput{Rating: 5})
		assert.ErrorIs(t, err, domain.ErrAlreadyRated)
	})

	t.Run("students cannot rate", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockRatingRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		svc := service.NewRatingService(repo, ideaRepo, notifier)
		_, err := svc.Submit(context.Background(), idea.ID, studentCaller(), service.SubmitRatingInput{Rating: 3})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("ratings outside 1..5 are refused", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockRatingRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		svc := service.NewRatingService(repo, ideaRepo, notifier)
		for _, score := range []int{0, 6, -1} {
			_, err := svc.Submit(context.Background(), idea.ID, mentor, service.SubmitRatingInput{Rating: score})
			assert.ErrorIs(t, err, domain.ErrRatingOutOfRange, "score %d", score)
		}
	})

	t.Run("only approved ideas accept ratings", func(t *testing.T) {
		notifier, _ := newTestNotifier(ctrl)
		repo := mocks.NewMockRatingRepositoryIface(ctrl)
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

		pending := &model.Idea{ID: uuid.New(), Status: model.IdeaPending}
		ideaRepo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)

		svc := service.NewRatingService(repo, ideaRepo, notifier)
		_, err := svc.Submit(context.Background(), pending.ID, mentor, service.SubmitRatingInput{Rating: 3})
		assert.ErrorIs(t, err, domain.ErrIdeaNotApproved)
	})
}

func TestListRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier, _ := newTestNotifier(ctrl)
	repo := mocks.NewMockRatingRepositoryIface(ctrl)
	ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)

	ideaID := uuid.New()
	rater := &model.User{ID: uuid.New(), Name: "Ida Mentor", Email: "ida@example.com"}
	repo.EXPECT().
		FindByIdea(gomock.Any(), gomock.Nil(), ideaID).
		Return([]*model.Rating{
			{ID: uuid.New(), IdeaID: ideaID, UserID: rater.ID, User: rater, Rating: 5, Comment: "great"},
		}, nil)

	svc := service.NewRatingService(repo, ideaRepo, notifier)
	views, err := svc.List(context.Background(), ideaID)
	assert.NoError(t, err)
	if assert.Len(t, views, 1) {
		assert.Equal(t, 5, views[0].Rating)
		assert.Equal(t, "Ida Mentor", views[0].User.Name)
	}
}
