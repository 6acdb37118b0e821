package service_test

import (
	"context"
	"testing"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/mocks"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotificationMarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := studentCaller()

	t.Run("the target user marks their notification read", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		notification := &model.Notification{ID: uuid.New(), UserID: caller.ID, Message: "hello"}
		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), notification.ID).Return(notification, nil),
			repo.EXPECT().MarkRead(gomock.Any(), notification.ID).Return(nil),
		)

		svc := service.NewNotificationService(repo)
		updated, err := svc.MarkRead(context.Background(), notification.ID, caller)
		assert.NoError(t, err)
		assert.True(t, updated.Read)
	})

	t.Run("someone else's notification is off limits", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		notification := &model.Notification{ID: uuid.New(), UserID: uuid.New(), Message: "hello"}
		repo.EXPECT().FindByID(gomock.Any(), notification.ID).Return(notification, nil)

		svc := service.NewNotificationService(repo)
		_, err := svc.MarkRead(context.Background(), notification.ID, caller)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestNotificationMarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := studentCaller()
	repo := mocks.NewMockNotificationRepositoryIface(ctrl)
	repo.EXPECT().MarkAllRead(gomock.Any(), caller.ID).Return(int64(3), nil)

	svc := service.NewNotificationService(repo)
	count, err := svc.MarkAllRead(context.Background(), caller)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationUnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := studentCaller()
	repo := mocks.NewMockNotificationRepositoryIface(ctrl)
	repo.EXPECT().CountUnread(gomock.Any(), caller.ID).Return(int64(2), nil)

	svc := service.NewNotificationService(repo)
	count, err := svc.UnreadCount(context.Background(), caller)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotificationList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := studentCaller()
	repo := mocks.NewMockNotificationRepositoryIface(ctrl)
	repo.EXPECT().
		FindByUser(gomock.Any(), caller.ID).
		Return([]*model.Notification{
			{ID: uuid.New(), UserID: caller.ID, Message: "newest", Type: model.NotificationIdeaApproved},
			{ID: uuid.New(), UserID: caller.ID, Message: "older", Type: model.NotificationTeamRequest, Read: true},
		}, nil)

	svc := service.NewNotificationService(repo)
	notifications, err := svc.List(context.Background(), caller)
	assert.NoError(t, err)
	if assert.Len(t, notifications, 2) {
		assert.Equal(t, "newest", notifications[0].Message)
	}
}
