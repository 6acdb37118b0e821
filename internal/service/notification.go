// internal/service/notification.go
package service

import (
	"context"
	"fmt"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/repository"
	"github.com/google/uuid"
)

// NotificationService exposes a user's notification feed: list, mark read,
// mark all read, unread count. Records are only ever created by the
// Notifier as state-transition side effects.
type NotificationService struct {
	repo repository.NotificationRepositoryIface
}

func NewNotificationService(repo repository.NotificationRepositoryIface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) List(ctx context.Context, caller model.Caller) ([]*model.Notification, error) {
	notifications, err := s.repo.FindByUser(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags a single notification as read. Only its target user may.
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, caller model.Caller) (*model.Notification, error) {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	notification.Read = true
	return notification, nil
}

// MarkAllRead flags the caller's unread notifications and returns how many
// records changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, caller model.Caller) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, caller.ID)
	if err != nil {
		return 0, fmt.Errorf("marking notifications read: %w", err)
	}
	return count, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, caller model.Caller) (int64, error) {
	count, err := s.repo.CountUnread(ctx, caller.ID)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}
