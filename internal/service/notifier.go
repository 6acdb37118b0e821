// internal/service/notifier.go
package service

import (
	"context"
	"log/slog"

	"github.com/campusforge/ideabank/internal/email"
	"github.com/campusforge/ideabank/internal/email/mailer"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/repository"
	"github.com/google/uuid"
)

// Notifier persists notification records emitted by state transitions and
// mirrors them to email when a mail provider is configured.
//
// Emission is fire-and-forget relative to the triggering operation: by the
// time Emit runs the primary mutation is already durable, so failures here
// are logged and never propagated back to the caller.
type Notifier struct {
	notificationRepo repository.NotificationRepositoryIface
	userRepo         repository.UserRepositoryIface
	emailService     *email.Service
	baseURL          string
}

func NewNotifier(
	notificationRepo repository.NotificationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	emailService *email.Service,
	baseURL string,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		baseURL:          baseURL,
	}
}

// Emit records a notification for the user. Never returns an error.
func (n *Notifier) Emit(ctx context.Context, userID uuid.UUID, notifType model.NotificationType, message string) {
	notification := &model.Notification{
		UserID:  userID,
		Message: message,
		Type:    notifType,
	}

	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		slog.ErrorContext(ctx, "failed to persist notification",
			"error", err, "user_id", userID, "type", notifType)
		return
	}

	if n.emailService == nil {
		return
	}

	user, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load notification recipient",
			"error", err, "user_id", userID)
		return
	}

	if err := mailer.SendNotificationEmail(n.emailService, user.Email, user.Name, message, n.baseURL); err != nil {
		slog.ErrorContext(ctx, "failed to send notification email",
			"error", err, "user_id", userID, "type", notifType)
	}
}
