// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationIdeaApproved  NotificationType = "idea_approved"
	NotificationIdeaRejected  NotificationType = "idea_rejected"
	NotificationFeedbackAdded NotificationType = "feedback_added"
	NotificationTeamRequest   NotificationType = "team_request"
	NotificationTeamApproved  NotificationType = "team_approved"
	NotificationTeamRejected  NotificationType = "team_rejected"
)

// Notification is a per-user informational record emitted as a side effect
// of a state transition. Callers never create one directly.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Type      NotificationType `gorm:"type:text" json:"type,omitempty"`
	Read      bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
