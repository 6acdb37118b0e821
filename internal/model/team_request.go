// internal/model/team_request.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TeamRequestStatus string

const (
	TeamRequestPending  TeamRequestStatus = "pending"
	TeamRequestApproved TeamRequestStatus = "approved"
	TeamRequestRejected TeamRequestStatus = "rejected"
)

// TeamRequest is a student's request to join an approved idea's team,
// resolved by the idea's owner.
type TeamRequest struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	IdeaID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"idea_id"`
	Idea        *Idea             `gorm:"foreignKey:IdeaID" json:"-"`
	RequesterID uuid.UUID         `gorm:"type:uuid;not null;index" json:"requester_id"`
	Requester   *User             `gorm:"foreignKey:RequesterID" json:"-"`
	Status      TeamRequestStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
