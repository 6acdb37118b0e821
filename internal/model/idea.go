// internal/model/idea.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type IdeaStatus string

const (
	IdeaPending  IdeaStatus = "pending"
	IdeaApproved IdeaStatus = "approved"
	IdeaRejected IdeaStatus = "rejected"
)

type Idea struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title         string         `gorm:"type:text;not null" json:"title"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Category      string         `gorm:"type:text" json:"category"`
	Tags          pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"tags"`
	Technologies  pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"technologies"`
	OwnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner         *User          `gorm:"foreignKey:OwnerID" json:"-"`
	TeamMembers   []User         `gorm:"many2many:idea_team_members" json:"-"`
	Status        IdeaStatus     `gorm:"type:text;not null;default:'pending';index" json:"status"`
	AverageRating float64        `gorm:"not null;default:0" json:"average_rating"`
	RatingsCount  int            `gorm:"not null;default:0" json:"ratings_count"`
	CreatedAt     time.Time      `json:"created_at"`
}

// HasTeamMember reports whether the user is already on the team. Membership
// is a set; approve paths must check this before appending.
func (i *Idea) HasTeamMember(userID uuid.UUID) bool {
	for _, m := range i.TeamMembers {
		if m.ID == userID {
			return true
		}
	}
	return false
}
