// internal/service/views.go
package service

import (
	"time"

	"github.com/campusforge/ideabank/internal/model"
	"github.com/google/uuid"
)

// IdeaView is an idea with its owner (and, where loaded, team members)
// projected down to public identity fields.
type IdeaView struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Category      string             `json:"category,omitempty"`
	Tags          []string           `json:"tags"`
	Technologies  []string           `json:"technologies"`
	Status        model.IdeaStatus   `json:"status"`
	AverageRating float64            `json:"average_rating"`
	RatingsCount  int                `json:"ratings_count"`
	Owner         model.PublicUser   `json:"owner"`
	TeamMembers   []model.PublicUser `json:"team_members,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func newIdeaView(idea *model.Idea) IdeaView {
	view := IdeaView{
		ID:            idea.ID,
		Title:         idea.Title,
		Description:   idea.Description,
		Category:      idea.Category,
		Tags:          idea.Tags,
		Technologies:  idea.Technologies,
		Status:        idea.Status,
		AverageRating: idea.AverageRating,
		RatingsCount:  idea.RatingsCount,
		CreatedAt:     idea.CreatedAt,
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	if view.Technologies == nil {
		view.Technologies = []string{}
	}
	if idea.Owner != nil {
		view.Owner = idea.Owner.Public()
	} else {
		view.Owner = model.PublicUser{ID: idea.OwnerID}
	}
	for _, member := range idea.TeamMembers {
		view.TeamMembers = append(view.TeamMembers, member.Public())
	}
	return view
}

func newIdeaViews(ideas []*model.Idea) []IdeaView {
	views := make([]IdeaView, 0, len(ideas))
	for _, idea := range ideas {
		views = append(views, newIdeaView(idea))
	}
	return views
}

// RatingView annotates a rating with the rater's public identity.
type RatingView struct {
	ID        uuid.UUID        `json:"id"`
	IdeaID    uuid.UUID        `json:"idea_id"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment,omitempty"`
	User      model.PublicUser `json:"user"`
	CreatedAt time.Time        `json:"created_at"`
}

func newRatingView(rating *model.Rating) RatingView {
	view := RatingView{
		ID:        rating.ID,
		IdeaID:    rating.IdeaID,
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
	if rating.User != nil {
		view.User = rating.User.Public()
	} else {
		view.User = model.PublicUser{ID: rating.UserID}
	}
	return view
}

// TeamRequestView annotates a request with the requester's public identity.
type TeamRequestView struct {
	ID        uuid.UUID               `json:"id"`
	IdeaID    uuid.UUID               `json:"idea_id"`
	Requester model.PublicUser        `json:"requester"`
	Status    model.TeamRequestStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

func newTeamRequestView(request *model.TeamRequest) TeamRequestView {
	view := TeamRequestView{
		ID:        request.ID,
		IdeaID:    request.IdeaID,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}
	if request.Requester != nil {
		view.Requester = request.Requester.Public()
	} else {
		view.Requester = model.PublicUser{ID: request.RequesterID}
	}
	return view
}
