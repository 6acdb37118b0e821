// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("storage unavailable")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnauthorized       = errors.New("unauthorized")

	// Idea-related errors
	ErrIdeaNotFound   = errors.New("idea not found")
	ErrIdeaNotPending = errors.New("idea is not pending")
	ErrCannotEdit     = errors.New("cannot edit")
	ErrCannotDelete   = errors.New("cannot delete")

	// Rating-related errors
	ErrRatingOutOfRange = errors.New("rating must be 1-5")
	ErrIdeaNotApproved  = errors.New("only approved ideas can be rated")
	ErrAlreadyRated     = errors.New("you have already rated this idea")

	// Team-related errors
	ErrCannotJoin      = errors.New("cannot join")
	ErrAlreadyOnTeam   = errors.New("already owner or member")
	ErrRequestExists   = errors.New("request already sent")
	ErrRequestNotFound = errors.New("team request not found")

	// Notification-related errors
	ErrNotificationNotFound = errors.New("notification not found")
)

// Kind buckets an error into the platform's error taxonomy so handlers can
// pick a status code without enumerating every sentinel.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
)

// KindOf maps a sentinel to its taxonomy kind. Unknown errors are treated as
// collaborator failures.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrRatingOutOfRange), errors.Is(err, ErrInvalidRole):
		return KindInvalidInput
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrCannotEdit), errors.Is(err, ErrCannotDelete),
		errors.Is(err, ErrInvalidCredentials):
		return KindForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrIdeaNotFound),
		errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRequestNotFound),
		errors.Is(err, ErrNotificationNotFound), errors.Is(err, ErrCannotJoin):
		return KindNotFound
	case errors.Is(err, ErrIdeaNotPending), errors.Is(err, ErrIdeaNotApproved),
		errors.Is(err, ErrAlreadyOnTeam):
		return KindInvalidState
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrAlreadyRated),
		errors.Is(err, ErrRequestExists):
		return KindConflict
	default:
		return KindUnavailable
	}
}
