package domain

import "strings"

// ReviewStatus is the moderation state shared by posts and comments.
type ReviewStatus int8

const (
	ReviewPending ReviewStatus = iota
	ReviewApproved
	ReviewRejected
)

func (s ReviewStatus) String() string {
	switch s {
	case ReviewPending:
		return "PENDING"
	case ReviewApproved:
		return "APPROVED"
	case ReviewRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s ReviewStatus) Valid() bool {
	return s >= ReviewPending && s <= ReviewRejected
}

// ParseReviewStatus accepts the names returned by String, case-insensitively.
func ParseReviewStatus(v string) (ReviewStatus, error) {
	switch strings.ToUpper(v) {
	case "PENDING":
		return ReviewPending, nil
	case "APPROVED":
		return ReviewApproved, nil
	case "REJECTED":
		return ReviewRejected, nil
	}
	return 0, ErrBadParamInput
}

// CanTransitionTo reports whether a reviewer may move s to next.
//
// A decided item never goes back to PENDING. APPROVED and REJECTED may overturn
// each other, and re-applying the current state is accepted.
func (s ReviewStatus) CanTransitionTo(next ReviewStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if next == ReviewPending {
		return s == ReviewPending
	}
	return true
}

// CheckReviewTransition returns ErrReviewTransition for a forbidden move and
// ErrBadParamInput for an unknown status.
func CheckReviewTransition(from, to ReviewStatus) error {
	if !to.Valid() {
		return ErrBadParamInput
	}
	if !from.CanTransitionTo(to) {
		return ErrReviewTransition
	}
	return nil
}

// CommentStatus is the display state of a comment, independent of review.
type CommentStatus int8

const (
	CommentNormal CommentStatus = iota
	CommentFolded
)

func (s CommentStatus) String() string {
	switch s {
	case CommentNormal:
		return "NORMAL"
	case CommentFolded:
		return "FOLDED"
	default:
		return "UNKNOWN"
	}
}

func (s CommentStatus) Valid() bool {
	return s == CommentNormal || s == CommentFolded
}

func ParseCommentStatus(v string) (CommentStatus, error) {
	switch strings.ToUpper(v) {
	case "NORMAL":
		return CommentNormal, nil
	case "FOLDED":
		return CommentFolded, nil
	}
	return 0, ErrBadParamInput
}

// Scope names the class of caller a read is filtered for.
// Scopes are ordered: every scope sees at least what the ones below it see.
type Scope int8

const (
	ScopeUser Scope = iota
	ScopeReviewer
	ScopeAdmin
)

func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "USER"
	case ScopeReviewer:
		return "REVIEWER"
	case ScopeAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

// ScopeFromRole maps a token role to a scope. Unknown roles get USER.
func ScopeFromRole(role string) Scope {
	switch strings.ToLower(role) {
	case "admin":
		return ScopeAdmin
	case "reviewer":
		return ScopeReviewer
	default:
		return ScopeUser
	}
}
