package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists in the queried scope
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the requested state transition is already satisfied or nonsensical
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller's scope may not perform the action
	ErrForbidden = errors.New("you are not allowed to do this")
	// ErrInvalidTransition will throw on an illegal review status move
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrPreconditionFailed will throw if an action needs a prior step that did not happen
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrCacheMiss is returned by caches when the key is absent
	ErrCacheMiss = errors.New("cache miss")
)

// kindError is a business failure that unwraps to one of the base kinds above,
// so callers can match either the precise failure or its kind with errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

var (
	ErrUserNotFound    = newKindError(ErrNotFound, "user not found")
	ErrPostNotFound    = newKindError(ErrNotFound, "post not found")
	ErrCommentNotFound = newKindError(ErrNotFound, "comment not found")
	ErrTargetNotFound  = newKindError(ErrNotFound, "like target not found")
	ErrFollowNotFound  = newKindError(ErrNotFound, "follow relation not found")

	ErrAlreadyLiked     = newKindError(ErrConflict, "target already liked")
	ErrNotLiked         = newKindError(ErrConflict, "target is not liked")
	ErrFollowSelf       = newKindError(ErrConflict, "cannot follow yourself")
	ErrAlreadyFollowing = newKindError(ErrConflict, "already following this user")
	ErrNotFollowing     = newKindError(ErrConflict, "not following this user")

	ErrReviewTransition = newKindError(ErrInvalidTransition, "review status cannot go back to PENDING")

	ErrNotSoftDeleted = newKindError(ErrPreconditionFailed, "must be soft-deleted before hard delete")
)
