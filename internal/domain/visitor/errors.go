package visitor

import "errors"

var (
	ErrAlreadyExited     = errors.New("entry already exited")
	ErrVisitorInside     = errors.New("a visitor linked to this authorization is inside")
	ErrAuthorizationGone = errors.New("authorization not found")
	ErrEntryNotFound     = errors.New("entry not found")
)
