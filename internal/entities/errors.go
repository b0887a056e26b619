// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnauthenticated signals a request without a caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals the caller lacks the required role on the list.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrListNotFound signals a missing shopping list.
	ErrListNotFound = errors.New("shopping list not found")
	// ErrItemNotFound signals a missing item inside an existing list.
	ErrItemNotFound = errors.New("item not found")
	// ErrAlreadyMember signals adding a user who is already a member.
	ErrAlreadyMember = errors.New("already a member")
	// ErrNotAMember signals removing a user who is not a member.
	ErrNotAMember = errors.New("not a member")
)
