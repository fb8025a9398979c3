package services

import "errors"

// Sentinel errors the handlers map to HTTP statuses with errors.Is.
var (
	// ErrUserNotFound is returned when an order references a user id that
	// does not resolve against the user directory.
	ErrUserNotFound = errors.New("user not found")

	// ErrOrderNotFound is returned when a single-order lookup misses.
	ErrOrderNotFound = errors.New("order not found")

	// ErrMenuItemsNotFound is returned when one or more requested menu ids
	// are absent from the catalog.
	ErrMenuItemsNotFound = errors.New("one or more menu items not found")

	// ErrInvariantViolation is returned when a requested menu id has no
	// resolved record during pricing. The membership check makes this
	// unreachable; it exists so a broken lookup fails loudly instead of
	// pricing against a zero-value menu.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned on any login failure. It stays
	// deliberately vague about whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
