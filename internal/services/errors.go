// Package services defines the business logic for users, strategies,
// analyses, user events, migration imports, and the fixed query catalog.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrEmptyTelegramID is returned when an operation that requires an
	// external telegram identity receives a blank one.
	ErrEmptyTelegramID = errors.New("telegram user id is required")

	// ErrStrategyNotFound indicates that the requested strategy does not
	// exist.
	ErrStrategyNotFound = errors.New("strategy not found")

	// ErrOwnershipMismatch is returned when the caller's resolved user id
	// does not match the owner of the row they are trying to mutate.
	ErrOwnershipMismatch = errors.New("resource belongs to another user")

	// ErrUnknownStatement is returned by the query catalog when the requested
	// statement name is not registered. Arbitrary SQL is never accepted.
	ErrUnknownStatement = errors.New("statement not in catalog")

	// ErrInvalidImport is returned when a migration batch is structurally
	// unusable (e.g. no recognized collections at all).
	ErrInvalidImport = errors.New("invalid migration payload")
)
