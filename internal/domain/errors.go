package domain

import "errors"

// Contact flow errors
var (
	ErrMissingFields        = errors.New("missing required contact fields")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrRelayFailure         = errors.New("mail relay failed")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrUnknownField         = errors.New("unknown contact form field")
)

// Catalog errors
var (
	ErrUnknownCategory = errors.New("unknown project category")
	ErrProjectNotFound = errors.New("project not found")
)

// ErrInvalidVisitor is returned when a settings call has no visitor id.
var ErrInvalidVisitor = errors.New("visitor id is required")
