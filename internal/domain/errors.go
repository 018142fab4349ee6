package domain

import "errors"

var (
	// ErrOrganizationNotFound is returned when the query succeeds without an organization payload
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrEmptyRepositoryID is returned when a star mutation is requested without a target
	ErrEmptyRepositoryID = errors.New("repository id is empty")

	// ErrStarrableMismatch is returned when a mutation response names a different starrable
	ErrStarrableMismatch = errors.New("mutation response does not match requested starrable")
)
