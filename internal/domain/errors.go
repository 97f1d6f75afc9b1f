// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Registration errors
	ErrOrganisationExists = errors.New("organisation name already taken")
	ErrEmailAlreadyExists = errors.New("email already registered")

	// Tenant-scoped entity errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrTeamNotFound     = errors.New("team not found")

	// Assignment errors
	ErrAlreadyAssigned    = errors.New("employee already assigned to this team")
	ErrAssignmentNotFound = errors.New("assignment not found")
)
