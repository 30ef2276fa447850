package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvariant indicates that a domain invariant would be violated by the requested operation.
var ErrInvariant = errors.New("domain invariant violated")

// DomainError is implemented by every typed budgeting error. Code returns a
// stable identifier suitable for API serialization or direct UI rendering.
type DomainError interface {
	error
	Code() string
}
