package libpolicy

import (
	"fmt"
	"strings"
)

// PolicyError is the base error type for all policy resolution errors.
type PolicyError struct {
	Name    string // Raw policy name that was being resolved
	Message string // User-facing message
}

// Error implements the error interface.
func (e *PolicyError) Error() string {
	return e.Message
}

// InvalidPolicyNameError represents a policy name missing from the catalog.
type InvalidPolicyNameError struct {
	PolicyError
	Available []string // Catalog names at the time of the failure
}

// Error implements the error interface.
func (e *InvalidPolicyNameError) Error() string {
	return fmt.Sprintf("Invalid library policy name: '%s', the available options are: [%s]",
		e.Name, strings.Join(e.Available, ", "))
}

// UnexpectedArgsError represents args passed to a policy that takes none.
type UnexpectedArgsError struct {
	PolicyError
	Args []string // Args that were rejected
}

// Error implements the error interface.
func (e *UnexpectedArgsError) Error() string {
	return fmt.Sprintf("No args should be passed for the '%s' policy", e.Name)
}

// MissingArgsError represents a UseOnly policy with no library ids.
type MissingArgsError struct {
	PolicyError
}

// Error implements the error interface.
func (e *MissingArgsError) Error() string {
	return fmt.Sprintf("No library ids specified for '%s', if you don't want to use any library "+
		"you should set the libraries policy to '%s' instead.", e.Name, NameIgnoreAll)
}

// NewInvalidPolicyNameError creates a new InvalidPolicyNameError.
func NewInvalidPolicyNameError(name string) *InvalidPolicyNameError {
	e := &InvalidPolicyNameError{
		PolicyError: PolicyError{Name: name},
		Available:   AllNames(),
	}
	e.Message = e.Error()
	return e
}

// NewUnexpectedArgsError creates a new UnexpectedArgsError.
func NewUnexpectedArgsError(name string, args []string) *UnexpectedArgsError {
	e := &UnexpectedArgsError{
		PolicyError: PolicyError{Name: name},
		Args:        append([]string(nil), args...),
	}
	e.Message = e.Error()
	return e
}

// NewMissingArgsError creates a new MissingArgsError.
func NewMissingArgsError(name string) *MissingArgsError {
	e := &MissingArgsError{PolicyError: PolicyError{Name: name}}
	e.Message = e.Error()
	return e
}
