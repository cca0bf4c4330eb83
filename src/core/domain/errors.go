package domain

import (
	"errors"
	"fmt"
)

// StoreKind identifies the category of a storage failure. The set is
// closed: the HTTP layer switches exhaustively over these values and
// treats anything outside the set as an internal error.
type StoreKind int

const (
	// StoreUniqueViolation: an insert broke a unique constraint.
	StoreUniqueViolation StoreKind = iota + 1

	// StoreNotFound: the storage layer itself reported a missing record.
	// Distinct from a lookup returning no row, which is not an error.
	StoreNotFound

	// StoreForeignKey: a referenced record does not exist.
	StoreForeignKey

	// StoreRequiredRelation: a required column or relation was left null.
	StoreRequiredRelation

	// StoreInvalidData: the engine rejected the shape or encoding of a value.
	StoreInvalidData

	// StoreConnection: the connection to the engine failed or was never
	// established.
	StoreConnection

	// StoreRequest: any other failure the engine identified and coded.
	StoreRequest
)

// StoreError is the tagged error returned by the storage layer. Code
// carries the engine's machine identifier (SQLSTATE) when one exists;
// Fields names the violating columns for unique violations.
type StoreError struct {
	Kind    StoreKind
	Code    string
	Message string
	Fields  []string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

// AsStoreError extracts a StoreError from an error chain.
func AsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsStoreKind reports whether err is a StoreError of the given kind.
func IsStoreKind(err error, kind StoreKind) bool {
	se, ok := AsStoreError(err)
	return ok && se.Kind == kind
}
