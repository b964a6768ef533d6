package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation covers missing required fields, non-positive prices and
	// empty carts. The operation is blocked before any state changes.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned on a serial or id lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrAlreadySold is returned when a serial staged for sale is already SOLD,
	// unless the invoice being edited already owns it.
	ErrAlreadySold = errors.New("serial already sold")

	// ErrAlreadyInCart is returned when a serial is staged twice in the same
	// invoice draft.
	ErrAlreadyInCart = errors.New("serial already in cart")
)

// DuplicateError reports every offending identifier so the operator sees the
// full collision list, not just the first hit.
type DuplicateError struct {
	Kind string
	IDs  []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Kind, strings.Join(e.IDs, ", "))
}

func newDuplicateSerials(ids []string) *DuplicateError {
	return &DuplicateError{Kind: "serials", IDs: ids}
}

func newDuplicateModel(brand, modelName string) *DuplicateError {
	return &DuplicateError{Kind: "model", IDs: []string{brand + " " + modelName}}
}
