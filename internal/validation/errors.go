// =============================================================================
// Daily Sales Summary - Validation Errors
// =============================================================================
//
// Every invoice rejection is reported with one of the typed errors below.
// All of them:
//   - carry the source identifier (file name) of the rejected invoice
//   - match ErrInvalidInvoice under errors.Is
//   - are fatal to the run; the caller never builds a partial summary
//
// Callers that need details use errors.As with the concrete type.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInvoice is matched by every invoice validation error.
var ErrInvalidInvoice = errors.New("invalid invoice")

// MissingFieldError reports every required key absent from an invoice.
type MissingFieldError struct {
	// Source is the invoice file name.
	Source string

	// Fields lists the missing keys in required-key order.
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing keys [%s] in invoice '%s'", strings.Join(e.Fields, ", "), e.Source)
}

// Is reports whether target is ErrInvalidInvoice.
func (e *MissingFieldError) Is(target error) bool { return target == ErrInvalidInvoice }

// InvalidOrderTypeError reports an OrderType outside {in, out}.
type InvalidOrderTypeError struct {
	Source string

	// Value is the raw value as it appeared on the invoice.
	Value string
}

func (e *InvalidOrderTypeError) Error() string {
	return fmt.Sprintf("invalid OrderType '%s' in '%s'", e.Value, e.Source)
}

// Is reports whether target is ErrInvalidInvoice.
func (e *InvalidOrderTypeError) Is(target error) bool { return target == ErrInvalidInvoice }

// InvalidItemError reports an Item that is not on the menu.
type InvalidItemError struct {
	Source string
	Value  string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid Item '%s' in '%s'", e.Value, e.Source)
}

// Is reports whether target is ErrInvalidInvoice.
func (e *InvalidItemError) Is(target error) bool { return target == ErrInvalidInvoice }

// InvalidQuantityError reports a Quantity that is not a base-10 integer.
type InvalidQuantityError struct {
	Source string
	Value  string

	// Err is the underlying strconv error.
	Err error
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("Quantity must be an integer in '%s' (got '%s')", e.Source, e.Value)
}

// Is reports whether target is ErrInvalidInvoice.
func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidInvoice }

func (e *InvalidQuantityError) Unwrap() error { return e.Err }

// InvalidPriceError reports that PricePerItem, TotalPrice, or both are not
// decimal numbers. The two fields are reported together.
type InvalidPriceError struct {
	Source       string
	PricePerItem string
	TotalPrice   string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("PricePerItem/TotalPrice must be numeric in '%s' (got '%s'/'%s')",
		e.Source, e.PricePerItem, e.TotalPrice)
}

// Is reports whether target is ErrInvalidInvoice.
func (e *InvalidPriceError) Is(target error) bool { return target == ErrInvalidInvoice }
