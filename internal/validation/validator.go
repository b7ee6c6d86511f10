// =============================================================================
// Daily Sales Summary - Validation Engine
// =============================================================================
//
// This module turns the raw key/value fields of one invoice into a validated
// Order. Checks run in a fixed order and the first failing stage rejects the
// invoice:
//   1. Required keys      (all missing keys reported together)
//   2. OrderType          (in | out)
//   3. Item               (fixed menu)
//   4. Quantity           (base-10 integer)
//   5. PricePerItem and TotalPrice (decimal; both parsed before failing)
//
// After the Order is built, the total is cross-checked against
// Quantity * PricePerItem. A mismatch is a warning, not a rejection.
//
// =============================================================================

package validation

import (
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/daily-sales-summary/internal/types"
)

// =============================================================================
// FIELD NAMES
// =============================================================================

// Normalized (lower-case) invoice keys.
const (
	FieldOrderType    = "ordertype"
	FieldItem         = "item"
	FieldQuantity     = "quantity"
	FieldPricePerItem = "priceperitem"
	FieldTotalPrice   = "totalprice"
)

// requiredFields is the order in which missing keys are reported.
var requiredFields = [...]string{
	FieldOrderType,
	FieldItem,
	FieldQuantity,
	FieldPricePerItem,
	FieldTotalPrice,
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator builds Orders from normalized invoice fields.
type Validator struct {
	// log receives the non-fatal total mismatch warning.
	log logrus.FieldLogger
}

// NewValidator creates a Validator that reports warnings to log.
// A nil log discards warnings.
func NewValidator(log logrus.FieldLogger) *Validator {
	if log == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		log = discard
	}
	return &Validator{log: log}
}

// Validate checks fields and returns the resulting Order.
//
// PARAMETERS:
//   - fields: Lower-cased keys mapped to trimmed values.
//   - source: The invoice identifier used in errors and warnings.
//
// RETURNS:
//   - The validated Order.
//   - One of the typed errors from errors.go if a check fails.
func (v *Validator) Validate(fields map[string]string, source string) (*types.Order, error) {
	var missing []string
	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Source: source, Fields: missing}
	}

	kind, ok := types.ParseOrderKind(fields[FieldOrderType])
	if !ok {
		return nil, &InvalidOrderTypeError{Source: source, Value: fields[FieldOrderType]}
	}

	item, ok := types.ParseMenuItem(fields[FieldItem])
	if !ok {
		return nil, &InvalidItemError{Source: source, Value: fields[FieldItem]}
	}

	quantity, err := strconv.Atoi(fields[FieldQuantity])
	if err != nil {
		return nil, &InvalidQuantityError{Source: source, Value: fields[FieldQuantity], Err: err}
	}

	pricePerItem, ppiErr := decimal.NewFromString(fields[FieldPricePerItem])
	totalPrice, totalErr := decimal.NewFromString(fields[FieldTotalPrice])
	if ppiErr != nil || totalErr != nil {
		return nil, &InvalidPriceError{
			Source:       source,
			PricePerItem: fields[FieldPricePerItem],
			TotalPrice:   fields[FieldTotalPrice],
		}
	}

	order := &types.Order{
		Kind:         kind,
		Item:         item,
		Quantity:     quantity,
		PricePerItem: pricePerItem,
		TotalPrice:   totalPrice,
		Source:       source,
	}

	if order.TotalMismatch() {
		v.log.WithFields(logrus.Fields{
			"source":         source,
			"quantity":       quantity,
			"price_per_item": pricePerItem.String(),
			"total_price":    totalPrice.String(),
			"expected_total": order.ExpectedTotal().String(),
		}).Warnf("TotalPrice != Quantity * PricePerItem in '%s'", source)
	}

	return order, nil
}
