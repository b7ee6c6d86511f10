// =============================================================================
// Daily Sales Summary - Invoice Parser Module
// =============================================================================
//
// This module converts the raw text of one invoice file into an Order. An
// invoice is a line-oriented list of "key: value" pairs:
//
//   OrderType: in
//   Item: falafel
//   Quantity: 3
//   PricePerItem: 2.50
//   TotalPrice: 7.50
//
// PARSING RULES:
//   - Each line containing ':' is split on the FIRST ':' only
//   - Lines without ':' are ignored
//   - Keys are trimmed and lower-cased; values are trimmed
//   - A repeated key overwrites the earlier value
//
// The extracted fields are then handed to the validation engine, which owns
// the schema and value rules.
//
// =============================================================================

package invoice

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/daily-sales-summary/internal/types"
	"github.com/ginjaninja78/daily-sales-summary/internal/validation"
)

// separator splits a key from its value.
const separator = ":"

// =============================================================================
// PARSER
// =============================================================================

// Parser converts invoice text into validated Orders.
// A Parser holds no per-invoice state and may be reused for every file.
type Parser struct {
	validator *validation.Validator
}

// NewParser creates a Parser whose total mismatch warnings go to log.
func NewParser(log logrus.FieldLogger) *Parser {
	return &Parser{validator: validation.NewValidator(log)}
}

// Parse reads one invoice and returns the resulting Order.
//
// PARAMETERS:
//   - text: The full invoice text.
//   - source: The invoice identifier (file name) used in errors and warnings.
//
// RETURNS:
//   - The validated Order.
//   - A validation error if the invoice is malformed.
func (p *Parser) Parse(text, source string) (*types.Order, error) {
	return p.validator.Validate(ParseFields(text), source)
}

// =============================================================================
// FIELD EXTRACTION
// =============================================================================

// ParseFields extracts the normalized key/value pairs of an invoice.
//
// Every line break recognized by isLineBreak ends a line, so "\n", "\r\n"
// and a bare "\r" all work.
func ParseFields(text string) map[string]string {
	fields := make(map[string]string)

	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		key, value, found := strings.Cut(line, separator)
		if !found {
			continue
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	return fields
}

// isLineBreak reports whether r terminates a line.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
