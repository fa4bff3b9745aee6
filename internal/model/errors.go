package model

import "fmt"

// MissingRequiredFieldError reports a field the selected document shape
// requires but the input did not supply
type MissingRequiredFieldError struct {
	Field   string
	Context string
}

func (e *MissingRequiredFieldError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("missing required field %s (%s)", e.Field, e.Context)
	}
	return fmt.Sprintf("missing required field %s", e.Field)
}

// NewMissingRequiredFieldError creates a new missing-field error
func NewMissingRequiredFieldError(field, context string) *MissingRequiredFieldError {
	return &MissingRequiredFieldError{
		Field:   field,
		Context: context,
	}
}

// UnknownTaxRegimeError reports a tax code outside the enumerated set of
// its family; unknown codes never fall through to a default shape
type UnknownTaxRegimeError struct {
	Code   string
	Family string
}

func (e *UnknownTaxRegimeError) Error() string {
	return fmt.Sprintf("unknown %s tax regime code %q", e.Family, e.Code)
}

// NewUnknownTaxRegimeError creates a new unknown-regime error
func NewUnknownTaxRegimeError(code, family string) *UnknownTaxRegimeError {
	return &UnknownTaxRegimeError{
		Code:   code,
		Family: family,
	}
}

// UnknownEventTypeError reports an event type without a serialization rule
type UnknownEventTypeError struct {
	Type EventType
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("unknown event type %d", e.Type)
}

// NewUnknownEventTypeError creates a new unknown-event error
func NewUnknownEventTypeError(t EventType) *UnknownEventTypeError {
	return &UnknownEventTypeError{Type: t}
}

// UnsupportedJurisdictionError reports a federative unit the requested
// integration has no entry for
type UnsupportedJurisdictionError struct {
	UF string
}

func (e *UnsupportedJurisdictionError) Error() string {
	return fmt.Sprintf("jurisdiction %q is not supported", e.UF)
}

// NewUnsupportedJurisdictionError creates a new unsupported-jurisdiction error
func NewUnsupportedJurisdictionError(uf string) *UnsupportedJurisdictionError {
	return &UnsupportedJurisdictionError{UF: uf}
}

// ConsistencyError reports input that contradicts the configured emission
// mode or itself
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent document: %s", e.Message)
}

// NewConsistencyError creates a new consistency error
func NewConsistencyError(message string) *ConsistencyError {
	return &ConsistencyError{Message: message}
}
