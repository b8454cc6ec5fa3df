package geo

import (
	"fmt"
	"math"
)

// CoordinateError describes a rejected coordinate value.
type CoordinateError struct {
	Field   string
	Value   float64
	Message string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s (value: %.6f)", e.Field, e.Message, e.Value)
}

func ValidateLatitude(lat float64, field string) error {
	return validateRange(lat, -90, 90, field)
}

func ValidateLongitude(lng float64, field string) error {
	return validateRange(lng, -180, 180, field)
}

// ValidateCoordinatePair checks a (lat, lng) pair; fields are named prefix+"lat"/"lng".
func ValidateCoordinatePair(lat, lng float64, prefix string) error {
	if err := ValidateLatitude(lat, prefix+"lat"); err != nil {
		return err
	}
	return ValidateLongitude(lng, prefix+"lng")
}

func validateRange(v, min, max float64, field string) error {
	if math.IsNaN(v) {
		return &CoordinateError{Field: field, Value: v, Message: "NaN not allowed"}
	}
	if math.IsInf(v, 0) {
		return &CoordinateError{Field: field, Value: v, Message: "infinite value not allowed"}
	}
	if v < min || v > max {
		return &CoordinateError{Field: field, Value: v, Message: fmt.Sprintf("must be between %g and %g", min, max)}
	}
	return nil
}
