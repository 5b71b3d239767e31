package config

import (
	"errors"
	"time"
)

// DateLayout is the MM-DD-YYYY format the cutoff date is entered in.
const DateLayout = "01-02-2006"

var (
	ErrEmptyValue  = errors.New("please enter a value")
	ErrInvalidDate = errors.New("please enter a valid date (MM-DD-YYYY)")
)

// ValidateRequired rejects empty input.
func ValidateRequired(s string) error {
	if s == "" {
		return ErrEmptyValue
	}
	return nil
}

// ValidateDate accepts only a real calendar date written exactly as
// MM-DD-YYYY.
func ValidateDate(s string) error {
	_, err := ParseDate(s, time.UTC)
	return err
}

// ParseDate parses a MM-DD-YYYY date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
