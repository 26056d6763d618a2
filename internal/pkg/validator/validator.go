package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// dateLayouts covers the API's ISO dates and the MM/DD/YYYY layout the
// time-clock workbook exports use.
var dateLayouts = []string{"2006-01-02", "01/02/2006"}

// ParseDate parses a date string, accepting YYYY-MM-DD or MM/DD/YYYY.
func ParseDate(dateStr string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(dateStr))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// IsValidDate reports whether the string parses as a supported date.
func IsValidDate(dateStr string) (time.Time, bool) {
	t, err := ParseDate(dateStr)
	return t, err == nil
}

var monthNames = map[string]time.Month{
	"JANUARY":   time.January,
	"FEBRUARY":  time.February,
	"MARCH":     time.March,
	"APRIL":     time.April,
	"MAY":       time.May,
	"JUNE":      time.June,
	"JULY":      time.July,
	"AUGUST":    time.August,
	"SEPTEMBER": time.September,
	"OCTOBER":   time.October,
	"NOVEMBER":  time.November,
	"DECEMBER":  time.December,
}

// ParseMonth resolves a case-insensitive English month name.
func ParseMonth(name string) (time.Month, bool) {
	month, ok := monthNames[strings.ToUpper(strings.TrimSpace(name))]
	return month, ok
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
