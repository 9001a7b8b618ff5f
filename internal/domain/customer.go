package domain

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCustomerName = errors.New("customer name must be 2-50 letters, spaces, hyphens or apostrophes")

var customerNamePattern = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

// ValidateCustomerName trims the name and checks it against the checkout
// form rules. Returns the trimmed name on success.
func ValidateCustomerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 50 {
		return "", ErrInvalidCustomerName
	}
	if !customerNamePattern.MatchString(name) {
		return "", ErrInvalidCustomerName
	}
	return name, nil
}
