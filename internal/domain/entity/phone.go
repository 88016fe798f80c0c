// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
)

// CountryCallingPrefix is prepended to verified local numbers to form the
// canonical E.164 representation stored on customers and orders.
const CountryCallingPrefix = "+91"

// mobilePattern matches a 10-digit Indian mobile number. The first digit of
// a mobile subscriber number is always 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// IsValidMobile reports whether digits is a well-formed 10-digit mobile number.
func IsValidMobile(digits string) bool {
	return mobilePattern.MatchString(digits)
}

// CanonicalPhone converts validated local digits to the E.164 form.
// The input must already satisfy IsValidMobile.
func CanonicalPhone(digits string) string {
	return CountryCallingPrefix + digits
}

// LocalDigits strips the country prefix from a canonical phone number,
// returning the 10 local digits. Unprefixed input is returned unchanged.
func LocalDigits(phone string) string {
	return strings.TrimPrefix(phone, CountryCallingPrefix)
}
