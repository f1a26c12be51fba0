package utils

import "regexp"

// Accepts Indian mobile numbers as dialed locally (10 digits starting 6-9)
// or in E.164 form with the +91 prefix.
var phoneRegex = regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`)

func ValidatePhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

var pinCodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ValidatePinCode checks the 6-digit Indian postal code format.
func ValidatePinCode(pin string) bool {
	return pinCodeRegex.MatchString(pin)
}
