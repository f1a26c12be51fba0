package utils

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"+919876543210", "9876543210", "6000000000"}
	for _, p := range valid {
		if !ValidatePhoneNumber(p) {
			t.Errorf("Expected %q to be a valid phone number", p)
		}
	}

	invalid := []string{"", "12345", "5876543210", "+1 415 555 2671", "98765432101", "+9198765432"}
	for _, p := range invalid {
		if ValidatePhoneNumber(p) {
			t.Errorf("Expected %q to be rejected", p)
		}
	}
}

func TestValidatePinCode(t *testing.T) {
	valid := []string{"501503", "110001", "999999"}
	for _, p := range valid {
		if !ValidatePinCode(p) {
			t.Errorf("Expected %q to be a valid PIN code", p)
		}
	}

	invalid := []string{"", "012345", "50150", "5015033", "50150a"}
	for _, p := range invalid {
		if ValidatePinCode(p) {
			t.Errorf("Expected %q to be rejected", p)
		}
	}
}

func TestRandomNumericString(t *testing.T) {
	s := RandomNumericString(6)
	if len(s) != 6 {
		t.Fatalf("Expected 6 characters, got %d", len(s))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Fatalf("Expected only digits, got %q", s)
		}
	}
}
