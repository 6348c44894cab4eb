package zxcvbn

import "testing"

func TestNISTConfigIsValid(t *testing.T) {
	if err := NISTConfig().Validate(); err != nil {
		t.Fatalf("NISTConfig() should be valid: %v", err)
	}
}
