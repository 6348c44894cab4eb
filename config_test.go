package zxcvbn

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() should be valid: %v", err)
	}
}

func TestValidateRejectsZeroMaxLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPasswordLength = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error")
	}
}

func TestDisabledReportsConfiguredNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisabledDictionaries = []string{"Surnames"}
	if !cfg.disabled("Surnames") {
		t.Fatal("Surnames should be disabled")
	}
	if cfg.disabled("Passwords") {
		t.Fatal("Passwords should not be disabled")
	}
}
