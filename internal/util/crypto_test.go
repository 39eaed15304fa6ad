package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.Contains(hashed, "$") {
		t.Error("hash format wrong, expected salt$hash")
	}

	if _, err = HashPassword(""); err == nil {
		t.Error("empty password should return an error")
	}

	// same password must produce different hashes (random salt)
	hashed2, _ := HashPassword(password)
	if hashed == hashed2 {
		t.Error("same password produced identical hashes")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password)

	if !CheckPassword(password, hashed) {
		t.Error("correct password failed verification")
	}

	if CheckPassword("WrongPass", hashed) {
		t.Error("wrong password passed verification")
	}

	if CheckPassword("", hashed) {
		t.Error("empty password passed verification")
	}
	if CheckPassword(password, "") {
		t.Error("empty hash passed verification")
	}

	if CheckPassword(password, "invalid-format") {
		t.Error("invalid hash format passed verification")
	}
}

func TestRandomString(t *testing.T) {
	s, err := RandomString(32)
	if err != nil {
		t.Fatalf("RandomString: %v", err)
	}
	if len(s) != 32 {
		t.Errorf("len = %d, want 32", len(s))
	}

	s2, _ := RandomString(32)
	if s == s2 {
		t.Error("two random strings are identical")
	}

	if _, err := RandomString(0); err == nil {
		t.Error("RandomString(0) error = nil, want error")
	}
}
