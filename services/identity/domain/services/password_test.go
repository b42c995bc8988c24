package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt.MinCost keeps these tests fast; production uses cost 10.
const testCost = bcrypt.MinCost

func TestHashPassword(t *testing.T) {
	t.Run("hashes a valid password", func(t *testing.T) {
		hash, err := HashPassword("secret123", testCost)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "" || hash == "secret123" {
			t.Fatal("expected non-empty hash distinct from the password")
		}
	})

	t.Run("rejects short password", func(t *testing.T) {
		if _, err := HashPassword("12345", testCost); err == nil {
			t.Fatal("expected error for password shorter than minimum")
		}
	})

	t.Run("accepts password at minimum length", func(t *testing.T) {
		if _, err := HashPassword(strings.Repeat("a", MinPasswordLength), testCost); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("equal passwords yield distinct hashes", func(t *testing.T) {
		h1, _ := HashPassword("secret123", testCost)
		h2, _ := HashPassword("secret123", testCost)
		if h1 == h2 {
			t.Fatal("expected distinct hashes for equal passwords")
		}
	})
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123", testCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	t.Run("matches the original password", func(t *testing.T) {
		if !ComparePassword("secret123", hash) {
			t.Fatal("expected password to match its hash")
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		if ComparePassword("wrong-password", hash) {
			t.Fatal("expected mismatch for wrong password")
		}
	})

	t.Run("rejects a garbage hash", func(t *testing.T) {
		if ComparePassword("secret123", "not-a-bcrypt-hash") {
			t.Fatal("expected mismatch for invalid hash")
		}
	})
}
