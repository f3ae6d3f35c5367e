package services

import (
	"strings"
	"testing"

	"github.com/MonkyMars/gecho"
)

func newTestAuthService() *AuthService {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	return NewAuthService(nil, logger, nil)
}

func TestHashAndVerifyPassword(t *testing.T) {
	as := newTestAuthService()

	hash, err := as.HashPassword("correct horse battery staple", DefaultParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("hash has unexpected format: %q", hash)
	}

	ok, err := as.VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("correct password did not verify")
	}

	ok, err = as.VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword(wrong): %v", err)
	}
	if ok {
		t.Error("wrong password verified")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	as := newTestAuthService()

	h1, err := as.HashPassword("same password", DefaultParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := as.HashPassword("same password", DefaultParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt is not random")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	as := newTestAuthService()

	for _, bad := range []string{"", "plaintext", "$argon2id$v=19$m=65536$short"} {
		if _, err := as.VerifyPassword("anything", bad); err == nil {
			t.Errorf("VerifyPassword with hash %q: expected error", bad)
		}
	}
}
