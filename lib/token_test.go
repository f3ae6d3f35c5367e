package lib

import (
	"testing"

	"github.com/google/uuid"
)

func TestSignAndParseSessionToken(t *testing.T) {
	sid := uuid.NewString()

	token, err := SignSessionID(sid, "secret")
	if err != nil {
		t.Fatalf("SignSessionID: %v", err)
	}

	got, err := ParseSessionToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if got != sid {
		t.Errorf("session id = %q, want %q", got, sid)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := SignSessionID(uuid.NewString(), "secret")
	if err != nil {
		t.Fatalf("SignSessionID: %v", err)
	}

	if _, err := ParseSessionToken(token, "other-secret"); err == nil {
		t.Fatal("token signed with a different secret parsed successfully")
	}
}

func TestParseSessionTokenGarbage(t *testing.T) {
	for _, bad := range []string{"", "abc", "a.b.c"} {
		if _, err := ParseSessionToken(bad, "secret"); err == nil {
			t.Errorf("ParseSessionToken(%q): expected error", bad)
		}
	}
}

func TestParseSessionTokenNonUUIDSID(t *testing.T) {
	// A validly signed token whose sid is not a UUID must still be rejected.
	token, err := SignSessionID("not-a-uuid", "secret")
	if err != nil {
		t.Fatalf("SignSessionID: %v", err)
	}

	if _, err := ParseSessionToken(token, "secret"); err == nil {
		t.Fatal("non-UUID session id accepted")
	}
}
