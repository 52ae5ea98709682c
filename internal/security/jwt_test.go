package security_test

import (
	"testing"
	"time"

	"github.com/tazhibayda/tour-service/internal/security"
)

func TestIssueParseRoundTrip(t *testing.T) {
	tok, err := security.IssueToken("s3cret", map[string]any{"email": "u@example.com", "name": "U"}, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	c, err := security.ParseToken("s3cret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Email != "u@example.com" {
		t.Fatalf("email claim mismatch: %q", c.Email)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := security.IssueToken("s3cret", map[string]any{"email": "u@example.com"}, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := security.ParseToken("other", tok); err == nil {
		t.Fatal("token signed with a different secret must not verify")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tok, err := security.IssueToken("s3cret", map[string]any{"email": "u@example.com"}, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := security.ParseToken("s3cret", tok); err == nil {
		t.Fatal("expired token must not verify")
	}
}
