package auth

import (
	"errors"
	"testing"
)

func TestCheck_NoSecretAlwaysAllows(t *testing.T) {
	g := NewGuard("")
	headers := []string{"", "Bearer whatever", "Basic abc", "garbage"}
	for _, h := range headers {
		if err := g.Check(h); err != nil {
			t.Errorf("Check(%q) with no secret = %v, want nil", h, err)
		}
	}
}

func TestCheck_WithSecret(t *testing.T) {
	g := NewGuard("abc123")

	cases := []struct {
		name   string
		header string
		wantOK bool
	}{
		{"exact match", "Bearer abc123", true},
		{"trailing whitespace trimmed", "Bearer abc123  ", true},
		{"missing header", "", false},
		{"wrong token", "Bearer wrong", false},
		{"wrong scheme", "Basic abc123", false},
		{"lowercase scheme", "bearer abc123", false},
		{"token only", "abc123", false},
		{"secret as substring", "Bearer abc1234", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := g.Check(c.header)
			if c.wantOK && err != nil {
				t.Fatalf("Check(%q) = %v, want nil", c.header, err)
			}
			if !c.wantOK {
				if err == nil {
					t.Fatalf("Check(%q) = nil, want UnauthorizedError", c.header)
				}
				var unauthorized UnauthorizedError
				if !errors.As(err, &unauthorized) {
					t.Fatalf("Check(%q) = %T, want UnauthorizedError", c.header, err)
				}
				if unauthorized.Reason == "" {
					t.Error("UnauthorizedError has empty reason")
				}
			}
		})
	}
}

func TestCheck_EmptyTokenAfterPrefix(t *testing.T) {
	g := NewGuard("abc123")
	if err := g.Check("Bearer "); err == nil {
		t.Error("empty bearer token accepted")
	}
	if err := g.Check("Bearer    "); err == nil {
		t.Error("whitespace-only bearer token accepted")
	}
}
