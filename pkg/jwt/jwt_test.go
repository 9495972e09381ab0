package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/yash113gadia/AttendEase-Web/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing",
		TokenTTL:  8 * time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken("teacher1", "TEACHER")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.Username != "teacher1" {
		t.Errorf("expected Username=teacher1, got %s", claims.Username)
	}
	if claims.Role != "TEACHER" {
		t.Errorf("expected Role=TEACHER, got %s", claims.Role)
	}
	if claims.Subject != "teacher1" {
		t.Errorf("expected Subject=teacher1, got %s", claims.Subject)
	}
	if claims.Issuer != "attendease" {
		t.Errorf("expected Issuer=attendease, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI should not be empty")
	}
}

func TestParseToken_ExpiryWindow(t *testing.T) {
	m := newTestManager()
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	m.now = func() time.Time { return t0 }
	token, err := m.GenerateToken("teacher1", "TEACHER")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// Just after issuance the token must validate.
	m.now = func() time.Time { return t0.Add(1 * time.Second) }
	if _, err := m.ParseToken(token); err != nil {
		t.Fatalf("token should be valid at t0+1s: %v", err)
	}

	// Just past its TTL it must fail with the expiry error.
	m.now = func() time.Time { return t0.Add(m.ttl + 1*time.Second) }
	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired at t0+TTL+1s, got %v", err)
	}
}

func TestParseToken_TamperedPayload(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken("teacher1", "TEACHER")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// Flip one byte of the payload segment; the MAC must reject it.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[10] != 'A' {
		payload[10] = 'A'
	} else {
		payload[10] = 'B'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := m.ParseToken(tampered); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for tampered payload, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	token, err := m.GenerateToken("admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := NewManager(&config.AuthConfig{
		JWTSecret: "a-completely-different-secret",
		TokenTTL:  8 * time.Hour,
	})
	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid with wrong secret, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	m := newTestManager()
	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := m.ParseToken(tok); err != ErrTokenInvalid {
			t.Errorf("ParseToken(%q): expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}
