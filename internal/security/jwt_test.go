package security

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

func TestJWTRoundTrip(t *testing.T) {
	provider := NewJWTProvider("secret")
	userID := common.NewUUID()

	token, expiresAt, err := provider.Generate(userID, "admin", time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != userID.String() {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestJWTRejectsTamperedPayload(t *testing.T) {
	provider := NewJWTProvider("secret")
	token, _, err := provider.Generate(common.NewUUID(), "applicant", time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	parts := strings.Split(token, ".")
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	var claims Claims
	_ = json.Unmarshal(payload, &claims)
	claims.Role = "admin"
	forged, _ := json.Marshal(claims)
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	if _, err := provider.Parse(strings.Join(parts, ".")); err == nil {
		t.Fatal("expected tampered token rejected")
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTProvider("secret-a").Generate(common.NewUUID(), "admin", time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := NewJWTProvider("secret-b").Parse(token); err == nil {
		t.Fatal("expected token rejected under a different secret")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	provider := NewJWTProvider("secret")
	token, _, err := provider.Generate(common.NewUUID(), "admin", -time.Second)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := provider.Parse(token); err == nil {
		t.Fatal("expected expired token rejected")
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	provider := NewJWTProvider("secret")
	for _, token := range []string{"", "a.b", "not a token at all"} {
		if _, err := provider.Parse(token); err == nil {
			t.Fatalf("expected %q rejected", token)
		}
	}
}
