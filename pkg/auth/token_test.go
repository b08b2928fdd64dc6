package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/mak-alamin/bestools-server/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "test-secret",
		Issuer:          "bestools",
		ExpirationHours: 24,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, "buyer@example.com")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected compact JWT, got %q", token)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "buyer@example.com" {
		t.Fatalf("unexpected email claim: %q", claims.Email)
	}

	wantExpiry := now.Add(24 * time.Hour)
	if got := claims.ExpiresAt.Time; got.Unix() != wantExpiry.Unix() {
		t.Fatalf("expected expiry %v, got %v", wantExpiry, got)
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAccessToken(cfg, time.Now().UTC().Add(-48*time.Hour), "buyer@example.com")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAccessToken(cfg, time.Now().UTC(), "buyer@example.com")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Secret = "a-different-secret"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected bad signature to be rejected")
	}
}

func TestParseAccessTokenWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()

	minted := cfg
	minted.Issuer = "someone-else"
	token, err := MintAccessToken(minted, time.Now().UTC(), "buyer@example.com")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected wrong issuer to be rejected")
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	if _, err := ParseAccessToken(testJWTConfig(), "not-a-jwt"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func TestMintAccessTokenRequiresEmail(t *testing.T) {
	if _, err := MintAccessToken(testJWTConfig(), time.Now().UTC(), "  "); err == nil {
		t.Fatal("expected empty email to be rejected")
	}
}
