package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testManager(t *testing.T) *JWTManager {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPem := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if err := os.WriteFile(privPath, privPem, 0o600); err != nil {
		t.Fatalf("write private key: %v", err)
	}

	pubDer, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pubPem := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDer})
	if err := os.WriteFile(pubPath, pubPem, 0o600); err != nil {
		t.Fatalf("write public key: %v", err)
	}

	mgr, err := NewJWTManager(privPath, pubPath, "agrisight-test")
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	return mgr
}

func TestGenerateAndVerifyTokenPair(t *testing.T) {
	mgr := testManager(t)

	pair, err := mgr.GenerateTokenPair("user-123", 15*time.Minute, 7*24*time.Hour, 1)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" || pair.JTI == "" {
		t.Fatalf("incomplete pair: %+v", pair)
	}
	if !pair.RefreshExp.After(pair.AccessExp) {
		t.Error("refresh token should outlive the access token")
	}

	claims, err := mgr.VerifyToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyToken(access): %v", err)
	}
	if claims["sub"] != "user-123" {
		t.Errorf("sub = %v, want user-123", claims["sub"])
	}
	if claims["typ"] != string(AccessToken) {
		t.Errorf("typ = %v, want access", claims["typ"])
	}
	if claims["iss"] != "agrisight-test" {
		t.Errorf("iss = %v", claims["iss"])
	}

	refreshClaims, err := mgr.VerifyToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("VerifyToken(refresh): %v", err)
	}
	if refreshClaims["typ"] != string(RefreshToken) {
		t.Errorf("typ = %v, want refresh", refreshClaims["typ"])
	}
	if refreshClaims["jti"] != pair.JTI {
		t.Errorf("pair JTI %q does not match refresh token jti %v", pair.JTI, refreshClaims["jti"])
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	mgr := testManager(t)

	pair, err := mgr.GenerateTokenPair("user-123", -time.Hour, -time.Hour, 1)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := mgr.VerifyToken(pair.AccessToken); err == nil {
		t.Error("expired token verified")
	}
}

func TestVerifyTokenRejectsForeignSignature(t *testing.T) {
	mgr := testManager(t)
	other := testManager(t)

	pair, err := other.GenerateTokenPair("user-123", time.Minute, time.Hour, 1)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := mgr.VerifyToken(pair.AccessToken); err == nil {
		t.Error("token signed with a different key verified")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	mgr := testManager(t)
	if _, err := mgr.VerifyToken("not.a.token"); err == nil {
		t.Error("garbage token verified")
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("token-a")
	b := HashToken("token-b")
	if a == b {
		t.Error("distinct tokens hashed identically")
	}
	if a != HashToken("token-a") {
		t.Error("hash not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
