// Package authtest generates throwaway signing keys for tests.
package authtest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
)

// GenerateKey returns a fresh RSA key and its PKCS#8 PEM encoding.
func GenerateKey(t testing.TB) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal pkcs8: %v", err)
	}
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

// Escape renders a PEM key the way it is stored in a one-line env var.
func Escape(pemText string) string {
	return strings.ReplaceAll(pemText, "\n", `\n`)
}
