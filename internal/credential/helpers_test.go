package credential

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"testing"
)

func newTestKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("failed to marshal key: %v", err)
	}

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func newTestServiceAccountJSON(t *testing.T, pemKey, tokenURI string) []byte {
	t.Helper()

	raw, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "demo-project",
		"client_email":   "fanout@demo-project.iam.gserviceaccount.com",
		"private_key":    pemKey,
		"private_key_id": "key-1",
		"token_uri":      tokenURI,
	})
	if err != nil {
		t.Fatalf("failed to marshal service account: %v", err)
	}
	return raw
}
