package credential

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenURI = "https://oauth2.googleapis.com/token"

var (
	ErrInvalidServiceAccount = errors.New("invalid service account")
	ErrInvalidPrivateKey     = errors.New("invalid service account private key")
)

// ServiceAccount is the subset of a Firebase service-account key file the exchanger needs.
type ServiceAccount struct {
	ProjectID    string `json:"project_id"`
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

func ParseServiceAccount(raw []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServiceAccount, err)
	}

	var missing []error
	if sa.ProjectID == "" {
		missing = append(missing, errors.New("project_id is required"))
	}
	if sa.ClientEmail == "" {
		missing = append(missing, errors.New("client_email is required"))
	}
	if sa.PrivateKey == "" {
		missing = append(missing, errors.New("private_key is required"))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServiceAccount, errors.Join(missing...))
	}

	if sa.TokenURI == "" {
		sa.TokenURI = defaultTokenURI
	}

	// Rejected here so a bad key fails at startup rather than on the first exchange.
	if _, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	return &sa, nil
}
