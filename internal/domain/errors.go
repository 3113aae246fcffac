package domain

import "errors"

var (
	ErrInvalidEvent       = errors.New("invalid service request event")
	ErrDataStore          = errors.New("data store error")
	ErrCredentialExchange = errors.New("credential exchange failed")
	ErrDelivery           = errors.New("delivery failed")
	ErrCredentialNotFound = errors.New("credential not found")
)
