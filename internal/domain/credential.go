package domain

import "time"

// AccessCredential is a short-lived bearer token for the push provider.
type AccessCredential struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

func (c *AccessCredential) Valid(now time.Time) bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	return c.ExpiresAt.IsZero() || now.Before(c.ExpiresAt)
}

// TTL returns how long the credential stays usable after subtracting skew.
func (c *AccessCredential) TTL(now time.Time, skew time.Duration) time.Duration {
	if c == nil || c.ExpiresAt.IsZero() {
		return 0
	}
	ttl := c.ExpiresAt.Sub(now) - skew
	if ttl < 0 {
		return 0
	}
	return ttl
}
