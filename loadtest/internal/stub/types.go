package stub

type ProfileRow struct {
	UserID      string   `json:"user_id"`
	FullName    *string  `json:"full_name"`
	ProfileType string   `json:"profile_type"`
	ServiceType []string `json:"service_type"`
}

type TokenRow struct {
	UserID   string `json:"user_id"`
	FCMToken string `json:"fcm_token"`
}

type SeedRequest struct {
	Profiles []SeedProfile `json:"profiles"`
	Tokens   []TokenRow    `json:"tokens"`
	// FailTokens are rejected by the send endpoint with an UNREGISTERED error.
	FailTokens []string `json:"fail_tokens,omitempty"`
}

type SeedProfile struct {
	UserID       string   `json:"user_id"`
	FullName     string   `json:"full_name,omitempty"`
	ProfileType  string   `json:"profile_type,omitempty"`
	ServiceTypes []string `json:"service_types"`
}

type StatsResponse struct {
	TokenRequests int      `json:"token_requests"`
	Sends         int      `json:"sends"`
	Rejected      int      `json:"rejected"`
	SentTokens    []string `json:"sent_tokens"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type sendRequest struct {
	Message struct {
		Token string `json:"token"`
	} `json:"message"`
}
