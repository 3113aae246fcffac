package config

import (
	"os"
)

const (
	firebaseServiceAccountEnv = "FIREBASE_SERVICE_ACCOUNT"
	fcmEndpointEnv            = "FCM_ENDPOINT"
	pushClickLinkEnv          = "PUSH_CLICK_LINK"
	pushIconEnv               = "PUSH_ICON"
	pushBadgeEnv              = "PUSH_BADGE"

	defaultFCMEndpoint   = "https://fcm.googleapis.com/"
	defaultPushClickLink = "/"
	defaultPushIcon      = "/icon-192x192.png"
)

type FirebaseConfig struct {
	// ServiceAccountJSON is parsed by the credential package so the key material stays in one place.
	ServiceAccountJSON string
	FCMEndpoint        string
	ClickLink          string
	Icon               string
	Badge              string
}

func LoadFirebaseConfig() (*FirebaseConfig, error) {
	return &FirebaseConfig{
		ServiceAccountJSON: os.Getenv(firebaseServiceAccountEnv),
		FCMEndpoint:        getEnvOrDefault(fcmEndpointEnv, defaultFCMEndpoint),
		ClickLink:          getEnvOrDefault(pushClickLinkEnv, defaultPushClickLink),
		Icon:               getEnvOrDefault(pushIconEnv, defaultPushIcon),
		Badge:              getEnvOrDefault(pushBadgeEnv, defaultPushIcon),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
