package config

import (
	"os"
	"strconv"
	"time"
)

const (
	credentialStrategyEnv  = "CREDENTIAL_STRATEGY"
	dispatchConcurrencyEnv = "DISPATCH_CONCURRENCY"
	storeTimeoutEnv        = "STORE_TIMEOUT_SECONDS"
	sendTimeoutEnv         = "SEND_TIMEOUT_SECONDS"

	defaultCredentialStrategy  = CredentialStrategyPerInvocation
	defaultDispatchConcurrency = 1
	defaultStoreTimeout        = 10 * time.Second
	defaultSendTimeout         = 10 * time.Second
)

type CredentialStrategy string

const (
	CredentialStrategyPerDelivery   CredentialStrategy = "per_delivery"
	CredentialStrategyPerInvocation CredentialStrategy = "per_invocation"
	CredentialStrategyShared        CredentialStrategy = "shared"
)

type FanoutConfig struct {
	CredentialStrategy  CredentialStrategy
	DispatchConcurrency int
	StoreTimeout        time.Duration
	SendTimeout         time.Duration
}

func LoadFanoutConfig() *FanoutConfig {
	strategy := CredentialStrategy(os.Getenv(credentialStrategyEnv))
	if strategy == "" {
		strategy = defaultCredentialStrategy
	}

	validStrategies := map[CredentialStrategy]bool{
		CredentialStrategyPerDelivery:   true,
		CredentialStrategyPerInvocation: true,
		CredentialStrategyShared:        true,
	}
	if !validStrategies[strategy] {
		strategy = defaultCredentialStrategy
	}

	concurrency := defaultDispatchConcurrency
	if v := os.Getenv(dispatchConcurrencyEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			concurrency = parsed
		}
	}

	return &FanoutConfig{
		CredentialStrategy:  strategy,
		DispatchConcurrency: concurrency,
		StoreTimeout:        parseSeconds(os.Getenv(storeTimeoutEnv), defaultStoreTimeout),
		SendTimeout:         parseSeconds(os.Getenv(sendTimeoutEnv), defaultSendTimeout),
	}
}

func parseSeconds(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return time.Duration(parsed) * time.Second
}
