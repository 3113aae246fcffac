package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/tracing"
)

//go:generate mockgen -source=exchanger.go -destination=exchanger_mock.go -package=credential

const MessagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// Exchanger trades service-account identity for a push-provider access credential.
type Exchanger interface {
	Exchange(ctx context.Context) (*domain.AccessCredential, error)
}

// ServiceAccountExchanger runs the JWT bearer grant for a service account. The signed
// assertion lives for one hour, the library default.
type ServiceAccountExchanger struct {
	account    *ServiceAccount
	jwtConfig  *jwt.Config
	httpClient *http.Client
}

type ExchangerOption func(*ServiceAccountExchanger)

func WithHTTPClient(client *http.Client) ExchangerOption {
	return func(e *ServiceAccountExchanger) {
		e.httpClient = client
	}
}

func NewServiceAccountExchanger(account *ServiceAccount, opts ...ExchangerOption) *ServiceAccountExchanger {
	e := &ServiceAccountExchanger{
		account: account,
		jwtConfig: &jwt.Config{
			Email:        account.ClientEmail,
			PrivateKey:   []byte(account.PrivateKey),
			PrivateKeyID: account.PrivateKeyID,
			Scopes:       []string{MessagingScope},
			TokenURL:     account.TokenURI,
		},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *ServiceAccountExchanger) Account() *ServiceAccount {
	return e.account
}

func (e *ServiceAccountExchanger) Exchange(ctx context.Context) (*domain.AccessCredential, error) {
	ctx, span := tracing.StartCredentialExchangeSpan(ctx, e.account.TokenURI)
	defer span.End()

	// The grant posts without a request context, so the client carries it instead.
	client := &http.Client{
		Transport: &contextTransport{ctx: ctx, base: e.transport()},
		Timeout:   e.httpClient.Timeout,
	}
	tok, err := e.jwtConfig.TokenSource(context.WithValue(ctx, oauth2.HTTPClient, client)).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			slog.WarnContext(ctx, "credential exchange rejected",
				slog.String("token_uri", e.account.TokenURI),
				slog.Int("status_code", retrieveErr.Response.StatusCode),
			)
		} else {
			slog.WarnContext(ctx, "credential exchange request failed",
				slog.String("token_uri", e.account.TokenURI),
				slog.String("error", err.Error()),
			)
		}
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCredentialExchange, err)
	}

	if tok.AccessToken == "" {
		err := fmt.Errorf("%w: response has no access_token", domain.ErrCredentialExchange)
		tracing.RecordError(span, err)
		return nil, err
	}

	return &domain.AccessCredential{
		AccessToken: tok.AccessToken,
		TokenType:   tok.Type(),
		ExpiresAt:   tok.Expiry,
	}, nil
}

func (e *ServiceAccountExchanger) transport() http.RoundTripper {
	if e.httpClient.Transport != nil {
		return e.httpClient.Transport
	}
	return http.DefaultTransport
}

type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}
