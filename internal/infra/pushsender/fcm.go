package pushsender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/tracing"
)

const defaultEndpoint = "https://fcm.googleapis.com/"

type webpushNotification struct {
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
}

// FCMSender delivers envelopes through the FCM HTTP v1 API. Bearer tokens are supplied per call.
type FCMSender struct {
	service   *fcm.Service
	projectID string
	endpoint  string
}

func NewFCMSender(ctx context.Context, projectID, endpoint string, httpClient *http.Client) (*FCMSender, error) {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	svc, err := fcm.NewService(ctx,
		option.WithHTTPClient(httpClient),
		option.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm service: %w", err)
	}

	return &FCMSender{
		service:   svc,
		projectID: projectID,
		endpoint:  endpoint,
	}, nil
}

func (s *FCMSender) Send(ctx context.Context, accessToken string, envelope Envelope) error {
	ctx, span := tracing.StartExternalAPISpan(ctx, "fcm.send", s.endpoint)
	defer span.End()

	msg, err := toMessage(envelope)
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}

	call := s.service.Projects.Messages.Send("projects/"+s.projectID, &fcm.SendMessageRequest{
		Message: msg,
	})
	call.Header().Set("Authorization", "Bearer "+accessToken)

	if _, err := call.Context(ctx).Do(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			slog.DebugContext(ctx, "fcm rejected message",
				slog.Int("status_code", apiErr.Code),
				slog.String("message", apiErr.Message),
			)
		}
		tracing.RecordError(span, err)
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	return nil
}

func toMessage(envelope Envelope) (*fcm.Message, error) {
	msg := &fcm.Message{
		Token: envelope.Token,
		Notification: &fcm.Notification{
			Title: envelope.Title,
			Body:  envelope.Body,
		},
		Data: envelope.Data,
	}

	if envelope.Webpush != nil {
		raw, err := json.Marshal(webpushNotification{
			Icon:  envelope.Webpush.Icon,
			Badge: envelope.Webpush.Badge,
		})
		if err != nil {
			return nil, err
		}

		msg.Webpush = &fcm.WebpushConfig{
			Notification: googleapi.RawMessage(raw),
		}
		if envelope.Webpush.Link != "" {
			msg.Webpush.FcmOptions = &fcm.WebpushFcmOptions{
				Link: envelope.Webpush.Link,
			}
		}
	}

	return msg, nil
}
