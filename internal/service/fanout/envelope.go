package fanout

import (
	"fmt"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/pushsender"
)

const (
	NotificationTitle = "🔔 New Service Request"
	NotificationType  = "new_request"
)

// Presentation carries the client-side hints attached to every web push.
type Presentation struct {
	Icon  string
	Badge string
	Link  string
}

func BuildEnvelope(event domain.ServiceRequestEvent, token domain.DeliveryToken, presentation Presentation) pushsender.Envelope {
	return pushsender.Envelope{
		Token: token.Token,
		Title: NotificationTitle,
		Body:  fmt.Sprintf("%s needed in %s", event.ServiceType, event.Location),
		Data: map[string]string{
			"requestId":   event.RequestID,
			"serviceType": event.ServiceType,
			"location":    event.Location,
			"description": event.Description,
			"type":        NotificationType,
		},
		Webpush: &pushsender.WebpushOptions{
			Icon:  presentation.Icon,
			Badge: presentation.Badge,
			Link:  presentation.Link,
		},
	}
}
