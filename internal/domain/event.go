package domain

import (
	"fmt"
	"strings"
)

// ServiceRequestEvent describes a newly created service request. It is consumed once per fanout run.
// Description is free text and may be empty.
type ServiceRequestEvent struct {
	RequestID        string
	ServiceType      string
	Location         string
	Description      string
	OriginatorUserID string
}

func (e ServiceRequestEvent) Validate() error {
	var missing []string

	if strings.TrimSpace(e.RequestID) == "" {
		missing = append(missing, "requestId")
	}
	if strings.TrimSpace(e.ServiceType) == "" {
		missing = append(missing, "serviceType")
	}
	if strings.TrimSpace(e.Location) == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(e.OriginatorUserID) == "" {
		missing = append(missing, "userId")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidEvent, strings.Join(missing, ", "))
	}

	return nil
}

type Provider struct {
	UserID       string
	DisplayName  string
	ServiceTypes []string
}

// DeliveryToken is a device push address owned by a user. One user may own several.
type DeliveryToken struct {
	UserID string
	Token  string
}

func ProviderIDs(providers []Provider) []string {
	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.UserID)
	}
	return ids
}
