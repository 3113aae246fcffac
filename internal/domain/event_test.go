package domain

import (
	"errors"
	"testing"
	"time"
)

func TestServiceRequestEventValidate(t *testing.T) {
	valid := ServiceRequestEvent{
		RequestID:        "r1",
		ServiceType:      "plumbing",
		Location:         "Downtown",
		Description:      "leak",
		OriginatorUserID: "u1",
	}

	tests := []struct {
		name    string
		mutate  func(e *ServiceRequestEvent)
		wantErr bool
	}{
		{name: "valid event", mutate: func(e *ServiceRequestEvent) {}},
		{name: "missing request id", mutate: func(e *ServiceRequestEvent) { e.RequestID = "" }, wantErr: true},
		{name: "blank service type", mutate: func(e *ServiceRequestEvent) { e.ServiceType = "   " }, wantErr: true},
		{name: "missing location", mutate: func(e *ServiceRequestEvent) { e.Location = "" }, wantErr: true},
		{name: "empty description", mutate: func(e *ServiceRequestEvent) { e.Description = "" }},
		{name: "missing originator", mutate: func(e *ServiceRequestEvent) { e.OriginatorUserID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)

			err := e.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEvent) {
					t.Errorf("expected ErrInvalidEvent, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccessCredentialTTL(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	cred := &AccessCredential{AccessToken: "tok", ExpiresAt: now.Add(time.Hour)}
	if !cred.Valid(now) {
		t.Error("expected credential to be valid")
	}
	if got := cred.TTL(now, time.Minute); got != 59*time.Minute {
		t.Errorf("TTL: got %v, want %v", got, 59*time.Minute)
	}

	expired := &AccessCredential{AccessToken: "tok", ExpiresAt: now.Add(-time.Second)}
	if expired.Valid(now) {
		t.Error("expected expired credential to be invalid")
	}
	if got := expired.TTL(now, time.Minute); got != 0 {
		t.Errorf("TTL: got %v, want 0", got)
	}

	var missing *AccessCredential
	if missing.Valid(now) {
		t.Error("expected nil credential to be invalid")
	}
}
