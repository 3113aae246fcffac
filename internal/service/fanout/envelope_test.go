package fanout

import (
	"testing"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

func TestBuildEnvelope(t *testing.T) {
	event := domain.ServiceRequestEvent{
		RequestID:        "r1",
		ServiceType:      "plumbing",
		Location:         "Downtown",
		Description:      "leak under sink",
		OriginatorUserID: "u1",
	}
	presentation := Presentation{Icon: "/icon.png", Badge: "/badge.png", Link: "/requests"}

	env := BuildEnvelope(event, domain.DeliveryToken{UserID: "u2", Token: "t1"}, presentation)

	if env.Token != "t1" {
		t.Errorf("token: got %q", env.Token)
	}
	if env.Title != "🔔 New Service Request" {
		t.Errorf("title: got %q", env.Title)
	}
	if env.Body != "plumbing needed in Downtown" {
		t.Errorf("body: got %q", env.Body)
	}

	wantData := map[string]string{
		"requestId":   "r1",
		"serviceType": "plumbing",
		"location":    "Downtown",
		"description": "leak under sink",
		"type":        "new_request",
	}
	if len(env.Data) != len(wantData) {
		t.Errorf("data: got %v, want %v", env.Data, wantData)
	}
	for k, v := range wantData {
		if env.Data[k] != v {
			t.Errorf("data[%s]: got %q, want %q", k, env.Data[k], v)
		}
	}
	if _, ok := env.Data["userId"]; ok {
		t.Error("originator must not leak into the payload")
	}

	if env.Webpush == nil {
		t.Fatal("expected webpush options")
	}
	if env.Webpush.Icon != "/icon.png" || env.Webpush.Badge != "/badge.png" || env.Webpush.Link != "/requests" {
		t.Errorf("webpush: got %+v", env.Webpush)
	}
}
