package pushsender

import "context"

//go:generate mockgen -source=sender.go -destination=sender_mock.go -package=pushsender

// Envelope is one push message addressed to one device token.
type Envelope struct {
	Token   string
	Title   string
	Body    string
	Data    map[string]string
	Webpush *WebpushOptions
}

type WebpushOptions struct {
	Icon  string
	Badge string
	Link  string
}

type Sender interface {
	Send(ctx context.Context, accessToken string, envelope Envelope) error
}
