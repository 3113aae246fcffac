package taskqueue

import (
	"time"

	fanoutv1 "github.com/KasumiMercury/primind-push-fanout/internal/gen/fanout/v1"
	pjson "github.com/KasumiMercury/primind-push-fanout/internal/proto"
)

// RedriveTask carries the deliveries of one fanout run that should be attempted again.
type RedriveTask struct {
	RunID      string    `json:"runId"`
	ScheduleAt time.Time `json:"-"`

	Event  RedriveEvent   `json:"event"`
	Tokens []RedriveToken `json:"tokens"`
}

// Payload encodes the task as the body the redrive endpoint decodes.
func (t *RedriveTask) Payload() ([]byte, error) {
	tokens := make([]*fanoutv1.RedriveToken, 0, len(t.Tokens))
	for _, tok := range t.Tokens {
		tokens = append(tokens, &fanoutv1.RedriveToken{UserId: tok.UserID, Token: tok.Token})
	}

	return pjson.Marshal(&fanoutv1.RedriveRequest{
		RunId: t.RunID,
		Event: &fanoutv1.ServiceRequest{
			RequestId:   t.Event.RequestID,
			ServiceType: t.Event.ServiceType,
			Location:    t.Event.Location,
			Description: t.Event.Description,
			UserId:      t.Event.UserID,
		},
		Tokens: tokens,
	})
}

type RedriveEvent struct {
	RequestID   string `json:"requestId"`
	ServiceType string `json:"serviceType"`
	Location    string `json:"location"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

type RedriveToken struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
