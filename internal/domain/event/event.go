package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeApplicationCreated       = "application_created"
	TypeApplicationStatusChanged = "application_status_changed"
	TypeInterviewScheduled       = "interview_scheduled"
)

// Event is a realtime notification addressed to a single topic.
type Event struct {
	Type      string    `json:"type"`
	Topic     string    `json:"topic"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher delivers events best effort. Failures never affect the caller.
type Publisher interface {
	Publish(ctx context.Context, evt Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

func UserTopic(userID uuid.UUID) string {
	return "user:" + userID.String()
}

func CompanyTopic(companyID uuid.UUID) string {
	return "company:" + companyID.String()
}
