package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventPortfolioViewed EventType = "portfolio.viewed"
	EventAIChat          EventType = "ai.chat"
	EventAISearch        EventType = "ai.search"
)

type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	Resource   string    `json:"resource"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(t EventType, resource, requestID string) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		Resource:   resource,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	}
}

// CounterKey is where the worker accumulates hits for this event.
func (e Event) CounterKey() string {
	return fmt.Sprintf("analytics:%s:%s", e.Type, e.Resource)
}

type CounterRepository interface {
	Increment(ctx context.Context, key string) (int64, error)
}
