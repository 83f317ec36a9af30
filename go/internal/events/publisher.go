package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Publisher delivers change events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NATSPublisher publishes events to NATS core subjects
type NATSPublisher struct {
	conn          *nats.Conn
	subjectPrefix string
}

// NewNATSPublisher creates a publisher on an open NATS connection
func NewNATSPublisher(conn *nats.Conn, subjectPrefix string) *NATSPublisher {
	return &NATSPublisher{
		conn:          conn,
		subjectPrefix: subjectPrefix,
	}
}

// Subject returns the subject an event is published on, e.g. soccer.player.created
func (p *NATSPublisher) Subject(event Event) string {
	return Subject(p.subjectPrefix, event)
}

func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.conn.Publish(p.Subject(event), data); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.ID, err)
	}
	return nil
}

// Connect dials NATS the way the command wiring expects
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("soccer-service"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, event Event) error {
	log.Debug().
		Str("event_id", event.ID.String()).
		Str("entity", event.Entity).
		Str("action", event.Action).
		Int64("entity_id", event.EntityID).
		Msg("change event")
	return nil
}

// Subject joins prefix, entity and action with dots
func Subject(prefix string, event Event) string {
	if prefix == "" {
		return fmt.Sprintf("%s.%s", event.Entity, event.Action)
	}
	return fmt.Sprintf("%s.%s.%s", prefix, event.Entity, event.Action)
}
