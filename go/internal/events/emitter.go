package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Emitter stamps and publishes change events.
// Publishing is best effort; failures are logged and never returned.
type Emitter struct {
	publisher Publisher
	clock     clockwork.Clock
}

// NewEmitter creates an Emitter. In production pass clockwork.NewRealClock().
func NewEmitter(publisher Publisher, clock clockwork.Clock) *Emitter {
	if publisher == nil {
		publisher = LogPublisher{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Emitter{
		publisher: publisher,
		clock:     clock,
	}
}

// Emit publishes a single change for entity/action
func (e *Emitter) Emit(ctx context.Context, entity, action string, entityID int64, payload any) {
	if e == nil {
		return
	}

	event := Event{
		ID:         uuid.New(),
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: e.clock.Now().UTC(),
	}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Warn().Err(err).Str("entity", entity).Int64("entity_id", entityID).Msg("failed to marshal event payload")
		} else {
			event.Payload = data
		}
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).
			Str("entity", entity).
			Str("action", action).
			Int64("entity_id", entityID).
			Msg("failed to publish change event")
	}
}
