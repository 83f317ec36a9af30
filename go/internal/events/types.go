package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entity names used as the second subject token
const (
	EntityPlayer   = "player"
	EntityTeam     = "team"
	EntityStadium  = "stadium"
	EntitySchedule = "schedule"
)

// Actions recorded for each change
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a committed change to a soccer record
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Entity     string          `json:"entity"`
	Action     string          `json:"action"`
	EntityID   int64           `json:"entity_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}
