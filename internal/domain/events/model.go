package events

import (
	"time"

	"pet-nutrition/internal/domain/events/details"
)

type Actor struct {
	Type ActorType
	ID   string
}

type PetEvent struct {
	ID    string
	PetID string

	Type EventType

	OccurredAt time.Time
	RecordedAt time.Time

	Title string
	Notes string

	// Solo para WEIGHT_RECORDED.
	Measurement *details.Measurement

	Actor      Actor
	Source     Source
	Visibility Visibility
	Status     EventStatus
}

// Weight es el último peso conocido, ya en kilogramos.
type Weight struct {
	EventID    string
	Kilograms  float64
	OccurredAt time.Time
	Original   details.Measurement
}
