package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEventName   = errors.New("event name cannot be empty")
	ErrEventNameTooLong = errors.New("event name is too long (max 255 characters)")
	ErrZeroStartTime    = errors.New("event start time is required")
)

const MaxEventNameLength = 255

type Event struct {
	id          uuid.UUID
	venueID     uuid.UUID
	name        string
	description string
	startsAt    time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEvent(venueID uuid.UUID, name, description string, startsAt time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyEventName
	}
	if len(name) > MaxEventNameLength {
		return nil, ErrEventNameTooLong
	}
	if startsAt.IsZero() {
		return nil, ErrZeroStartTime
	}

	return &Event{
		id:          uuid.New(),
		venueID:     venueID,
		name:        name,
		description: description,
		startsAt:    startsAt,
	}, nil
}

func ReconstructEvent(id, venueID uuid.UUID, name, description string, startsAt, createdAt, updatedAt time.Time) *Event {
	return &Event{
		id:          id,
		venueID:     venueID,
		name:        name,
		description: description,
		startsAt:    startsAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) VenueID() uuid.UUID   { return e.venueID }
func (e *Event) Name() string         { return e.name }
func (e *Event) Description() string  { return e.description }
func (e *Event) StartsAt() time.Time  { return e.startsAt }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }
