package venue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyVenueName    = errors.New("venue name cannot be empty")
	ErrVenueNameTooLong  = errors.New("venue name is too long (max 255 characters)")
	ErrNegativeCapacity  = errors.New("venue capacity cannot be negative")
	ErrEmptyVenueAddress = errors.New("venue location cannot be empty")
)

const MaxVenueNameLength = 255

type Venue struct {
	id          uuid.UUID
	name        string
	location    string
	capacity    int
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVenue(name, location string, capacity int, description string) (*Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyVenueName
	}
	if len(name) > MaxVenueNameLength {
		return nil, ErrVenueNameTooLong
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyVenueAddress
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	return &Venue{
		id:          uuid.New(),
		name:        name,
		location:    strings.TrimSpace(location),
		capacity:    capacity,
		description: description,
	}, nil
}

func ReconstructVenue(id uuid.UUID, name, location string, capacity int, description string, createdAt, updatedAt time.Time) *Venue {
	return &Venue{
		id:          id,
		name:        name,
		location:    location,
		capacity:    capacity,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (v *Venue) ID() uuid.UUID       { return v.id }
func (v *Venue) Name() string        { return v.name }
func (v *Venue) Location() string    { return v.location }
func (v *Venue) Capacity() int       { return v.capacity }
func (v *Venue) Description() string { return v.description }
func (v *Venue) CreatedAt() time.Time { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time { return v.updatedAt }
