// Package confirmation generates opaque booking confirmation codes.
package confirmation

import (
	"crypto/rand"
	"fmt"
)

const (
	CodeLength = 8
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces confirmation codes. Codes are unique only by virtue of
// the bookings table's unique index; callers retry on collision.
type Generator interface {
	NewCode() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() Generator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}

// FixedGenerator always returns the same code. Test use only.
type FixedGenerator struct {
	Code string
}

func (g *FixedGenerator) NewCode() (string, error) {
	return g.Code, nil
}
