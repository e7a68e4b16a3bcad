package booking

import (
	"errors"
	"strings"
)

var (
	ErrEmptyBuyerName   = errors.New("buyer name cannot be empty")
	ErrInvalidEmail     = errors.New("buyer email is invalid")
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrBuyerNameTooLong = errors.New("buyer name is too long (max 255 characters)")
)

const MaxBuyerNameLength = 255

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// ReconstructMoney restores an amount from storage without re-validating.
func ReconstructMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

type Buyer struct {
	name  string
	email string
}

func NewBuyer(name, email string) (Buyer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Buyer{}, ErrEmptyBuyerName
	}
	if len(name) > MaxBuyerNameLength {
		return Buyer{}, ErrBuyerNameTooLong
	}

	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return Buyer{}, ErrInvalidEmail
	}

	return Buyer{name: name, email: email}, nil
}

// ReconstructBuyer restores a buyer from storage without re-validating.
func ReconstructBuyer(name, email string) Buyer {
	return Buyer{name: name, email: email}
}

func (b Buyer) Name() string  { return b.name }
func (b Buyer) Email() string { return b.email }
