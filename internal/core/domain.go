package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Inflow  Kind = "Entrada"
	Outflow Kind = "Saída"
)

type (
	// Kind is the direction of a movement. Its value is the label written to
	// the day file.
	Kind string

	Movement struct {
		Time        time.Time
		Amount      decimal.Decimal
		Kind        Kind
		Description string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidKind      = errors.New("invalid kind")
	ErrEmptyDescription = errors.New("empty description")
	ErrMalformedLine    = errors.New("malformed movement line")
)

// ParseKind maps an operator token to a Kind: "e" is an inflow and "s" an
// outflow, case-insensitive. Everything else is rejected.
func ParseKind(token string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "e":
		return Inflow, nil
	case "s":
		return Outflow, nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) Validate() error {
	switch k {
	case Inflow, Outflow:
		return nil
	default:
		return ErrInvalidKind
	}
}

func (k Kind) String() string {
	return string(k)
}

// Validate checks the fields the menu enforces before recording. Any amount
// is accepted, including zero and negatives.
func (m Movement) Validate() error {
	if err := m.Kind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(m.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
