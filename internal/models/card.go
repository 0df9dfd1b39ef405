// internal/models/card.go
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// CardState is the visibility of a single card on the board.
type CardState int

const (
	Hidden  CardState = iota // face down, can be revealed
	Visible                  // face up, waiting for the turn to resolve
	Found                    // part of a confirmed pair, stays face up
)

var cardStateNames = [...]string{Hidden: "hidden", Visible: "visible", Found: "found"}

// String returns "hidden", "visible" or "found", or "CardState(n)" for unknown values.
func (s CardState) String() string {
	if s >= Hidden && s <= Found {
		return cardStateNames[s]
	}
	return fmt.Sprintf("CardState(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler so states serialize by name.
func (s CardState) MarshalText() ([]byte, error) {
	if s < Hidden || s > Found {
		return nil, fmt.Errorf("pairs: invalid card state: %d", int(s))
	}
	return []byte(cardStateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CardState) UnmarshalText(text []byte) error {
	for i, name := range cardStateNames {
		if name == string(text) {
			*s = CardState(i)
			return nil
		}
	}
	return fmt.Errorf("pairs: invalid card state: %q", text)
}

// Card is one board cell.
type Card struct {
	ID     uuid.UUID `json:"id"`
	Symbol string    `json:"symbol"`
	State  CardState `json:"state"`
}

// Position addresses a board cell, row-major.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
