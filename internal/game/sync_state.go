// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/pairs/internal/models"
)

// ObfCard is a card as a player may see it. Symbol is only set once the card is face up.
type ObfCard struct {
	ID     uuid.UUID        `json:"id"`
	Row    int              `json:"row"`
	Col    int              `json:"col"`
	State  models.CardState `json:"state"`
	Symbol string           `json:"symbol,omitempty"`
}

// ObfGameState is returned by ObfuscatedState.
type ObfGameState struct {
	GameID     uuid.UUID         `json:"game_id"`
	Rows       int               `json:"rows"`
	Cols       int               `json:"cols"`
	Moves      int               `json:"moves"`
	Matches    int               `json:"matches"`
	TotalPairs int               `json:"totalPairs"`
	Won        bool              `json:"won"`
	Pending    []models.Position `json:"pending"`
	Cards      [][]ObfCard       `json:"cards"`
}

// ObfuscatedState generates a snapshot of the game that is safe to hand to a
// presentation layer: hidden cards do not carry their symbol.
func (g *GameState) ObfuscatedState() ObfGameState {
	obf := ObfGameState{
		GameID:     g.ID,
		Rows:       g.Rows,
		Cols:       g.Cols,
		Moves:      g.Moves,
		Matches:    g.Matches,
		TotalPairs: g.TotalPairs,
		Won:        g.HasWon(),
		Pending:    make([]models.Position, len(g.Pending)),
		Cards:      make([][]ObfCard, len(g.Board)),
	}
	copy(obf.Pending, g.Pending)

	for r, row := range g.Board {
		obf.Cards[r] = make([]ObfCard, len(row))
		for c, card := range row {
			oc := ObfCard{ID: card.ID, Row: r, Col: c, State: card.State}
			if card.State != models.Hidden {
				oc.Symbol = card.Symbol
			}
			obf.Cards[r][c] = oc
		}
	}
	return obf
}
