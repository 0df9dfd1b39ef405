// internal/game/game.go
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/pairs/internal/models"
	"github.com/sirupsen/logrus"
)

// ActionType names an entry in a game's History.
type ActionType string

const (
	ActionGameCreated  ActionType = "game_created"
	ActionCardRevealed ActionType = "card_revealed"
	ActionTurnResolved ActionType = "turn_resolved"
)

// GameState holds the entire state for a single game. It is owned by one caller
// and is not safe for concurrent use.
type GameState struct {
	ID uuid.UUID

	Rows  int
	Cols  int
	Board [][]models.Card

	// Pending holds the face-up cards of the current turn, at most 2.
	Pending []models.Position

	Moves      int // completed two-card turns, matched or not
	Matches    int // confirmed pairs
	TotalPairs int

	// History records every successful state change in order.
	History []models.GameAction

	logger logrus.FieldLogger
}

// NewGame builds a game with a time-seeded shuffle.
func NewGame(rows, cols int) (*GameState, error) {
	return NewGameWithRand(rows, cols, nil)
}

// NewGameWithRand builds a game whose board is shuffled with r. Passing a seeded
// source makes the layout reproducible.
func NewGameWithRand(rows, cols int, r *rand.Rand) (*GameState, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}
	return newGame(rows, cols, BuildSymbolPool(rows, cols, r)), nil
}

// NewGameFromSymbols lays out symbols row-major without shuffling. Every
// symbol must appear exactly twice.
func NewGameFromSymbols(rows, cols int, symbols []string) (*GameState, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if len(symbols) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSymbolCount, len(symbols), rows*cols)
	}
	counts := make(map[string]int, len(symbols)/2)
	for _, sym := range symbols {
		counts[sym]++
	}
	for sym, n := range counts {
		if n != 2 {
			return nil, fmt.Errorf("%w: %q appears %d times", ErrUnpairedSymbols, sym, n)
		}
	}
	pool := make([]string, len(symbols))
	copy(pool, symbols)
	return newGame(rows, cols, pool), nil
}

// MaxSide caps rows and cols so rows*cols cannot overflow.
const MaxSide = 26

func validateDimensions(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rows > MaxSide || cols > MaxSide {
		return fmt.Errorf("%w: got %dx%d, max %d per side", ErrBoardTooLarge, rows, cols, MaxSide)
	}
	if rows*cols%2 != 0 {
		return fmt.Errorf("%w: got %dx%d", ErrOddCellCount, rows, cols)
	}
	return nil
}

// newGame consumes pool row-major. len(pool) must equal rows*cols.
func newGame(rows, cols int, pool []string) *GameState {
	id, _ := uuid.NewRandom()
	board := make([][]models.Card, rows)
	idx := 0
	for r := range board {
		board[r] = make([]models.Card, cols)
		for c := range board[r] {
			cid, _ := uuid.NewRandom()
			board[r][c] = models.Card{ID: cid, Symbol: pool[idx], State: models.Hidden}
			idx++
		}
	}

	g := &GameState{
		ID:         id,
		Rows:       rows,
		Cols:       cols,
		Board:      board,
		Pending:    []models.Position{},
		TotalPairs: rows * cols / 2,
		History:    []models.GameAction{},
		logger:     logrus.StandardLogger(),
	}
	g.logAction(ActionGameCreated, map[string]interface{}{
		"rows":       rows,
		"cols":       cols,
		"totalPairs": g.TotalPairs,
	})
	return g
}

// SetLogger replaces the logger used for game actions. nil restores the logrus standard logger.
func (g *GameState) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	g.logger = l
}

// InBounds reports whether (row, col) addresses a cell of the board.
func (g *GameState) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// CardAt returns a copy of the card at (row, col).
func (g *GameState) CardAt(row, col int) (models.Card, bool) {
	if !g.InBounds(row, col) {
		return models.Card{}, false
	}
	return g.Board[row][col], true
}

// Reveal flips the hidden card at (row, col) face up and adds it to Pending.
// It returns false without changing anything if the position is out of bounds,
// the card is not hidden, or two cards are already pending.
func (g *GameState) Reveal(row, col int) bool {
	entry := g.log().WithFields(logrus.Fields{"row": row, "col": col})
	if !g.InBounds(row, col) {
		entry.Trace("reveal rejected: out of bounds")
		return false
	}
	card := &g.Board[row][col]
	if card.State != models.Hidden {
		entry.WithField("state", card.State).Trace("reveal rejected: card not hidden")
		return false
	}
	if len(g.Pending) >= 2 {
		entry.Trace("reveal rejected: turn already staged")
		return false
	}

	card.State = models.Visible
	g.Pending = append(g.Pending, models.Position{Row: row, Col: col})
	g.logAction(ActionCardRevealed, map[string]interface{}{
		"row":    row,
		"col":    col,
		"cardId": card.ID,
		"symbol": card.Symbol,
	})
	return true
}

// Resolve completes a turn once two cards are pending. A pair becomes Found,
// a mismatch is hidden again; either way Moves is incremented and Pending is
// cleared. With fewer than two pending cards it is a no-op returning (false, false).
func (g *GameState) Resolve() (resolved, matched bool) {
	if len(g.Pending) != 2 {
		return false, false
	}
	p1, p2 := g.Pending[0], g.Pending[1]
	c1 := &g.Board[p1.Row][p1.Col]
	c2 := &g.Board[p2.Row][p2.Col]

	g.Moves++
	if c1.Symbol == c2.Symbol {
		c1.State = models.Found
		c2.State = models.Found
		g.Matches++
		matched = true
	} else {
		c1.State = models.Hidden
		c2.State = models.Hidden
	}
	g.Pending = []models.Position{}

	g.logAction(ActionTurnResolved, map[string]interface{}{
		"first":   p1,
		"second":  p2,
		"matched": matched,
		"moves":   g.Moves,
		"matches": g.Matches,
	})
	if g.HasWon() {
		g.log().WithField("moves", g.Moves).Debug("all pairs found")
	}
	return true, matched
}

// HasWon reports whether every pair has been found.
func (g *GameState) HasWon() bool {
	return g.Matches == g.TotalPairs
}

func (g *GameState) log() *logrus.Entry {
	l := g.logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	return l.WithField("game_id", g.ID)
}

// logAction appends an entry to History and logs it at debug level.
func (g *GameState) logAction(action ActionType, payload map[string]interface{}) {
	if payload == nil {
		payload = make(map[string]interface{})
	}
	rec := models.GameAction{
		Index:      len(g.History) + 1,
		ActionType: string(action),
		Payload:    payload,
		Timestamp:  time.Now().UnixMilli(),
	}
	g.History = append(g.History, rec)
	g.log().WithFields(logrus.Fields{
		"action": action,
		"index":  rec.Index,
	}).Debug("game action")
}
