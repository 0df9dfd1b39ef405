// Package autoplay plays memory games to completion with a bot that never
// forgets a card it has seen. It only reads symbols of face-up cards.
package autoplay

import (
	"math/rand"
	"time"

	"github.com/jason-s-yu/pairs/internal/game"
	"github.com/jason-s-yu/pairs/internal/models"
)

// Result is the outcome of one played game.
type Result struct {
	Moves   int  `json:"moves"`
	Matches int  `json:"matches"`
	Won     bool `json:"won"`
}

// Player is a perfect-memory bot. A Player is reusable across games but not
// safe for concurrent use.
type Player struct {
	rng  *rand.Rand
	seen map[models.Position]string
}

// NewPlayer returns a bot that picks unseen cards with r, or a time-seeded source if r is nil.
func NewPlayer(r *rand.Rand) *Player {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Player{rng: r}
}

// Play drives g until it is won or no further turn is possible. A turn already
// staged in g.Pending is finished first.
func (p *Player) Play(g *game.GameState) Result {
	p.seen = make(map[models.Position]string)
	for _, pos := range g.Pending {
		p.remember(g, pos)
	}
	switch len(g.Pending) {
	case 1:
		p.completeTurn(g, g.Pending[0])
	case 2:
		p.resolve(g)
	}

	// A perfect-memory bot needs at most one turn per cell.
	limit := g.Rows*g.Cols + 1
	for turn := 0; !g.HasWon() && turn < limit; turn++ {
		if !p.playTurn(g) {
			break
		}
	}
	return Result{Moves: g.Moves, Matches: g.Matches, Won: g.HasWon()}
}

func (p *Player) playTurn(g *game.GameState) bool {
	if a, b, ok := p.knownPair(g); ok {
		if !p.flip(g, a) || !p.flip(g, b) {
			return false
		}
		p.resolve(g)
		return true
	}

	first, ok := p.pickUnseen(g, nil)
	if !ok {
		return false
	}
	if !p.flip(g, first) {
		return false
	}
	return p.completeTurn(g, first)
}

// completeTurn flips a second card for an already face-up first card and resolves.
func (p *Player) completeTurn(g *game.GameState, first models.Position) bool {
	second, ok := p.partnerOf(g, first)
	if !ok {
		second, ok = p.pickUnseen(g, &first)
	}
	if !ok {
		second, ok = p.anyHidden(g, first)
	}
	if !ok || !p.flip(g, second) {
		return false
	}
	p.resolve(g)
	return true
}

func (p *Player) flip(g *game.GameState, pos models.Position) bool {
	if !g.Reveal(pos.Row, pos.Col) {
		return false
	}
	p.remember(g, pos)
	return true
}

func (p *Player) remember(g *game.GameState, pos models.Position) {
	if card, ok := g.CardAt(pos.Row, pos.Col); ok && card.State != models.Hidden {
		p.seen[pos] = card.Symbol
	}
}

func (p *Player) resolve(g *game.GameState) {
	staged := append([]models.Position(nil), g.Pending...)
	if _, matched := g.Resolve(); matched {
		for _, pos := range staged {
			delete(p.seen, pos)
		}
	}
}

// knownPair finds two hidden cards already seen with the same symbol, scanning row-major.
func (p *Player) knownPair(g *game.GameState) (models.Position, models.Position, bool) {
	firstSeen := make(map[string]models.Position)
	for _, pos := range p.hidden(g) {
		sym, ok := p.seen[pos]
		if !ok {
			continue
		}
		if other, ok := firstSeen[sym]; ok {
			return other, pos, true
		}
		firstSeen[sym] = pos
	}
	return models.Position{}, models.Position{}, false
}

func (p *Player) partnerOf(g *game.GameState, first models.Position) (models.Position, bool) {
	sym, ok := p.seen[first]
	if !ok {
		return models.Position{}, false
	}
	for _, pos := range p.hidden(g) {
		if other, known := p.seen[pos]; known && pos != first && other == sym {
			return pos, true
		}
	}
	return models.Position{}, false
}

func (p *Player) pickUnseen(g *game.GameState, exclude *models.Position) (models.Position, bool) {
	var candidates []models.Position
	for _, pos := range p.hidden(g) {
		if _, known := p.seen[pos]; known {
			continue
		}
		if exclude != nil && pos == *exclude {
			continue
		}
		candidates = append(candidates, pos)
	}
	if len(candidates) == 0 {
		return models.Position{}, false
	}
	return candidates[p.rng.Intn(len(candidates))], true
}

func (p *Player) anyHidden(g *game.GameState, exclude models.Position) (models.Position, bool) {
	for _, pos := range p.hidden(g) {
		if pos != exclude {
			return pos, true
		}
	}
	return models.Position{}, false
}

// hidden lists face-down cards in row-major order.
func (p *Player) hidden(g *game.GameState) []models.Position {
	var out []models.Position
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if card, _ := g.CardAt(r, c); card.State == models.Hidden {
				out = append(out, models.Position{Row: r, Col: c})
			}
		}
	}
	return out
}
