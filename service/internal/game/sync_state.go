// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/solitaire/engine"
)

// ObfCard represents a card's state for client synchronization, hiding face-down details.
type ObfCard struct {
	ID    uuid.UUID `json:"id"`
	Known bool      `json:"known"` // True if Rank/Suit are revealed.
	Rank  string    `json:"rank,omitempty"`
	Suit  string    `json:"suit,omitempty"`
}

// ObfGameState represents the board as a player sees it.
type ObfGameState struct {
	GameID      uuid.UUID   `json:"gameId"`
	Variant     string      `json:"variant"`
	State       string      `json:"state"` // "idle" or "holding"
	GameOver    bool        `json:"gameOver"`
	Won         bool        `json:"won"`
	Moves       int         `json:"moves"`
	Score       int         `json:"score"`
	StockSize   int         `json:"stockSize"`
	Waste       []ObfCard   `json:"waste,omitempty"` // Top first.
	Tableau     [][]ObfCard `json:"tableau"`
	Foundations [][]ObfCard `json:"foundations"`
	Held        []ObfCard   `json:"held,omitempty"`
}

// BoardState returns a snapshot of the board for clients.
func (g *SolitaireGame) BoardState() ObfGameState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.GetCurrentObfuscatedGameState()
}

// GetCurrentObfuscatedGameState generates a snapshot of the board in which
// face-down cards carry only their UUID.
// This function assumes the game lock is HELD by the caller.
func (g *SolitaireGame) GetCurrentObfuscatedGameState() ObfGameState {
	eg := g.Engine
	obf := ObfGameState{
		GameID:    g.ID,
		Variant:   g.Variant.Name,
		State:     eg.State().String(),
		GameOver:  g.GameOver || eg.IsDone(),
		Won:       eg.HasWon(),
		Moves:     eg.Moves(),
		Score:     eg.Score(),
		StockSize: eg.StockLen(),
	}

	obf.Tableau = make([][]ObfCard, eg.Tableau.NumPiles())
	for i := range obf.Tableau {
		obf.Tableau[i] = g.obfPile(eg.Tableau.PeekAll(i))
	}
	obf.Foundations = make([][]ObfCard, engine.NumFoundations)
	for i := range obf.Foundations {
		p, _ := eg.Foundation.PeekAll(i)
		obf.Foundations[i] = g.obfPile(p)
	}
	if eg.DrawPile != nil {
		obf.Waste = g.obfPile(eg.DrawPile.PeekWaste())
	}
	if sel, ok := eg.Selected(); ok {
		obf.Held = g.obfPile(sel.Pile)
	}
	return obf
}

func (g *SolitaireGame) obfPile(p *engine.Pile) []ObfCard {
	out := make([]ObfCard, p.Len())
	for i := range out {
		c := p.Card(i)
		out[i] = ObfCard{ID: g.CardTracker.ID(c)}
		if p.IsVisible(i) {
			out[i].Known = true
			out[i].Rank = engineRankToString(c.Rank)
			out[i].Suit = engineSuitToString(c.Suit)
		}
	}
	return out
}
