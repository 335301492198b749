// Package engine implements the card and pile model of patience games such as
// Klondike and La Belle Lucie, and the pickup/place state machine a driver
// uses to play them.
//
// The engine is synchronous and single-owner: one driver issues one
// operation at a time. Illegal moves return false and leave the game
// unchanged; errors are reserved for malformed requests.
package engine

import (
	"fmt"
	"strings"
)

// PileKind names a family of piles on the board.
type PileKind uint8

const (
	KindDraw       PileKind = iota // the waste
	KindTableau                    // a tableau pile
	KindFoundation                 // a foundation pile
	KindDeck                       // the face-down stock
)

func (k PileKind) String() string {
	switch k {
	case KindDraw:
		return "draw"
	case KindTableau:
		return "tableau"
	case KindFoundation:
		return "foundation"
	case KindDeck:
		return "deck"
	default:
		return fmt.Sprintf("PileKind(%d)", uint8(k))
	}
}

// ParsePileKind maps "draw", "tableau", "foundation" or "deck" to a PileKind.
func ParsePileKind(s string) (PileKind, error) {
	switch strings.ToLower(s) {
	case "draw":
		return KindDraw, nil
	case "tableau":
		return KindTableau, nil
	case "foundation":
		return KindFoundation, nil
	case "deck":
		return KindDeck, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPileKind, s)
	}
}

// State is the selection state of a game.
type State uint8

const (
	StateIdle    State = iota // nothing held
	StateHolding              // a run has been picked up
)

func (s State) String() string {
	if s == StateHolding {
		return "holding"
	}
	return "idle"
}

// Selection is the run currently held and where it came from.
type Selection struct {
	Pile   *Pile
	Source PileKind
	Index  int

	exposed bool // the pickup turned the next waste card face up
}

// Game is one deal of a variant together with its selection state. The held
// cards are absent from every board pile until they are placed or put back.
type Game struct {
	Variant    Variant
	Seed       uint64
	Foundation *Foundation
	Tableau    *Tableau
	DrawPile   *DrawPile // nil when the variant has no stock

	state   State
	held    Selection // valid only in StateHolding
	running bool
	moves   int
}

// NewGame validates v and deals a game shuffled by seed.
func NewGame(v Variant, seed uint64) (*Game, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	g := &Game{Variant: v, Seed: seed}
	if err := g.Setup(); err != nil {
		return nil, err
	}
	return g, nil
}

// Setup shuffles a fresh deck and deals it. Calling it again redeals the same
// seed from scratch.
func (g *Game) Setup() error {
	v := g.Variant
	deck := NewShuffledPile(v.AcesHigh, g.Seed)

	g.Foundation = NewFoundation(v.FoundationStart)
	g.Tableau = NewTableau(v.Stacking, v.PileLengths, v.InitialVisible)
	if err := g.Tableau.Setup(deck); err != nil {
		return fmt.Errorf("setup %s: %w", v.Name, err)
	}
	g.DrawPile = nil
	if v.Draw != nil {
		g.DrawPile = NewDrawPile(v.Draw.FlipAmount, v.Draw.NumVisible)
		g.DrawPile.Setup(deck)
	}

	g.state = StateIdle
	g.held = Selection{}
	g.running = true
	g.moves = 0
	return nil
}

// Layout is an explicit board position. Piles are listed top card first.
type Layout struct {
	Tableau    []*Pile
	Foundation [NumFoundations]*Pile
	Stock      *Pile // nil for an empty stock
	Waste      *Pile // nil for an empty waste
}

// NewGameFromLayout builds an idle game of v from an explicit position, such
// as a puzzle deal. The piles are copied. Seed is left at zero, so Setup
// deals a fresh shuffled game rather than this layout.
func NewGameFromLayout(v Variant, l Layout) (*Game, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if len(l.Tableau) != len(v.PileLengths) {
		return nil, fmt.Errorf("%w: %d tableau piles, %s has %d", ErrInvalidLayout, len(l.Tableau), v.Name, len(v.PileLengths))
	}
	if v.Draw == nil && (l.Stock.Len() > 0 || l.Waste.Len() > 0) {
		return nil, fmt.Errorf("%w: %s has no draw pile", ErrInvalidLayout, v.Name)
	}

	seen := make(map[Card]bool)
	check := func(p *Pile) error {
		for _, c := range p.Cards() {
			if seen[c] {
				return fmt.Errorf("%w: duplicate %s", ErrInvalidLayout, c)
			}
			seen[c] = true
		}
		return nil
	}

	g := &Game{Variant: v, state: StateIdle}
	g.Tableau = NewTableau(v.Stacking, v.PileLengths, v.InitialVisible)
	for i, p := range l.Tableau {
		if err := check(p); err != nil {
			return nil, err
		}
		g.Tableau.piles[i] = p.Clone()
	}
	g.Foundation = NewFoundation(v.FoundationStart)
	for i, p := range l.Foundation {
		if err := check(p); err != nil {
			return nil, err
		}
		g.Foundation.piles[i] = p.Clone()
		g.Foundation.piles[i].ShowAll()
	}
	if v.Draw != nil {
		if err := check(l.Stock); err != nil {
			return nil, err
		}
		if err := check(l.Waste); err != nil {
			return nil, err
		}
		g.DrawPile = NewDrawPile(v.Draw.FlipAmount, v.Draw.NumVisible)
		g.DrawPile.Setup(l.Stock.Clone())
		g.DrawPile.waste = l.Waste.Clone()
	}
	g.running = !g.Foundation.IsDone()
	return g, nil
}

// State returns the current selection state.
func (g *Game) State() State { return g.state }

// Selected returns a copy of the held selection.
func (g *Game) Selected() (Selection, bool) {
	if g.state != StateHolding {
		return Selection{}, false
	}
	sel := g.held
	sel.Pile = sel.Pile.Clone()
	return sel, true
}

// IsDone reports whether the game has stopped, either because it was won or
// because the driver gave up.
func (g *Game) IsDone() bool { return !g.running }

// HasWon reports whether every foundation pile is complete.
func (g *Game) HasWon() bool { return g.Foundation.IsDone() }

// Stop ends the game without a win, e.g. when a driver finds no legal move.
func (g *Game) Stop() { g.running = false }

// Moves returns the number of successful placements, quick moves and deals.
func (g *Game) Moves() int { return g.moves }

// StockLen returns the number of cards in the stock, 0 without a draw pile.
func (g *Game) StockLen() int {
	if g.DrawPile == nil {
		return 0
	}
	return g.DrawPile.StockLen()
}

// checkTarget rejects pile kinds the variant does not have and indices
// outside the board.
func (g *Game) checkTarget(kind PileKind, idx int) error {
	switch kind {
	case KindDraw, KindDeck:
		if g.DrawPile == nil {
			return fmt.Errorf("%w: %s in %s", ErrUnsupportedPile, kind, g.Variant.Name)
		}
		return nil
	case KindTableau:
		return g.Tableau.checkIndex(idx)
	case KindFoundation:
		return g.Foundation.checkIndex(idx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPileKind, kind)
	}
}

func (g *Game) recordMove() {
	g.moves++
	if g.Foundation.IsDone() {
		g.running = false
	}
}

// ---------------------------------------------------------------------------
// Snapshot Save / Restore
// ---------------------------------------------------------------------------

// Snapshot is a deep copy of a game's mutable state, for undo.
type Snapshot struct {
	foundation *Foundation
	tableau    *Tableau
	drawPile   *DrawPile
	state      State
	held       Selection
	running    bool
	moves      int
}

// Save returns a snapshot of the current game state.
func (g *Game) Save() Snapshot {
	s := Snapshot{
		foundation: g.Foundation.clone(),
		tableau:    g.Tableau.clone(),
		state:      g.state,
		held:       g.held,
		running:    g.running,
		moves:      g.moves,
	}
	if g.DrawPile != nil {
		s.drawPile = g.DrawPile.clone()
	}
	if g.held.Pile != nil {
		s.held.Pile = g.held.Pile.Clone()
	}
	return s
}

// Restore replaces the game state with s. A snapshot may be restored more
// than once.
func (g *Game) Restore(s Snapshot) {
	g.Foundation = s.foundation.clone()
	g.Tableau = s.tableau.clone()
	g.DrawPile = nil
	if s.drawPile != nil {
		g.DrawPile = s.drawPile.clone()
	}
	g.state = s.state
	g.held = s.held
	if s.held.Pile != nil {
		g.held.Pile = s.held.Pile.Clone()
	}
	g.running = s.running
	g.moves = s.moves
}
