// Package agent implements automatic players and observation encoding for
// solitaire games.
package agent

import (
	"fmt"

	"github.com/jason-s-yu/solitaire/engine"
)

// Policy chooses the next move for a game. The returned actions are applied
// in order by the caller; ok is false when the policy has no move left.
type Policy interface {
	Next(g *engine.Game) (actions []engine.Action, ok bool)
}

// Greedy plays the first available move in a fixed priority order:
//
//  1. a whole tableau run onto another tableau pile
//  2. the waste top onto a tableau pile
//  3. a tableau top card onto a foundation
//  4. the waste top onto a foundation
//  5. a deal from the stock
//
// Tableau moves that recreate an earlier position are skipped. Greedy gives
// up once it has turned the waste over MaxRecycles times in a row without
// any other move in between.
//
// A Greedy tracks one game; use a fresh value per game.
type Greedy struct {
	MaxRecycles int

	recycles int
	seen     map[uint64]struct{}
}

// NewGreedy returns a Greedy with DefaultMaxRecycles.
func NewGreedy() *Greedy {
	return &Greedy{MaxRecycles: DefaultMaxRecycles}
}

func pickPlace(src engine.PileKind, srcIdx, dst int) []engine.Action {
	return []engine.Action{
		{Type: engine.ActionPickup, Kind: src, Index: srcIdx},
		{Type: engine.ActionPlace, Kind: engine.KindTableau, Index: dst},
	}
}

func selectAt(kind engine.PileKind, idx int) []engine.Action {
	return []engine.Action{{Type: engine.ActionSelect, Kind: kind, Index: idx}}
}

// Next implements Policy. It may apply and roll back candidate moves on g to
// test them, leaving g as it found it.
func (p *Greedy) Next(g *engine.Game) ([]engine.Action, bool) {
	if g.IsDone() || g.State() != engine.StateIdle {
		return nil, false
	}
	if p.seen == nil {
		p.seen = map[uint64]struct{}{g.Hash(): {}}
	}

	if acts, h, ok := p.tableauMove(g); ok {
		p.seen[h] = struct{}{}
		p.recycles = 0
		return acts, true
	}

	for i := 0; i < g.Tableau.NumPiles(); i++ {
		if acts := selectAt(engine.KindTableau, i); p.try(g, acts) {
			p.recycles = 0
			return acts, true
		}
	}

	if g.DrawPile == nil {
		return nil, false
	}
	if acts := selectAt(engine.KindDraw, 0); p.try(g, acts) {
		p.recycles = 0
		return acts, true
	}

	if g.DrawPile.StockLen() == 0 {
		if p.recycles >= p.MaxRecycles {
			return nil, false
		}
		p.recycles++
	}
	if acts := selectAt(engine.KindDeck, 0); p.try(g, acts) {
		return acts, true
	}
	return nil, false
}

// tableauMove finds the first run or waste move onto the tableau that leads
// to an unseen position.
func (p *Greedy) tableauMove(g *engine.Game) ([]engine.Action, uint64, bool) {
	tab := g.Tableau
	m := tab.Method()

	for src := 0; src < tab.NumPiles(); src++ {
		run, err := g.PeekPickup(engine.KindTableau, src)
		if err != nil || run.Len() == 0 {
			continue
		}
		bottom := run.Card(-1)
		clears := tab.PileLen(src) == run.Len()
		for dst := 0; dst < tab.NumPiles(); dst++ {
			if dst == src {
				continue
			}
			target := tab.PeekAll(dst)
			// moving a whole pile onto an empty one changes nothing
			if clears && target.Len() == 0 {
				continue
			}
			if !bottom.CanStackOnPile(target, m) {
				continue
			}
			acts := pickPlace(engine.KindTableau, src, dst)
			if h, ok := p.tryHash(g, acts); ok {
				return acts, h, true
			}
		}
	}

	if g.DrawPile == nil {
		return nil, 0, false
	}
	top, ok := g.DrawPile.PeekCard()
	if !ok {
		return nil, 0, false
	}
	for dst := 0; dst < tab.NumPiles(); dst++ {
		if !top.CanStackOnPile(tab.PeekAll(dst), m) {
			continue
		}
		acts := pickPlace(engine.KindDraw, 0, dst)
		if h, ok := p.tryHash(g, acts); ok {
			return acts, h, true
		}
	}
	return nil, 0, false
}

func (p *Greedy) try(g *engine.Game, acts []engine.Action) bool {
	_, ok := p.simulate(g, acts)
	return ok
}

// tryHash reports whether acts succeed and lead to a position not seen yet.
func (p *Greedy) tryHash(g *engine.Game, acts []engine.Action) (uint64, bool) {
	h, ok := p.simulate(g, acts)
	if !ok {
		return 0, false
	}
	if _, dup := p.seen[h]; dup {
		return 0, false
	}
	return h, true
}

func (p *Greedy) simulate(g *engine.Game, acts []engine.Action) (uint64, bool) {
	snap := g.Save()
	defer g.Restore(snap)
	for _, a := range acts {
		ok, err := g.Apply(a)
		if err != nil || !ok {
			return 0, false
		}
	}
	return g.Hash(), true
}

// Play drives g with a fresh Greedy until the game is won, the policy gives
// up, or maxMoves moves have been made (0 means no limit). A game that is not
// won is stopped. It returns whether the game was won.
func Play(g *engine.Game, maxMoves int) (bool, error) {
	return PlayWith(g, NewGreedy(), maxMoves)
}

// PlayWith is Play with a caller-supplied policy.
func PlayWith(g *engine.Game, p Policy, maxMoves int) (bool, error) {
	for n := 0; !g.IsDone() && (maxMoves <= 0 || n < maxMoves); n++ {
		acts, ok := p.Next(g)
		if !ok {
			break
		}
		for _, a := range acts {
			applied, err := g.Apply(a)
			if err != nil {
				return false, fmt.Errorf("agent: %s: %w", a, err)
			}
			if !applied {
				return false, fmt.Errorf("agent: %s was refused", a)
			}
		}
	}
	if !g.IsDone() {
		g.Stop()
	}
	return g.HasWon(), nil
}
