// internal/game/engine_adapter.go: bridge between engine.Game and SolitaireGame.
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/solitaire/engine"
)

// CardTracker gives every card a stable UUID for client communication. Cards
// in a solitaire deck are unique, so the mapping is fixed for the whole game.
type CardTracker struct {
	IDs map[engine.Card]uuid.UUID

	// Registry maps UUID -> card for incoming references.
	Registry map[uuid.UUID]engine.Card
}

// ID returns the UUID of c, or uuid.Nil if c is not in this game.
func (t *CardTracker) ID(c engine.Card) uuid.UUID { return t.IDs[c] }

// Card returns the card with the given UUID.
func (t *CardTracker) Card(id uuid.UUID) (engine.Card, bool) {
	c, ok := t.Registry[id]
	return c, ok
}

// engineRankToString converts an engine rank to service rank string.
func engineRankToString(rank engine.Rank) string {
	switch rank {
	case engine.RankAceLow, engine.RankAceHigh:
		return "A"
	case engine.RankTen:
		return "T"
	case engine.RankJack:
		return "J"
	case engine.RankQueen:
		return "Q"
	case engine.RankKing:
		return "K"
	}
	if rank >= engine.RankTwo && rank <= engine.RankNine {
		return string(rune('0' + rank))
	}
	return "?"
}

// engineSuitToString converts an engine suit to service suit string.
func engineSuitToString(suit engine.Suit) string {
	switch suit {
	case engine.SuitHearts:
		return "H"
	case engine.SuitDiamonds:
		return "D"
	case engine.SuitClubs:
		return "C"
	case engine.SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// initCardTracker assigns a UUID to every card of the variant's deck.
func (g *SolitaireGame) initCardTracker() {
	g.CardTracker = CardTracker{
		IDs:      make(map[engine.Card]uuid.UUID, engine.DeckSize),
		Registry: make(map[uuid.UUID]engine.Card, engine.DeckSize),
	}
	for _, c := range engine.NewDeck(g.Variant.AcesHigh) {
		id, _ := uuid.NewRandom()
		g.CardTracker.IDs[c] = id
		g.CardTracker.Registry[id] = c
	}
}

// eventCards converts a pile to event cards, revealing every card.
func (g *SolitaireGame) eventCards(p *engine.Pile) []EventCard {
	if p.Len() == 0 {
		return nil
	}
	out := make([]EventCard, 0, p.Len())
	for _, c := range p.Cards() {
		out = append(out, EventCard{
			ID:   g.CardTracker.ID(c),
			Rank: engineRankToString(c.Rank),
			Suit: engineSuitToString(c.Suit),
		})
	}
	return out
}

func eventPile(kind engine.PileKind, idx int) *EventPile {
	return &EventPile{Kind: kind.String(), Index: idx}
}

// applyEngineAction applies a to the engine and emits the matching events.
// Assumes lock is held by caller.
func (g *SolitaireGame) applyEngineAction(a engine.Action) (bool, error) {
	eg := g.Engine

	// Capture what the action will move before the engine mutates anything.
	var moved *engine.Pile
	preStock := eg.StockLen()
	held, holding := eg.Selected()
	switch a.Type {
	case engine.ActionPickup:
		if eg.State() == engine.StateIdle {
			p, err := eg.PeekPickup(a.Kind, a.Index)
			if err != nil {
				return false, err
			}
			moved = p
		}
	case engine.ActionSelect:
		if a.Kind == engine.KindDraw || a.Kind == engine.KindTableau {
			p, err := eg.PeekPickup(a.Kind, a.Index)
			if err != nil {
				return false, err
			}
			if c, ok := p.Top(); ok {
				moved = engine.NewVisiblePile(c)
			}
		}
	}

	ok, err := eg.Apply(a)
	if err != nil {
		return false, err
	}
	if !ok {
		g.logAction("invalid_move", map[string]interface{}{"attempt": a.String()})
		g.fireEvent(GameEvent{
			Type:    EventInvalidMove,
			Payload: map[string]interface{}{"action": a.String(), "state": eg.State().String()},
		})
		return false, nil
	}

	g.emitEventsForAction(a, moved, held, holding, preStock)
	return true, nil
}

// emitEventsForAction broadcasts the outcome of a successful action.
// Assumes lock is held by caller.
func (g *SolitaireGame) emitEventsForAction(a engine.Action, moved *engine.Pile, held engine.Selection, wasHolding bool, preStock int) {
	eg := g.Engine
	switch a.Type {
	case engine.ActionPickup:
		g.logAction(string(EventPickup), map[string]interface{}{"pile": a.Kind.String(), "index": a.Index, "cards": moved.Len()})
		g.fireEvent(GameEvent{
			Type:  EventPickup,
			From:  eventPile(a.Kind, a.Index),
			Cards: g.eventCards(moved),
		})

	case engine.ActionPlace:
		placed := engine.NewPile()
		if wasHolding {
			placed = placedRun(eg, a, held.Pile)
		}
		g.logAction(string(EventPlace), map[string]interface{}{"pile": a.Kind.String(), "index": a.Index, "cards": placed.Len()})
		g.fireEvent(GameEvent{
			Type:  EventPlace,
			From:  eventPile(held.Source, held.Index),
			To:    eventPile(a.Kind, a.Index),
			Cards: g.eventCards(placed),
		})

	case engine.ActionCancel:
		g.logAction(string(EventCancel), nil)
		ev := GameEvent{Type: EventCancel}
		if wasHolding {
			ev.To = eventPile(held.Source, held.Index)
			ev.Cards = g.eventCards(held.Pile)
		}
		g.fireEvent(ev)

	case engine.ActionSelect:
		if a.Kind == engine.KindDeck {
			if preStock == 0 {
				g.logAction(string(EventRecycle), map[string]interface{}{"stock": eg.StockLen()})
				g.fireEvent(GameEvent{Type: EventRecycle, Payload: map[string]interface{}{"stock": eg.StockLen()}})
				return
			}
			dealt := eg.DrawPile.Peek()
			g.logAction(string(EventDeal), map[string]interface{}{"cards": preStock - eg.StockLen()})
			g.fireEvent(GameEvent{
				Type:    EventDeal,
				To:      eventPile(engine.KindDraw, 0),
				Cards:   g.eventCards(dealt),
				Payload: map[string]interface{}{"stock": eg.StockLen()},
			})
			return
		}
		g.logAction(string(EventSelect), map[string]interface{}{"pile": a.Kind.String(), "index": a.Index})
		g.fireEvent(GameEvent{
			Type:  EventSelect,
			From:  eventPile(a.Kind, a.Index),
			To:    eventPile(engine.KindFoundation, foundationOf(eg, moved)),
			Cards: g.eventCards(moved),
		})
	}
}

// foundationOf returns the foundation pile whose top card is the top of p.
func foundationOf(eg *engine.Game, p *engine.Pile) int {
	c, ok := p.Top()
	if !ok {
		return 0
	}
	for i := 0; i < engine.NumFoundations; i++ {
		if top, ok, _ := eg.Foundation.Peek(i); ok && top == c {
			return i
		}
	}
	return 0
}

// placedRun works out which part of the held run landed on the destination:
// the top of the destination pile, as many cards as left the selection.
func placedRun(eg *engine.Game, a engine.Action, held *engine.Pile) *engine.Pile {
	var dest *engine.Pile
	switch a.Kind {
	case engine.KindTableau:
		dest = eg.Tableau.PeekAll(a.Index)
	case engine.KindFoundation:
		dest, _ = eg.Foundation.PeekAll(a.Index)
	default:
		return engine.NewPile()
	}
	n := 0
	for n < held.Len() && n < dest.Len() && held.Card(n) == dest.Card(n) {
		n++
	}
	run, _ := held.Peek(engine.Exactly(n))
	return run
}
