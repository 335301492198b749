package engine

import "fmt"

// ActionType is the kind of request a driver makes.
type ActionType uint8

const (
	ActionPickup ActionType = iota
	ActionPlace
	ActionCancel
	ActionSelect
)

func (t ActionType) String() string {
	switch t {
	case ActionPickup:
		return "pickup"
	case ActionPlace:
		return "place"
	case ActionCancel:
		return "cancel"
	case ActionSelect:
		return "select"
	default:
		return fmt.Sprintf("ActionType(%d)", uint8(t))
	}
}

// Action is one driver request. Kind and Index are ignored for ActionCancel.
type Action struct {
	Type  ActionType
	Kind  PileKind
	Index int
}

func (a Action) String() string {
	if a.Type == ActionCancel {
		return a.Type.String()
	}
	return fmt.Sprintf("%s %s[%d]", a.Type, a.Kind, a.Index)
}

// Apply dispatches a to the matching operation.
func (g *Game) Apply(a Action) (bool, error) {
	switch a.Type {
	case ActionPickup:
		return g.Pickup(a.Kind, a.Index)
	case ActionPlace:
		return g.SetDownOn(a.Kind, a.Index)
	case ActionCancel:
		return g.ReplaceSelected(), nil
	case ActionSelect:
		return g.OnSelect(a.Kind, a.Index)
	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownAction, a.Type)
	}
}

// Pickup lifts cards from a pile into the selection. From the waste and the
// foundation it takes one card; from the tableau it takes what the variant's
// PickupMode allows. Picking up from the deck never succeeds; deals go
// through OnSelect. Pickup returns false while something is already held or
// when nothing could be taken.
func (g *Game) Pickup(kind PileKind, idx int) (bool, error) {
	if err := g.checkTarget(kind, idx); err != nil {
		return false, err
	}
	if g.state != StateIdle {
		return false, nil
	}

	var picked *Pile
	exposed := false
	switch kind {
	case KindDraw:
		exposed = g.DrawPile.exposesHidden()
		if c, ok := g.DrawPile.Pop(); ok {
			picked = NewVisiblePile(c)
		}
	case KindTableau:
		picked = g.takeFromTableau(idx)
	case KindFoundation:
		if c, ok, _ := g.Foundation.Pop(idx); ok {
			picked = NewVisiblePile(c)
		}
	case KindDeck:
		return false, nil
	}
	if picked.Len() == 0 {
		return false, nil
	}

	g.state = StateHolding
	g.held = Selection{Pile: picked, Source: kind, Index: idx, exposed: exposed}
	return true, nil
}

func (g *Game) takeFromTableau(idx int) *Pile {
	if g.Variant.TableauPickup == PickupTopCard {
		if _, ok := g.Tableau.PeekCard(idx); !ok {
			return nil
		}
		c, _ := g.Tableau.PopCard(idx)
		return NewVisiblePile(c)
	}
	return g.Tableau.PopPile(idx)
}

// PeekPickup returns a copy of what Pickup(kind, idx) would take from an idle
// game, or an empty pile.
func (g *Game) PeekPickup(kind PileKind, idx int) (*Pile, error) {
	if err := g.checkTarget(kind, idx); err != nil {
		return nil, err
	}
	switch kind {
	case KindDraw:
		if c, ok := g.DrawPile.PeekCard(); ok {
			return NewVisiblePile(c), nil
		}
	case KindTableau:
		if g.Variant.TableauPickup == PickupTopCard {
			if c, ok := g.Tableau.PeekCard(idx); ok {
				return NewVisiblePile(c), nil
			}
			return NewPile(), nil
		}
		return g.Tableau.PeekPile(idx), nil
	case KindFoundation:
		if c, ok, _ := g.Foundation.Peek(idx); ok {
			return NewVisiblePile(c), nil
		}
	}
	return NewPile(), nil
}

// ReplaceSelected returns the held cards, unchanged, to the pile they came
// from and clears the selection. It reports whether any cards were returned.
func (g *Game) ReplaceSelected() bool {
	if g.state != StateHolding {
		return false
	}
	sel := g.held
	g.state = StateIdle
	g.held = Selection{}

	if sel.Pile.Len() == 0 {
		return false
	}
	switch sel.Source {
	case KindDraw:
		if sel.exposed {
			g.DrawPile.hideTop()
		}
		if err := g.DrawPile.Replace(sel.Pile); err != nil {
			panic(err) // only single cards are ever picked up from the waste
		}
	case KindTableau:
		g.Tableau.Replace(sel.Pile, sel.Index)
	case KindFoundation:
		for sel.Pile.Len() > 0 {
			c, _ := sel.Pile.DrawCard()
			g.Foundation.restore(c, sel.Index)
		}
	}
	return true
}

// SetDownOn places the held run on a pile. On a tableau pile the run is
// split at the first card that attaches to the target, and only the cards
// from the top of the run down to that card move. On a foundation pile only
// the top held card moves. Whatever is still held afterwards goes back to
// its source, so the game is idle when SetDownOn returns.
func (g *Game) SetDownOn(kind PileKind, idx int) (bool, error) {
	if err := g.checkTarget(kind, idx); err != nil {
		return false, err
	}
	if g.state != StateHolding {
		return false, nil
	}

	held := g.held.Pile
	success := false
	switch kind {
	case KindTableau:
		if depth, ok := held.AttachDepth(g.Tableau.piles[idx], g.Tableau.method); ok {
			run, err := held.Draw(Exactly(depth + 1))
			if err != nil {
				return false, err
			}
			g.Tableau.Replace(run, idx)
			success = true
		}
	case KindFoundation:
		if c, ok := held.Top(); ok {
			added, err := g.Foundation.AddCard(c, At(idx))
			if err != nil {
				return false, err
			}
			if added {
				held.DrawCard()
				success = true
			}
		}
	}

	g.ReplaceSelected()
	g.Tableau.ShowTopCards()
	if success {
		g.recordMove()
	}
	return success, nil
}

// OnSelect performs a quick action from an idle game: the top card of the
// waste or of a tableau pile goes straight to a foundation if it fits, and
// selecting the deck deals.
func (g *Game) OnSelect(kind PileKind, idx int) (bool, error) {
	if err := g.checkTarget(kind, idx); err != nil {
		return false, err
	}
	if g.state != StateIdle {
		return false, nil
	}

	switch kind {
	case KindDraw:
		c, ok := g.DrawPile.PeekCard()
		if !ok {
			return false, nil
		}
		if added, _ := g.Foundation.AddCard(c, Auto()); !added {
			return false, nil
		}
		g.DrawPile.Pop()
	case KindTableau:
		c, ok := g.Tableau.PeekCard(idx)
		if !ok {
			return false, nil
		}
		if added, _ := g.Foundation.AddCard(c, Auto()); !added {
			return false, nil
		}
		g.Tableau.PopCard(idx)
		g.Tableau.ShowTopCards()
	case KindDeck:
		if g.DrawPile.StockLen()+g.DrawPile.WasteLen() == 0 {
			return false, nil
		}
		g.DrawPile.Deal()
	default:
		return false, nil
	}
	g.recordMove()
	return true, nil
}
