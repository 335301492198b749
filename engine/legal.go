package engine

// LegalActions returns every action that would currently succeed, in a fixed
// order: waste, tableau piles, foundation piles, deck. It does not mutate the
// game.
func (g *Game) LegalActions() []Action {
	var actions []Action
	switch g.state {
	case StateIdle:
		g.legalIdle(&actions)
	case StateHolding:
		g.legalHolding(&actions)
	}
	return actions
}

// legalIdle populates pickups and quick moves.
func (g *Game) legalIdle(actions *[]Action) {
	if g.DrawPile != nil && g.DrawPile.WasteLen() > 0 {
		*actions = append(*actions, Action{Type: ActionPickup, Kind: KindDraw})
		if c, ok := g.DrawPile.PeekCard(); ok && g.canFound(c) {
			*actions = append(*actions, Action{Type: ActionSelect, Kind: KindDraw})
		}
	}

	for i := 0; i < g.Tableau.NumPiles(); i++ {
		if run, _ := g.PeekPickup(KindTableau, i); run.Len() > 0 {
			*actions = append(*actions, Action{Type: ActionPickup, Kind: KindTableau, Index: i})
		}
		if c, ok := g.Tableau.PeekCard(i); ok && g.canFound(c) {
			*actions = append(*actions, Action{Type: ActionSelect, Kind: KindTableau, Index: i})
		}
	}

	for i := 0; i < NumFoundations; i++ {
		if g.Foundation.PileLen(i) > 0 {
			*actions = append(*actions, Action{Type: ActionPickup, Kind: KindFoundation, Index: i})
		}
	}

	if g.DrawPile != nil && g.DrawPile.StockLen()+g.DrawPile.WasteLen() > 0 {
		*actions = append(*actions, Action{Type: ActionSelect, Kind: KindDeck})
	}
}

// legalHolding populates placements of the held run, then cancel.
func (g *Game) legalHolding(actions *[]Action) {
	held := g.held.Pile
	for i := 0; i < g.Tableau.NumPiles(); i++ {
		if held.CanStackOn(g.Tableau.piles[i], g.Tableau.method) {
			*actions = append(*actions, Action{Type: ActionPlace, Kind: KindTableau, Index: i})
		}
	}
	if c, ok := held.Top(); ok {
		for i := 0; i < NumFoundations; i++ {
			if ok, _ := g.Foundation.CanAdd(c, At(i)); ok {
				*actions = append(*actions, Action{Type: ActionPlace, Kind: KindFoundation, Index: i})
			}
		}
	}
	*actions = append(*actions, Action{Type: ActionCancel})
}

func (g *Game) canFound(c Card) bool {
	ok, _ := g.Foundation.CanAdd(c, Auto())
	return ok
}
