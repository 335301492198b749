package engine

import "testing"

// allActions enumerates every well-formed pickup and select for g.
func allActions(g *Game) []Action {
	var out []Action
	kinds := []PileKind{KindTableau, KindFoundation}
	if g.DrawPile != nil {
		kinds = append(kinds, KindDraw, KindDeck)
	}
	for _, k := range kinds {
		n := 1
		switch k {
		case KindTableau:
			n = g.Tableau.NumPiles()
		case KindFoundation:
			n = NumFoundations
		}
		for i := 0; i < n; i++ {
			out = append(out,
				Action{Type: ActionPickup, Kind: k, Index: i},
				Action{Type: ActionSelect, Kind: k, Index: i})
		}
	}
	return out
}

func containsAction(actions []Action, a Action) bool {
	for _, b := range actions {
		if a == b {
			return true
		}
	}
	return false
}

// TestLegalActionsSucceed plays pseudo-random games and checks that every
// listed action succeeds from the current position, that unlisted idle
// actions fail without touching the board, and that no card is ever lost.
func TestLegalActionsSucceed(t *testing.T) {
	for _, v := range []Variant{Klondike(), KlondikeDrawOne(), LaBelleLucie()} {
		for seed := uint64(1); seed <= 8; seed++ {
			g, err := NewGame(v, seed)
			if err != nil {
				t.Fatalf("NewGame: %v", err)
			}
			rng := newXorshift(seed)

			for step := 0; step < 300 && !g.IsDone(); step++ {
				legal := g.LegalActions()
				if len(legal) == 0 {
					break
				}
				snap := g.Save()
				for _, a := range legal {
					ok, err := g.Apply(a)
					if err != nil || !ok {
						t.Fatalf("%s seed %d step %d: legal %s = (%v, %v)", v.Name, seed, step, a, ok, err)
					}
					if totalCards(g) != DeckSize {
						t.Fatalf("%s seed %d: %s lost cards: %d", v.Name, seed, a, totalCards(g))
					}
					g.Restore(snap)
				}

				if g.State() == StateIdle {
					before := copyGame(g)
					for _, a := range allActions(g) {
						if containsAction(legal, a) {
							continue
						}
						ok, err := g.Apply(a)
						if err != nil || ok {
							t.Fatalf("%s seed %d: unlisted %s = (%v, %v)", v.Name, seed, a, ok, err)
						}
						if !boardEqual(g, before) {
							t.Fatalf("%s seed %d: failed %s changed the board", v.Name, seed, a)
						}
					}
				}

				a := legal[rng.next()%uint64(len(legal))]
				if _, err := g.Apply(a); err != nil {
					t.Fatalf("apply %s: %v", a, err)
				}
			}
		}
	}
}

func TestLegalActionsHoldingEndsWithCancel(t *testing.T) {
	g := newEmptyGame(t, Klondike())
	g.Tableau.piles[0] = NewVisiblePile(heart(RankAceLow))
	g.Tableau.piles[1] = NewVisiblePile(spade(RankTwo))
	mustApply(t, g, Action{Type: ActionPickup, Kind: KindTableau, Index: 0})

	legal := g.LegalActions()
	if len(legal) == 0 || legal[len(legal)-1].Type != ActionCancel {
		t.Fatalf("legal = %v, want cancel last", legal)
	}
	if !containsAction(legal, Action{Type: ActionPlace, Kind: KindTableau, Index: 1}) {
		t.Error("A♥ on 2♠ should be listed")
	}
	for i := 0; i < NumFoundations; i++ {
		if !containsAction(legal, Action{Type: ActionPlace, Kind: KindFoundation, Index: i}) {
			t.Errorf("ace on empty foundation %d should be listed", i)
		}
	}
}

func TestLegalActionsIdleListsQuickMoves(t *testing.T) {
	g := newEmptyGame(t, Klondike())
	g.Tableau.piles[2] = NewVisiblePile(club(RankAceLow))

	legal := g.LegalActions()
	want := []Action{
		{Type: ActionPickup, Kind: KindTableau, Index: 2},
		{Type: ActionSelect, Kind: KindTableau, Index: 2},
	}
	for _, a := range want {
		if !containsAction(legal, a) {
			t.Errorf("missing %s in %v", a, legal)
		}
	}
	if containsAction(legal, Action{Type: ActionSelect, Kind: KindDeck}) {
		t.Error("deck select listed with empty stock and waste")
	}
}
