package engine

import "testing"

func TestTableauSetupKlondike(t *testing.T) {
	v := Klondike()
	tab := NewTableau(v.Stacking, v.PileLengths, v.InitialVisible)
	stock := NewShuffledPile(false, 3)

	if err := tab.Setup(stock); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	for i := 0; i < tab.NumPiles(); i++ {
		if tab.PileLen(i) != i+1 {
			t.Errorf("pile %d len = %d, want %d", i, tab.PileLen(i), i+1)
		}
		p := tab.PeekAll(i)
		if p.VisibleCount() != 1 || !p.IsVisible(0) {
			t.Errorf("pile %d = %s, want only the top card face up", i, p)
		}
	}
	if stock.Len() != DeckSize-28 {
		t.Errorf("stock len = %d, want %d", stock.Len(), DeckSize-28)
	}
}

func TestTableauSetupShortStock(t *testing.T) {
	tab := NewTableau(klondikeMethod, []int{2, 2}, []int{1, 1})
	if err := tab.Setup(NewPile(spade(RankTwo), spade(RankThree), spade(RankFour))); err == nil {
		t.Error("Setup with too few cards should fail")
	}
}

func newTableauWith(t *testing.T, piles ...*Pile) *Tableau {
	t.Helper()
	lens := make([]int, len(piles))
	vis := repeat(1, len(piles))
	tab := NewTableau(klondikeMethod, lens, vis)
	copy(tab.piles, piles)
	return tab
}

func TestTableauPopPile(t *testing.T) {
	tab := newTableauWith(t, pileOf(t, []Card{heart(RankFour), spade(RankFive), diamond(RankNine), club(RankKing)}, 0, 1, 2))

	peek := tab.PeekPile(0)
	run := tab.PopPile(0)
	if !run.Equal(peek) {
		t.Errorf("PopPile = %s, PeekPile = %s", run, peek)
	}
	if run.Len() != 2 {
		t.Errorf("run = %s, want [4♥ 5♠]", run)
	}
	if tab.PileLen(0) != 2 {
		t.Errorf("remaining len = %d, want 2", tab.PileLen(0))
	}
}

func TestTableauAddCard(t *testing.T) {
	tab := newTableauWith(t, pileOf(t, []Card{club(RankNine)}, 0), NewPile())

	if tab.AddCard(NewVisiblePile(diamond(RankNine)), 0) {
		t.Error("9♦ should not go on 9♣")
	}
	if !tab.AddCard(NewVisiblePile(heart(RankEight)), 0) {
		t.Error("8♥ should go on 9♣")
	}
	if tab.PileLen(0) != 2 {
		t.Errorf("pile 0 len = %d, want 2", tab.PileLen(0))
	}
	if !tab.AddCard(NewVisiblePile(heart(RankFive)), 1) {
		t.Error("AddCard should accept any run on an empty pile")
	}
}

func TestTableauShowTopCards(t *testing.T) {
	tab := newTableauWith(t, NewPile(spade(RankTwo), spade(RankThree)), NewPile())
	if _, ok := tab.PeekCard(0); ok {
		t.Fatal("PeekCard of a hidden top should report false")
	}
	tab.ShowTopCards()
	if c, ok := tab.PeekCard(0); !ok || c != spade(RankTwo) {
		t.Errorf("PeekCard = (%s, %v), want 2♠", c, ok)
	}
	if tab.Peek(0).Len() != 1 {
		t.Errorf("Peek = %s, want one card", tab.Peek(0))
	}
	tab.ShowTopCardsN(5)
	if tab.Peek(0).Len() != 2 {
		t.Errorf("Peek after ShowTopCardsN = %s, want two cards", tab.Peek(0))
	}
}
