package agent

import (
	"testing"

	"github.com/jason-s-yu/solitaire/engine"
)

func card(s engine.Suit, r engine.Rank) engine.Card { return engine.NewCard(s, r) }

// fullSuit returns ace..upTo of s as a foundation pile, top card first.
func fullSuit(s engine.Suit, upTo engine.Rank) *engine.Pile {
	var cards []engine.Card
	for r := upTo; r >= engine.RankAceLow; r-- {
		cards = append(cards, card(s, r))
	}
	return engine.NewVisiblePile(cards...)
}

func newLayoutGame(t *testing.T, v engine.Variant, l engine.Layout) *engine.Game {
	t.Helper()
	if l.Tableau == nil {
		l.Tableau = make([]*engine.Pile, len(v.PileLengths))
	}
	g, err := engine.NewGameFromLayout(v, l)
	if err != nil {
		t.Fatalf("NewGameFromLayout: %v", err)
	}
	return g
}

// TestPlayWinsEndgame clears a nearly finished board from the tableau.
func TestPlayWinsEndgame(t *testing.T) {
	l := engine.Layout{Tableau: make([]*engine.Pile, 7)}
	l.Foundation[0] = fullSuit(engine.SuitSpades, engine.RankJack)
	l.Foundation[1] = fullSuit(engine.SuitHearts, engine.RankKing)
	l.Foundation[2] = fullSuit(engine.SuitClubs, engine.RankKing)
	l.Foundation[3] = fullSuit(engine.SuitDiamonds, engine.RankKing)
	l.Tableau[3] = engine.NewPile(card(engine.SuitSpades, engine.RankQueen), card(engine.SuitSpades, engine.RankKing))
	_ = l.Tableau[3].MakeVisible(0)
	g := newLayoutGame(t, engine.Klondike(), l)

	won, err := Play(g, 0)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !won || !g.IsDone() {
		t.Errorf("won=%v done=%v, want true true", won, g.IsDone())
	}
	if g.Moves() != 2 {
		t.Errorf("Moves = %d, want 2", g.Moves())
	}
}

// TestGreedyGivesUpAfterRecycles deals a single useless card until the
// recycle limit is reached.
func TestGreedyGivesUpAfterRecycles(t *testing.T) {
	g := newLayoutGame(t, engine.KlondikeDrawOne(), engine.Layout{
		Stock: engine.NewPile(card(engine.SuitSpades, engine.RankNine)),
	})

	won, err := Play(g, 0)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if won {
		t.Error("won an unwinnable game")
	}
	if !g.IsDone() {
		t.Error("Play should stop a game it cannot continue")
	}
	// deal, recycle, deal, recycle, deal
	if g.Moves() != 5 {
		t.Errorf("Moves = %d, want 5", g.Moves())
	}
}

func TestGreedyPrefersTableauRun(t *testing.T) {
	tab := make([]*engine.Pile, 7)
	tab[0] = engine.NewVisiblePile(card(engine.SuitHearts, engine.RankAceLow))
	tab[1] = engine.NewPile(card(engine.SuitHearts, engine.RankEight), card(engine.SuitClubs, engine.RankTwo))
	_ = tab[1].MakeVisible(0)
	tab[2] = engine.NewVisiblePile(card(engine.SuitSpades, engine.RankNine))
	g := newLayoutGame(t, engine.Klondike(), engine.Layout{Tableau: tab})

	before := g.Hash()
	acts, ok := NewGreedy().Next(g)
	if !ok {
		t.Fatal("Next found no move")
	}
	if g.Hash() != before {
		t.Error("Next left the game modified")
	}
	want := []engine.Action{
		{Type: engine.ActionPickup, Kind: engine.KindTableau, Index: 1},
		{Type: engine.ActionPlace, Kind: engine.KindTableau, Index: 2},
	}
	if len(acts) != len(want) || acts[0] != want[0] || acts[1] != want[1] {
		t.Errorf("Next = %v, want %v", acts, want)
	}
}

func TestGreedySkipsPointlessKingMove(t *testing.T) {
	tab := make([]*engine.Pile, 7)
	tab[0] = engine.NewVisiblePile(card(engine.SuitHearts, engine.RankKing))
	g := newLayoutGame(t, engine.Klondike(), engine.Layout{Tableau: tab})

	if acts, ok := NewGreedy().Next(g); ok {
		t.Errorf("Next = %v, want no move", acts)
	}
}

// TestGreedyAvoidsRepeatingPositions uses a loose variant in which a 5♥ could
// bounce between two sixes forever.
func TestGreedyAvoidsRepeatingPositions(t *testing.T) {
	v := engine.Variant{
		Name:            "loose",
		Stacking:        engine.StackingMethod{Rank: engine.RankDiff(1), Suit: engine.SuitAny, Blank: engine.BlankNever()},
		PileLengths:     []int{2, 1, 1},
		InitialVisible:  []int{2, 1, 1},
		FoundationStart: engine.RankAceLow,
		TableauPickup:   engine.PickupTopCard,
	}
	g := newLayoutGame(t, v, engine.Layout{Tableau: []*engine.Pile{
		engine.NewVisiblePile(card(engine.SuitHearts, engine.RankFive), card(engine.SuitDiamonds, engine.RankTen)),
		engine.NewVisiblePile(card(engine.SuitSpades, engine.RankSix)),
		engine.NewVisiblePile(card(engine.SuitClubs, engine.RankSix)),
	}})

	won, err := PlayWith(g, NewGreedy(), 50)
	if err != nil {
		t.Fatalf("PlayWith: %v", err)
	}
	if won {
		t.Error("won an unwinnable game")
	}
	// 5♥ onto 6♠, then onto 6♣; moving back would repeat a position
	if g.Moves() != 2 {
		t.Errorf("Moves = %d, want 2", g.Moves())
	}
}

func TestPlayWithRespectsMaxMoves(t *testing.T) {
	g, err := engine.NewGame(engine.Klondike(), 3)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := PlayWith(g, NewGreedy(), 4); err != nil {
		t.Fatalf("PlayWith: %v", err)
	}
	if !g.IsDone() {
		t.Error("game should be stopped at the move limit")
	}
	if g.Moves() > 4 {
		t.Errorf("Moves = %d, more than the limit allows", g.Moves())
	}
}

// TestPlayDealtGames runs whole games for several seeds and variants and
// checks every policy move is accepted.
func TestPlayDealtGames(t *testing.T) {
	for _, v := range []engine.Variant{engine.Klondike(), engine.KlondikeDrawOne(), engine.LaBelleLucie()} {
		for seed := uint64(1); seed <= 10; seed++ {
			g, err := engine.NewGame(v, seed)
			if err != nil {
				t.Fatalf("NewGame: %v", err)
			}
			won, err := Play(g, 2000)
			if err != nil {
				t.Fatalf("%s seed %d: %v", v.Name, seed, err)
			}
			if !g.IsDone() {
				t.Errorf("%s seed %d: game still running", v.Name, seed)
			}
			if won != g.HasWon() {
				t.Errorf("%s seed %d: won=%v HasWon=%v", v.Name, seed, won, g.HasWon())
			}
		}
	}
}
