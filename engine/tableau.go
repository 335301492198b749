package engine

import "fmt"

// Tableau is the row of working piles.
type Tableau struct {
	method         StackingMethod
	piles          []*Pile
	pileLens       []int
	initialVisible []int
}

// NewTableau returns a tableau with len(pileLens) empty piles. pileLens[i]
// cards are dealt to pile i by Setup, of which the top initialVisible[i] are
// turned face up.
func NewTableau(m StackingMethod, pileLens, initialVisible []int) *Tableau {
	t := &Tableau{
		method:         m,
		pileLens:       append([]int(nil), pileLens...),
		initialVisible: append([]int(nil), initialVisible...),
	}
	t.piles = make([]*Pile, len(pileLens))
	for i := range t.piles {
		t.piles[i] = NewPile()
	}
	return t
}

// Method returns the stacking method governing the tableau.
func (t *Tableau) Method() StackingMethod { return t.method }

// NumPiles returns the number of piles.
func (t *Tableau) NumPiles() int { return len(t.piles) }

// PileLen returns the number of cards on pile i.
func (t *Tableau) PileLen(i int) int { return t.piles[i].Len() }

func (t *Tableau) checkIndex(i int) error {
	if i < 0 || i >= len(t.piles) {
		return fmt.Errorf("%w: tableau %d", ErrPileIndex, i)
	}
	return nil
}

// Setup deals from stock round-robin, one face-down card per pile per pass,
// until every pile reaches its configured length, then reveals the configured
// number of top cards.
func (t *Tableau) Setup(stock *Pile) error {
	for i := range t.piles {
		t.piles[i] = NewPile()
	}
	for dealt := true; dealt; {
		dealt = false
		for i, p := range t.piles {
			if p.Len() >= t.pileLens[i] {
				continue
			}
			c, ok := stock.DrawCard()
			if !ok {
				return fmt.Errorf("dealing tableau pile %d: %w", i, ErrNotEnoughCards)
			}
			p.PushCard(c, false)
			dealt = true
		}
	}
	t.ShowTopCards()
	return nil
}

// PopCard removes the top card of pile i.
func (t *Tableau) PopCard(i int) (Card, bool) { return t.piles[i].DrawCard() }

// PopPile removes the movable run from the top of pile i and returns it. The
// pile keeps the remainder.
func (t *Tableau) PopPile(i int) *Pile {
	run, rest := t.piles[i].SplitByStackable(t.method)
	t.piles[i] = rest
	return run
}

// PeekPile returns a copy of the run PopPile would take.
func (t *Tableau) PeekPile(i int) *Pile {
	run, _ := t.piles[i].SplitByStackable(t.method)
	return run
}

// PeekCard returns the top card of pile i if it is face up.
func (t *Tableau) PeekCard(i int) (Card, bool) {
	if !t.piles[i].IsVisible(0) {
		return Card{}, false
	}
	return t.piles[i].Top()
}

// Peek returns a copy of the face-up prefix of pile i.
func (t *Tableau) Peek(i int) *Pile {
	run, _ := t.piles[i].SplitByVisible()
	return run
}

// PeekAll returns a copy of all of pile i for display.
func (t *Tableau) PeekAll(i int) *Pile { return t.piles[i].Clone() }

// Replace puts pile on top of pile i unconditionally. It is used to return a
// held run to where it came from.
func (t *Tableau) Replace(pile *Pile, i int) { t.piles[i].Push(pile) }

// AddCard places pile on top of pile i if the target is empty or the run may
// be stacked on it.
func (t *Tableau) AddCard(pile *Pile, i int) bool {
	if t.piles[i].Len() == 0 || pile.CanStackOn(t.piles[i], t.method) {
		t.Replace(pile, i)
		return true
	}
	return false
}

// ShowTopCards turns up to the configured number of top cards of every pile
// face up.
func (t *Tableau) ShowTopCards() {
	for i := range t.piles {
		t.showTop(i, t.initialVisible[i])
	}
}

// ShowTopCardsN turns up to n top cards of every pile face up.
func (t *Tableau) ShowTopCardsN(n int) {
	for i := range t.piles {
		t.showTop(i, n)
	}
}

func (t *Tableau) showTop(i, n int) {
	p := t.piles[i]
	for j := 0; j < n && j < p.Len(); j++ {
		p.visible[j] = true
	}
}

// Count returns the number of cards across all piles.
func (t *Tableau) Count() int {
	n := 0
	for _, p := range t.piles {
		n += p.Len()
	}
	return n
}

func (t *Tableau) clone() *Tableau {
	out := &Tableau{
		method:         t.method,
		pileLens:       t.pileLens,
		initialVisible: t.initialVisible,
		piles:          make([]*Pile, len(t.piles)),
	}
	for i, p := range t.piles {
		out.piles[i] = p.Clone()
	}
	return out
}
