package engine

import "fmt"

// NumFoundations is the number of foundation piles, one per suit.
const NumFoundations = 4

// SuitSize is the number of cards a complete foundation pile holds.
const SuitSize = 13

// PileSelector picks a specific pile or lets the container choose.
type PileSelector struct {
	auto  bool
	index int
}

// At selects pile i.
func At(i int) PileSelector { return PileSelector{index: i} }

// Auto lets the container choose the pile.
func Auto() PileSelector { return PileSelector{auto: true} }

// Index returns the selected index and false for Auto.
func (s PileSelector) Index() (int, bool) { return s.index, !s.auto }

// Foundation holds four piles built upward by suit from a starting rank.
type Foundation struct {
	piles     [NumFoundations]*Pile
	startRank Rank
}

// NewFoundation returns an empty foundation. With start == RankAny an empty
// pile accepts any card.
func NewFoundation(start Rank) *Foundation {
	f := &Foundation{startRank: start}
	f.Setup()
	return f
}

// Setup (re)initializes four empty piles.
func (f *Foundation) Setup() {
	for i := range f.piles {
		f.piles[i] = NewPile()
	}
}

// StartRank returns the configured starting rank.
func (f *Foundation) StartRank() Rank { return f.startRank }

func (f *Foundation) checkIndex(i int) error {
	if i < 0 || i >= NumFoundations {
		return fmt.Errorf("%w: foundation %d", ErrPileIndex, i)
	}
	return nil
}

// resolve maps a selector to a pile index. Auto picks the non-empty pile of
// the card's suit, else the first empty pile. ok is false when Auto finds
// neither.
func (f *Foundation) resolve(c Card, sel PileSelector) (int, bool, error) {
	if i, ok := sel.Index(); ok {
		if err := f.checkIndex(i); err != nil {
			return 0, false, err
		}
		return i, true, nil
	}
	empty := -1
	for i, p := range f.piles {
		top, ok := p.Top()
		if !ok {
			if empty < 0 {
				empty = i
			}
			continue
		}
		if top.Suit == c.Suit {
			return i, true, nil
		}
	}
	return empty, empty >= 0, nil
}

func (f *Foundation) accepts(c Card, i int) bool {
	p := f.piles[i]
	if p.Len() == 0 {
		return f.startRank == RankAny || c.Rank == f.startRank
	}
	return c.CanStackOnPile(p, foundationMethod)
}

// CanAdd reports whether AddCard would succeed, without mutating anything.
func (f *Foundation) CanAdd(c Card, sel PileSelector) (bool, error) {
	i, ok, err := f.resolve(c, sel)
	if err != nil || !ok {
		return false, err
	}
	return f.accepts(c, i), nil
}

// AddCard places c face up on the selected pile if it is the pile's next
// card: the starting rank on an empty pile, otherwise one rank above the top
// card in the same suit. It returns false and changes nothing otherwise.
func (f *Foundation) AddCard(c Card, sel PileSelector) (bool, error) {
	i, ok, err := f.resolve(c, sel)
	if err != nil || !ok {
		return false, err
	}
	if !f.accepts(c, i) {
		return false, nil
	}
	f.piles[i].PushCard(c, true)
	return true, nil
}

// restore puts c back on pile i without checking rules. It is only used to
// undo a pickup from that same pile.
func (f *Foundation) restore(c Card, i int) {
	f.piles[i].PushCard(c, true)
}

// Pop removes the top card of pile i.
func (f *Foundation) Pop(i int) (Card, bool, error) {
	if err := f.checkIndex(i); err != nil {
		return Card{}, false, err
	}
	c, ok := f.piles[i].DrawCard()
	return c, ok, nil
}

// Peek returns the top card of pile i.
func (f *Foundation) Peek(i int) (Card, bool, error) {
	if err := f.checkIndex(i); err != nil {
		return Card{}, false, err
	}
	c, ok := f.piles[i].Top()
	return c, ok, nil
}

// PeekAll returns a copy of pile i for display.
func (f *Foundation) PeekAll(i int) (*Pile, error) {
	if err := f.checkIndex(i); err != nil {
		return nil, err
	}
	return f.piles[i].Clone(), nil
}

// PileLen returns the number of cards on pile i.
func (f *Foundation) PileLen(i int) int { return f.piles[i].Len() }

// Count returns the number of cards across all piles.
func (f *Foundation) Count() int {
	n := 0
	for _, p := range f.piles {
		n += p.Len()
	}
	return n
}

// IsDone reports whether every pile holds a complete suit.
func (f *Foundation) IsDone() bool {
	for _, p := range f.piles {
		if p.Len() < SuitSize {
			return false
		}
	}
	return true
}

func (f *Foundation) clone() *Foundation {
	out := &Foundation{startRank: f.startRank}
	for i, p := range f.piles {
		out.piles[i] = p.Clone()
	}
	return out
}
