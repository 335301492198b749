package engine

import (
	"fmt"
	"strings"
)

// DrawCount says how many cards a Draw/Peek/MoveTo takes from the front of a
// pile: an exact number, or everything that remains.
type DrawCount struct {
	all bool
	n   int
}

// Exactly takes n cards. Asking for more than the pile holds is an error.
func Exactly(n int) DrawCount { return DrawCount{n: n} }

// Remainder takes every card in the pile.
func Remainder() DrawCount { return DrawCount{all: true} }

func (d DrawCount) resolve(length int) (int, error) {
	if d.all {
		return length, nil
	}
	if d.n < 0 || d.n > length {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, d.n, length)
	}
	return d.n, nil
}

// Pile is an ordered run of cards with a visibility flag per position.
// Index 0 is the top of the pile, the most recently placed card. The two
// slices always have equal length and are reindexed together, so visibility
// follows its card through draws and insertions.
//
// A Pile is owned by exactly one container at a time. Operations that move
// cards between piles transfer them; they never alias the backing arrays.
type Pile struct {
	cards   []Card
	visible []bool
}

// NewPile returns a pile of face-down cards, cards[0] on top.
func NewPile(cards ...Card) *Pile {
	p := &Pile{
		cards:   append([]Card(nil), cards...),
		visible: make([]bool, len(cards)),
	}
	return p
}

// NewVisiblePile returns a pile of face-up cards, cards[0] on top.
func NewVisiblePile(cards ...Card) *Pile {
	p := NewPile(cards...)
	p.ShowAll()
	return p
}

// Len returns the number of cards. A nil pile is empty.
func (p *Pile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.cards)
}

func (p *Pile) index(i int) (int, error) {
	n := p.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
	}
	return i, nil
}

// Card returns the card at position i; negative indices count from the
// bottom. It panics if i is out of range, like a slice index.
func (p *Pile) Card(i int) Card {
	idx, err := p.index(i)
	if err != nil {
		panic(err)
	}
	return p.cards[idx]
}

// IsVisible reports whether position i is face up. Out-of-range positions
// are reported as hidden.
func (p *Pile) IsVisible(i int) bool {
	idx, err := p.index(i)
	if err != nil {
		return false
	}
	return p.visible[idx]
}

// Cards returns a copy of the cards, top first.
func (p *Pile) Cards() []Card {
	if p == nil {
		return nil
	}
	return append([]Card(nil), p.cards...)
}

// Top returns the top card.
func (p *Pile) Top() (Card, bool) {
	if p.Len() == 0 {
		return Card{}, false
	}
	return p.cards[0], true
}

// Bottom returns the bottom card.
func (p *Pile) Bottom() (Card, bool) {
	if p.Len() == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Clone returns an independent copy.
func (p *Pile) Clone() *Pile {
	if p == nil {
		return NewPile()
	}
	return &Pile{
		cards:   append([]Card(nil), p.cards...),
		visible: append([]bool(nil), p.visible...),
	}
}

// Equal reports whether both piles hold the same cards in the same order with
// the same visibility.
func (p *Pile) Equal(o *Pile) bool {
	if p.Len() != o.Len() {
		return false
	}
	for i := 0; i < p.Len(); i++ {
		if p.cards[i] != o.cards[i] || p.visible[i] != o.visible[i] {
			return false
		}
	}
	return true
}

// Contains reports whether c is in the pile.
func (p *Pile) Contains(c Card) bool {
	for i := 0; i < p.Len(); i++ {
		if p.cards[i] == c {
			return true
		}
	}
	return false
}

// slice copies positions [from, to) into a new pile.
func (p *Pile) slice(from, to int) *Pile {
	return &Pile{
		cards:   append([]Card(nil), p.cards[from:to]...),
		visible: append([]bool(nil), p.visible[from:to]...),
	}
}

// Draw removes the front n cards and returns them as a pile, preserving their
// order and visibility. On error the pile is unchanged.
func (p *Pile) Draw(n DrawCount) (*Pile, error) {
	k, err := n.resolve(p.Len())
	if err != nil {
		return nil, err
	}
	out := p.slice(0, k)
	p.cards = append([]Card(nil), p.cards[k:]...)
	p.visible = append([]bool(nil), p.visible[k:]...)
	return out, nil
}

// DrawCard removes and returns the top card.
func (p *Pile) DrawCard() (Card, bool) {
	if p.Len() == 0 {
		return Card{}, false
	}
	c := p.cards[0]
	p.cards = append([]Card(nil), p.cards[1:]...)
	p.visible = append([]bool(nil), p.visible[1:]...)
	return c, true
}

// Peek is Draw without removing anything.
func (p *Pile) Peek(n DrawCount) (*Pile, error) {
	k, err := n.resolve(p.Len())
	if err != nil {
		return nil, err
	}
	return p.slice(0, k), nil
}

// PeekCard returns the top card without removing it.
func (p *Pile) PeekCard() (Card, bool) { return p.Top() }

// MoveTo transfers the front n cards onto the front of dst, in order and with
// their visibility.
func (p *Pile) MoveTo(dst *Pile, n DrawCount) error {
	moved, err := p.Draw(n)
	if err != nil {
		return err
	}
	dst.Push(moved)
	return nil
}

// Push places top's cards on top of p and leaves top empty.
func (p *Pile) Push(top *Pile) {
	if top.Len() == 0 {
		return
	}
	p.cards = append(append([]Card(nil), top.cards...), p.cards...)
	p.visible = append(append([]bool(nil), top.visible...), p.visible...)
	top.cards, top.visible = nil, nil
}

// PushCard places a single card on top of p.
func (p *Pile) PushCard(c Card, visible bool) {
	p.cards = append([]Card{c}, p.cards...)
	p.visible = append([]bool{visible}, p.visible...)
}

// Concat returns a new pile with top's cards placed above bottom's. Neither
// argument is modified.
func Concat(top, bottom *Pile) *Pile {
	out := bottom.Clone()
	out.Push(top.Clone())
	return out
}

// SetVisible sets the visibility of position i; negative indices count from
// the bottom.
func (p *Pile) SetVisible(i int, visible bool) error {
	idx, err := p.index(i)
	if err != nil {
		return err
	}
	p.visible[idx] = visible
	return nil
}

// MakeVisible turns position i face up.
func (p *Pile) MakeVisible(i int) error { return p.SetVisible(i, true) }

// MakeHidden turns position i face down.
func (p *Pile) MakeHidden(i int) error { return p.SetVisible(i, false) }

// Flip toggles position i.
func (p *Pile) Flip(i int) error {
	idx, err := p.index(i)
	if err != nil {
		return err
	}
	p.visible[idx] = !p.visible[idx]
	return nil
}

// HideAll turns every card face down.
func (p *Pile) HideAll() {
	for i := range p.visible {
		p.visible[i] = false
	}
}

// ShowAll turns every card face up.
func (p *Pile) ShowAll() {
	for i := range p.visible {
		p.visible[i] = true
	}
}

// VisibleCount returns the number of face-up cards anywhere in the pile.
func (p *Pile) VisibleCount() int {
	n := 0
	for i := 0; i < p.Len(); i++ {
		if p.visible[i] {
			n++
		}
	}
	return n
}

// LastVisibleIndex returns the highest k such that positions 0..k are all
// face up. ok is false when the pile is empty or its top card is hidden.
func (p *Pile) LastVisibleIndex() (k int, ok bool) {
	if p.Len() == 0 || !p.visible[0] {
		return 0, false
	}
	for k+1 < len(p.visible) && p.visible[k+1] {
		k++
	}
	return k, true
}

// SplitByVisible returns the face-up prefix and everything below it as two
// new piles. Concat(run, rest) reconstructs p.
func (p *Pile) SplitByVisible() (run, rest *Pile) {
	cut := 0
	if k, ok := p.LastVisibleIndex(); ok {
		cut = k + 1
	}
	return p.slice(0, cut), p.slice(cut, p.Len())
}

// runLength returns the length of the longest face-up prefix in which every
// card stacks on the one below it under m.
func (p *Pile) runLength(m StackingMethod) int {
	if p.Len() == 0 || !p.visible[0] {
		return 0
	}
	n := 1
	for n < len(p.cards) && p.visible[n] && p.cards[n-1].CanStackOn(p.cards[n], m) {
		n++
	}
	return n
}

// SplitByStackable returns the longest movable run on top of p and the rest
// of the pile. The run stops at the first hidden card or the first adjacent
// pair that does not stack under m.
func (p *Pile) SplitByStackable(m StackingMethod) (run, rest *Pile) {
	cut := p.runLength(m)
	return p.slice(0, cut), p.slice(cut, p.Len())
}

// AttachDepth walks down the run on top of p and returns the index of the
// first card that may be placed on target. Moving cards 0..depth then puts a
// valid run on target; cards below depth stay behind. ok is false if the walk
// reaches a hidden card, a broken run, or the end of the pile first.
func (p *Pile) AttachDepth(target *Pile, m StackingMethod) (depth int, ok bool) {
	for i := 0; i < p.Len(); i++ {
		if !p.visible[i] {
			return 0, false
		}
		if i > 0 && !p.cards[i-1].CanStackOn(p.cards[i], m) {
			return 0, false
		}
		if p.cards[i].CanStackOnPile(target, m) {
			return i, true
		}
	}
	return 0, false
}

// CanStackOn reports whether some prefix of p's run may be placed on target.
func (p *Pile) CanStackOn(target *Pile, m StackingMethod) bool {
	_, ok := p.AttachDepth(target, m)
	return ok
}

// Reversed returns p in reverse order with every card face down.
func (p *Pile) Reversed() *Pile {
	n := p.Len()
	out := &Pile{cards: make([]Card, n), visible: make([]bool, n)}
	for i := 0; i < n; i++ {
		out.cards[i] = p.cards[n-1-i]
	}
	return out
}

// String renders the pile top first; face-down cards are parenthesised.
func (p *Pile) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < p.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if p.visible[i] {
			b.WriteString(p.cards[i].String())
		} else {
			b.WriteString("(" + p.cards[i].String() + ")")
		}
	}
	b.WriteByte(']')
	return b.String()
}
