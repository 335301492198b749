package engine

import "fmt"

// DrawPile is a face-down stock and the waste it is dealt onto.
type DrawPile struct {
	stock      *Pile
	waste      *Pile
	flipAmount int
	numVisible int
}

// NewDrawPile returns an empty draw pile that deals flipAmount cards at a
// time and shows up to numVisible of the waste.
func NewDrawPile(flipAmount, numVisible int) *DrawPile {
	return &DrawPile{
		stock:      NewPile(),
		waste:      NewPile(),
		flipAmount: flipAmount,
		numVisible: numVisible,
	}
}

// Setup takes ownership of stock as the face-down reserve and clears the waste.
func (d *DrawPile) Setup(stock *Pile) {
	d.stock = stock
	d.stock.HideAll()
	d.waste = NewPile()
}

// FlipAmount returns how many cards a deal moves.
func (d *DrawPile) FlipAmount() int { return d.flipAmount }

// NumVisible returns how many waste cards a deal shows at most.
func (d *DrawPile) NumVisible() int { return d.numVisible }

// StockLen returns the number of cards left in the stock.
func (d *DrawPile) StockLen() int { return d.stock.Len() }

// WasteLen returns the number of cards in the waste.
func (d *DrawPile) WasteLen() int { return d.waste.Len() }

// Deal moves up to FlipAmount cards from the stock onto the waste and shows
// the top NumVisible waste cards. With an empty stock it instead turns the
// waste over to form a new face-down stock. It reports whether the stock was
// recycled.
func (d *DrawPile) Deal() (recycled bool) {
	d.waste.HideAll()
	if d.stock.Len() == 0 {
		d.stock = d.waste.Reversed()
		d.waste = NewPile()
		return true
	}
	n := min(d.flipAmount, d.stock.Len())
	if err := d.stock.MoveTo(d.waste, Exactly(n)); err != nil {
		panic(fmt.Sprintf("draw pile: %v", err)) // n is bounded by stock length
	}
	d.waste.HideAll()
	for i := 0; i < min(d.numVisible, d.waste.Len()); i++ {
		d.waste.visible[i] = true
	}
	return false
}

// Pop removes the top waste card. The card beneath it becomes playable and
// is turned face up; see hideTop for undoing that.
func (d *DrawPile) Pop() (Card, bool) {
	c, ok := d.waste.DrawCard()
	if ok && d.waste.Len() > 0 {
		d.waste.visible[0] = true
	}
	return c, ok
}

// exposesHidden reports whether Pop would turn a face-down card up.
func (d *DrawPile) exposesHidden() bool {
	return d.waste.Len() > 1 && !d.waste.visible[1]
}

// hideTop turns the top waste card face down again.
func (d *DrawPile) hideTop() {
	if d.waste.Len() > 0 {
		d.waste.visible[0] = false
	}
}

// PeekCard returns the top waste card.
func (d *DrawPile) PeekCard() (Card, bool) { return d.waste.Top() }

// Peek returns the shown part of the waste, or nil if the waste is empty.
func (d *DrawPile) Peek() *Pile {
	if d.waste.Len() == 0 {
		return nil
	}
	run, _ := d.waste.SplitByVisible()
	if run.Len() > d.numVisible {
		run, _ = run.Peek(Exactly(d.numVisible))
	}
	return run
}

// PeekWaste returns a copy of the whole waste for display.
func (d *DrawPile) PeekWaste() *Pile { return d.waste.Clone() }

// Replace returns a single card to the top of the waste, face up.
func (d *DrawPile) Replace(p *Pile) error {
	if p.Len() > 1 {
		return fmt.Errorf("%w: got %d", ErrReplaceTooMany, p.Len())
	}
	if p.Len() == 0 {
		return nil
	}
	d.waste.Push(p)
	d.waste.visible[0] = true
	return nil
}

func (d *DrawPile) clone() *DrawPile {
	return &DrawPile{
		stock:      d.stock.Clone(),
		waste:      d.waste.Clone(),
		flipAmount: d.flipAmount,
		numVisible: d.numVisible,
	}
}
