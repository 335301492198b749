package engine

import (
	"errors"
	"testing"
)

func newDrawPile(t *testing.T, flip, vis, cards int) *DrawPile {
	t.Helper()
	d := NewDrawPile(flip, vis)
	deck := NewDeck(false)
	d.Setup(NewPile(deck[:cards]...))
	return d
}

func TestDrawPileDealCounts(t *testing.T) {
	d := newDrawPile(t, 3, 3, 7)

	if recycled := d.Deal(); recycled {
		t.Fatal("first deal should not recycle")
	}
	if d.StockLen() != 4 || d.WasteLen() != 3 {
		t.Errorf("stock/waste = %d/%d, want 4/3", d.StockLen(), d.WasteLen())
	}
	if got := d.Peek(); got.Len() != 3 {
		t.Errorf("Peek = %s, want 3 cards", got)
	}

	d.Deal()
	d.Deal()
	if d.StockLen() != 0 || d.WasteLen() != 7 {
		t.Errorf("stock/waste = %d/%d, want 0/7", d.StockLen(), d.WasteLen())
	}
	// the last deal only had one card to move, but the top three still show
	if got := d.Peek(); got.Len() != 3 {
		t.Errorf("Peek after short deal = %s, want 3 cards", got)
	}
	w := d.PeekWaste()
	if w.VisibleCount() != 3 || !w.IsVisible(0) || !w.IsVisible(2) || w.IsVisible(3) {
		t.Errorf("waste = %s, want the top 3 cards shown", w)
	}
}

func TestDrawPileDealShowsAtMostWaste(t *testing.T) {
	d := newDrawPile(t, 1, 3, 5)
	d.Deal()
	if got := d.PeekWaste().VisibleCount(); got != 1 {
		t.Errorf("visible after first deal = %d, want 1", got)
	}
	d.Deal()
	if got := d.PeekWaste().VisibleCount(); got != 2 {
		t.Errorf("visible after second deal = %d, want 2", got)
	}
	d.Deal()
	d.Deal()
	if got := d.PeekWaste().VisibleCount(); got != 3 {
		t.Errorf("visible after fourth deal = %d, want 3", got)
	}
}

// TestDrawPileRecycle verifies an empty stock is refilled from the waste in
// original deal order.
func TestDrawPileRecycle(t *testing.T) {
	d := newDrawPile(t, 1, 1, 3)
	first, _ := d.stock.Top()

	for i := 0; i < 3; i++ {
		d.Deal()
	}
	if !d.Deal() {
		t.Fatal("deal on empty stock should recycle")
	}
	if d.StockLen() != 3 || d.WasteLen() != 0 {
		t.Errorf("stock/waste = %d/%d, want 3/0", d.StockLen(), d.WasteLen())
	}
	if d.stock.VisibleCount() != 0 {
		t.Error("recycled stock must be face down")
	}
	if top, _ := d.stock.Top(); top != first {
		t.Errorf("recycled top = %s, want %s", top, first)
	}
	if d.Peek() != nil {
		t.Error("Peek of empty waste should be nil")
	}
}

func TestDrawPilePopRevealsNext(t *testing.T) {
	d := newDrawPile(t, 1, 1, 2)
	d.Deal()
	d.Deal()

	c, ok := d.Pop()
	if !ok {
		t.Fatal("Pop on non-empty waste failed")
	}
	if d.WasteLen() != 1 || !d.PeekWaste().IsVisible(0) {
		t.Errorf("waste after pop = %s, want one face-up card", d.PeekWaste())
	}
	if err := d.Replace(NewVisiblePile(c)); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if top, _ := d.PeekCard(); top != c {
		t.Errorf("top after Replace = %s, want %s", top, c)
	}
}

func TestDrawPileReplaceTooMany(t *testing.T) {
	d := newDrawPile(t, 3, 3, 5)
	err := d.Replace(NewVisiblePile(spade(RankTwo), spade(RankThree)))
	if !errors.Is(err, ErrReplaceTooMany) {
		t.Errorf("err = %v, want ErrReplaceTooMany", err)
	}
	if err := d.Replace(NewPile()); err != nil {
		t.Errorf("Replace(empty) = %v, want nil", err)
	}
	if d.WasteLen() != 0 {
		t.Errorf("WasteLen = %d, want 0", d.WasteLen())
	}
}
