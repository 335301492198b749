package engine

// Hash returns a 64-bit FNV-1a hash of the visible position: every card with
// its face, pile by pile, plus the held selection. Two games with equal
// boards hash equally regardless of move count.
func (g *Game) Hash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	mix := func(v uint64) {
		h ^= v
		h *= prime
	}
	pile := func(tag uint64, p *Pile) {
		mix(tag<<32 | uint64(p.Len()))
		for i := 0; i < p.Len(); i++ {
			v := uint64(p.cards[i].Suit)<<8 | uint64(p.cards[i].Rank)
			if p.visible[i] {
				v |= 1 << 16
			}
			mix(v)
		}
	}

	for i, p := range g.Tableau.piles {
		pile(uint64(KindTableau)<<8|uint64(i), p)
	}
	for i, p := range g.Foundation.piles {
		pile(uint64(KindFoundation)<<8|uint64(i), p)
	}
	if g.DrawPile != nil {
		pile(uint64(KindDeck)<<8, g.DrawPile.stock)
		pile(uint64(KindDraw)<<8, g.DrawPile.waste)
	}
	if g.state == StateHolding {
		mix(uint64(g.held.Source)<<8 | uint64(g.held.Index))
		pile(0xff, g.held.Pile)
	}
	return h
}
