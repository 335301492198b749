package agent

import "github.com/jason-s-yu/solitaire/engine"

const (
	CardDim  = int(NumLocations)          // per-card one-hot dimension
	InputDim = engine.DeckSize*CardDim + 4 // 264
)

// Encode writes the observation of g into out. Only what a player can see is
// encoded: a face-down card is LocUnknown no matter where it lies.
// out is zeroed internally before writing.
//
// Layout:
//
//	[0-259]   52 cards × 5-dim location one-hot, indexed suit-major ace first
//	[260]     stock size / 52
//	[261]     waste size / 52
//	[262]     foundation progress in [0, 1]
//	[263]     1 while holding a selection
func Encode(g *engine.Game, out *[InputDim]float32) {
	*out = [InputDim]float32{}

	var loc [engine.DeckSize]Location
	mark := func(p *engine.Pile, l Location) {
		for i := 0; i < p.Len(); i++ {
			if p.IsVisible(i) {
				loc[cardIndex(p.Card(i))] = l
			}
		}
	}

	for i := 0; i < g.Tableau.NumPiles(); i++ {
		mark(g.Tableau.PeekAll(i), LocTableau)
	}
	for i := 0; i < engine.NumFoundations; i++ {
		p, _ := g.Foundation.PeekAll(i)
		mark(p, LocFoundation)
	}
	var stock, waste int
	if g.DrawPile != nil {
		mark(g.DrawPile.PeekWaste(), LocWaste)
		stock, waste = g.DrawPile.StockLen(), g.DrawPile.WasteLen()
	}
	sel, holding := g.Selected()
	if holding {
		mark(sel.Pile, LocHeld)
	}

	offset := 0
	for _, l := range loc {
		out[offset+int(l)] = 1.0
		offset += CardDim
	}
	// offset = 260

	out[offset] = float32(stock) / engine.DeckSize
	out[offset+1] = float32(waste) / engine.DeckSize
	out[offset+2] = float32(g.Progress())
	if holding {
		out[offset+3] = 1.0
	}
}
