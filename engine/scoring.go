package engine

// Points awarded by Score.
const (
	PointsPerFoundationCard = 10
	PointsPerRevealedCard   = 5
)

// Score returns the standard patience score of the current board: points for
// every card on a foundation and for every face-up tableau card.
func (g *Game) Score() int {
	s := g.Foundation.Count() * PointsPerFoundationCard
	for _, p := range g.Tableau.piles {
		s += p.VisibleCount() * PointsPerRevealedCard
	}
	return s
}

// Progress returns the fraction of the deck on the foundations, in [0, 1].
func (g *Game) Progress() float64 {
	return float64(g.Foundation.Count()) / DeckSize
}
