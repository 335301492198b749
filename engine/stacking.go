package engine

// RankRule constrains the signed rank difference between a placed card and
// the card it lands on.
type RankRule struct {
	constrained bool
	diff        int
}

// AnyRank places no constraint on rank.
func AnyRank() RankRule { return RankRule{} }

// RankDiff requires target.Rank - card.Rank == d. Descending tableau builds
// use 1, ascending foundation builds use -1.
func RankDiff(d int) RankRule { return RankRule{constrained: true, diff: d} }

// Diff returns the required difference and whether one is set.
func (r RankRule) Diff() (int, bool) { return r.diff, r.constrained }

func (r RankRule) allows(card, target Card) bool {
	return !r.constrained || target.Distance(card) == r.diff
}

// SuitRelation is the suit/color constraint between adjacent stacked cards.
type SuitRelation uint8

const (
	SuitAny         SuitRelation = iota // no constraint
	SuitAlternating                     // colors differ
	SuitColor                           // colors match
	SuitSame                            // suits match
)

func (s SuitRelation) allows(card, target Card) bool {
	switch s {
	case SuitAlternating:
		return card.Color() != target.Color()
	case SuitColor:
		return card.Color() == target.Color()
	case SuitSame:
		return card.Suit == target.Suit
	default:
		return true
	}
}

type blankMode uint8

const (
	blankNever blankMode = iota
	blankAny
	blankRank
)

// BlankRule decides which cards may start an empty pile.
type BlankRule struct {
	mode blankMode
	rank Rank
}

// BlankNever rejects every card on an empty pile.
func BlankNever() BlankRule { return BlankRule{mode: blankNever} }

// BlankAny accepts every card on an empty pile.
func BlankAny() BlankRule { return BlankRule{mode: blankAny} }

// BlankOnly accepts only cards of rank r on an empty pile.
func BlankOnly(r Rank) BlankRule { return BlankRule{mode: blankRank, rank: r} }

// Accepts reports whether c may be placed on an empty pile.
func (b BlankRule) Accepts(c Card) bool {
	switch b.mode {
	case blankAny:
		return true
	case blankRank:
		return c.Rank == b.rank
	default:
		return false
	}
}

// StackingMethod describes when one card may be placed onto another.
type StackingMethod struct {
	Rank  RankRule
	Suit  SuitRelation
	Blank BlankRule
}

// foundationMethod builds upward by one in the same suit.
var foundationMethod = StackingMethod{Rank: RankDiff(-1), Suit: SuitSame, Blank: BlankNever()}

// CanStackOn reports whether c may be placed directly on target under m.
func (c Card) CanStackOn(target Card, m StackingMethod) bool {
	return m.Rank.allows(c, target) && m.Suit.allows(c, target)
}

// CanStackOnPile reports whether c may be placed on top of target. An empty
// target defers to the method's blank rule; a target whose top card is face
// down never accepts a card.
func (c Card) CanStackOnPile(target *Pile, m StackingMethod) bool {
	if target == nil || target.Len() == 0 {
		return m.Blank.Accepts(c)
	}
	if !target.IsVisible(0) {
		return false
	}
	return c.CanStackOn(target.cards[0], m)
}
