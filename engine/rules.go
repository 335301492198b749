package engine

import (
	"fmt"
	"strings"
)

// PickupMode selects what a pickup from a tableau pile takes.
type PickupMode uint8

const (
	PickupRun     PickupMode = iota // the whole movable run
	PickupTopCard                   // only the top card
)

// DrawRules configures the stock/waste pair.
type DrawRules struct {
	FlipAmount int // cards moved per deal
	NumVisible int // waste cards shown after a deal
}

// Variant holds the rules of one solitaire game. Behaviour is selected by
// these fields, not by separate game types.
type Variant struct {
	Name            string
	Stacking        StackingMethod
	PileLengths     []int
	InitialVisible  []int
	FoundationStart Rank
	AcesHigh        bool
	TableauPickup   PickupMode
	Draw            *DrawRules // nil: no stock or waste
}

// Klondike returns standard draw-three Klondike.
func Klondike() Variant {
	return Variant{
		Name:            "klondike",
		Stacking:        StackingMethod{Rank: RankDiff(1), Suit: SuitAlternating, Blank: BlankOnly(RankKing)},
		PileLengths:     []int{1, 2, 3, 4, 5, 6, 7},
		InitialVisible:  repeat(1, 7),
		FoundationStart: RankAceLow,
		TableauPickup:   PickupRun,
		Draw:            &DrawRules{FlipAmount: 3, NumVisible: 3},
	}
}

// KlondikeDrawOne returns Klondike dealing one card at a time.
func KlondikeDrawOne() Variant {
	v := Klondike()
	v.Name = "klondike-1"
	v.Draw = &DrawRules{FlipAmount: 1, NumVisible: 1}
	return v
}

// LaBelleLucie returns La Belle Lucie: seventeen fans of three and one single
// card, all face up, built down by suit, one card moved at a time, empty fans
// never refilled.
func LaBelleLucie() Variant {
	lens := append(repeat(3, 17), 1)
	return Variant{
		Name:            "labellelucie",
		Stacking:        StackingMethod{Rank: RankDiff(1), Suit: SuitSame, Blank: BlankNever()},
		PileLengths:     lens,
		InitialVisible:  append([]int(nil), lens...),
		FoundationStart: RankAceLow,
		TableauPickup:   PickupTopCard,
	}
}

// VariantByName returns a preset by its Name.
func VariantByName(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "klondike", "klondike-3":
		return Klondike(), nil
	case "klondike-1":
		return KlondikeDrawOne(), nil
	case "labellelucie", "la-belle-lucie":
		return LaBelleLucie(), nil
	default:
		return Variant{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidVariant, name)
	}
}

// Validate checks that the deal fits in one deck and the visibility counts
// match the piles.
func (v Variant) Validate() error {
	if len(v.PileLengths) == 0 {
		return fmt.Errorf("%w: no tableau piles", ErrInvalidVariant)
	}
	if len(v.InitialVisible) != len(v.PileLengths) {
		return fmt.Errorf("%w: %d visibility counts for %d piles", ErrInvalidVariant, len(v.InitialVisible), len(v.PileLengths))
	}
	total := 0
	for i, n := range v.PileLengths {
		if n < 0 || v.InitialVisible[i] < 0 || v.InitialVisible[i] > n {
			return fmt.Errorf("%w: pile %d has length %d and %d visible", ErrInvalidVariant, i, n, v.InitialVisible[i])
		}
		total += n
	}
	if total > DeckSize {
		return fmt.Errorf("%w: tableau needs %d cards", ErrInvalidVariant, total)
	}
	if v.Draw != nil && (v.Draw.FlipAmount < 1 || v.Draw.NumVisible < 1) {
		return fmt.Errorf("%w: draw rules %+v", ErrInvalidVariant, *v.Draw)
	}
	return nil
}

func repeat(n, count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = n
	}
	return out
}
