package engine

import "strconv"

// Suit identifies one of the four French suits.
type Suit uint8

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitClubs
	SuitDiamonds
)

// Suits lists every suit in deck-construction order.
var Suits = [4]Suit{SuitSpades, SuitHearts, SuitClubs, SuitDiamonds}

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "♠"
	case SuitHearts:
		return "♥"
	case SuitClubs:
		return "♣"
	case SuitDiamonds:
		return "♦"
	default:
		return "?"
	}
}

// Color is the derived color of a suit.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
)

func (c Color) String() string {
	if c == ColorRed {
		return "red"
	}
	return "black"
}

// Color returns Black for spades and clubs, Red otherwise.
func (s Suit) Color() Color {
	if s == SuitSpades || s == SuitClubs {
		return ColorBlack
	}
	return ColorRed
}

// Rank is the numeric value of a card. The value is fixed at construction,
// so an ace is either RankAceLow or RankAceHigh, never both.
type Rank uint8

const (
	// RankAny is not a card rank. It marks "no constraint" where a rank is
	// configured, e.g. a foundation with no required starting rank.
	RankAny Rank = 0

	RankAceLow  Rank = 1
	RankTwo     Rank = 2
	RankThree   Rank = 3
	RankFour    Rank = 4
	RankFive    Rank = 5
	RankSix     Rank = 6
	RankSeven   Rank = 7
	RankEight   Rank = 8
	RankNine    Rank = 9
	RankTen     Rank = 10
	RankJack    Rank = 11
	RankQueen   Rank = 12
	RankKing    Rank = 13
	RankAceHigh Rank = 14
)

// IsAce reports whether r is either ace variant.
func (r Rank) IsAce() bool { return r == RankAceLow || r == RankAceHigh }

func (r Rank) String() string {
	switch r {
	case RankAceLow, RankAceHigh:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAny:
		return "*"
	}
	if r >= RankTwo && r <= RankTen {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Card is an immutable suit/rank pair. Two Cards are == iff suit and rank
// match, which is the identity used for pile membership.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard constructs a Card.
func NewCard(suit Suit, rank Rank) Card { return Card{Suit: suit, Rank: rank} }

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// Color returns the color of the card's suit.
func (c Card) Color() Color { return c.Suit.Color() }

// IsBlack reports whether the card is a spade or a club.
func (c Card) IsBlack() bool { return c.Suit.Color() == ColorBlack }

// Distance returns the signed rank difference c.Rank - other.Rank.
func (c Card) Distance(other Card) int { return int(c.Rank) - int(other.Rank) }

// SameRank compares ranks only, ignoring suit.
func (c Card) SameRank(other Card) bool { return c.Rank == other.Rank }

// Less orders cards by rank.
func (c Card) Less(other Card) bool { return c.Rank < other.Rank }
