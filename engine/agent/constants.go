package agent

import "github.com/jason-s-yu/solitaire/engine"

// Location is where an observer sees a card. Face-down cards are LocUnknown
// wherever they lie.
type Location uint8

const (
	LocUnknown    Location = iota // face down: stock, hidden waste, hidden tableau
	LocTableau                    // face up on a tableau pile
	LocFoundation                 // on a foundation pile
	LocWaste                      // face up on the waste
	LocHeld                       // in the current selection
	NumLocations
)

func (l Location) String() string {
	switch l {
	case LocUnknown:
		return "unknown"
	case LocTableau:
		return "tableau"
	case LocFoundation:
		return "foundation"
	case LocWaste:
		return "waste"
	case LocHeld:
		return "held"
	default:
		return "?"
	}
}

// cardIndex maps a card to 0..51: suit-major, ace first, either ace value.
func cardIndex(c engine.Card) int {
	r := int(c.Rank)
	if c.Rank == engine.RankAceHigh {
		r = int(engine.RankAceLow)
	}
	return int(c.Suit)*engine.SuitSize + r - 1
}

// DefaultMaxRecycles is how many times Greedy turns the waste over without
// finding another move before it gives up.
const DefaultMaxRecycles = 2
