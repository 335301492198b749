package engine

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// NewDeck returns the 52 cards of a standard deck in suit-major order. With
// acesHigh the aces are valued 14, otherwise 1.
func NewDeck(acesHigh bool) []Card {
	ace := RankAceLow
	if acesHigh {
		ace = RankAceHigh
	}
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		cards = append(cards, NewCard(s, ace))
		for r := RankTwo; r <= RankKing; r++ {
			cards = append(cards, NewCard(s, r))
		}
	}
	return cards
}

// ---------------------------------------------------------------------------
// xorshift64 RNG
// ---------------------------------------------------------------------------

type xorshift uint64

func newXorshift(seed uint64) xorshift {
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	return xorshift(seed)
}

func (x *xorshift) next() uint64 {
	v := uint64(*x)
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*x = xorshift(v)
	return v
}

// Shuffle permutes cards in place with a Fisher-Yates shuffle driven by seed.
// The same seed always yields the same order.
func Shuffle(cards []Card, seed uint64) {
	rng := newXorshift(seed)
	for i := len(cards) - 1; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// NewShuffledPile returns a full, face-down deck pile shuffled by seed.
func NewShuffledPile(acesHigh bool, seed uint64) *Pile {
	cards := NewDeck(acesHigh)
	Shuffle(cards, seed)
	return NewPile(cards...)
}
