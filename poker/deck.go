package poker

import (
	"math/rand"
	"strings"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumRanks * NumSuits

// Deck is a standard 52-card deck used to deal random hands.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled deck. The RNG is required so that dealing is
// reproducible under a fixed seed.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{rng: rng}

	i := 0
	for suit := range Suit(NumSuits) {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle restores all cards and shuffles them using Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealHand deals five cards as hand text, reshuffling first if the deck
// cannot supply them.
func (d *Deck) DealHand() string {
	if d.Remaining() < HandSize {
		d.Shuffle()
	}
	return FormatHand(d.Deal(HandSize))
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// FormatHand joins cards into space separated hand text.
func FormatHand(cards []Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
