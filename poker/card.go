package poker

import (
	"fmt"
	"strconv"
)

// Rank is a card rank from 2 to 14, with the ace high.
type Rank uint8

// Card ranks
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

// Suit identifies one of the four suits. The numeric order is the column
// order of the occupancy matrix.
type Suit uint8

// Card suits
const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

const (
	rankChars = "23456789TJQKA"
	suitChars = "HSCD"
)

// Card is a single playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank (2-14).
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the two-character token for the card, e.g. "TH".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// String returns the rank character used in hand text.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Valid reports whether r is within 2-14.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the suit character used in hand text.
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return string(suitChars[s])
}

// ParseRank converts a rank character to its value. Digits 2-9 map to
// themselves, T to 10 and J, Q, K, A to 11-14.
func ParseRank(c byte) (Rank, error) {
	switch c {
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '0'), nil
	}
	return 0, fmt.Errorf("%w %s", ErrInvalidRank, strconv.QuoteRune(rune(c)))
}

// ParseSuit converts a suit character to a Suit. Suit characters are
// case-sensitive.
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	case 'C':
		return Clubs, nil
	case 'D':
		return Diamonds, nil
	default:
		return 0, fmt.Errorf("%w %s", ErrInvalidSuit, strconv.QuoteRune(rune(c)))
	}
}

// ParseCard parses a two-character token such as "AS" or "9D".
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: card %q must be two characters", ErrMalformedHand, token)
	}

	rank, err := ParseRank(token[0])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}
	suit, err := ParseSuit(token[1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	return NewCard(rank, suit), nil
}
