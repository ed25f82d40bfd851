package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Matrix marks which of the 52 cards are present in a hand. Rows are ranks
// (row 0 is the deuce), columns are suits.
type Matrix [NumRanks][NumSuits]bool

// RankCounts holds the number of cards at each rank, indexed by rank value.
// Indices 0 and 1 are always zero.
type RankCounts [Ace + 1]int

// SuitCounts holds the number of cards of each suit.
type SuitCounts [NumSuits]int

// BuildMatrix parses a hand such as "2H 3D 5S 9C KD" into an occupancy
// matrix. Repeated cards mark the same cell and are not reported.
func BuildMatrix(text string) (Matrix, error) {
	cards, err := ParseHand(text)
	if err != nil {
		return Matrix{}, err
	}
	return NewMatrix(cards...), nil
}

// ParseHand splits hand text into its five cards, in the order given.
func ParseHand(text string) ([]Card, error) {
	tokens := strings.Split(text, " ")
	if len(tokens) != HandSize {
		return nil, fmt.Errorf("%w: want %d cards, got %d in %q", ErrMalformedHand, HandSize, len(tokens), text)
	}

	cards := make([]Card, 0, HandSize)
	for _, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// NewMatrix marks the given cards in a fresh matrix.
func NewMatrix(cards ...Card) Matrix {
	var m Matrix
	for _, c := range cards {
		m.set(c)
	}
	return m
}

func (m *Matrix) set(c Card) {
	m[c.rank-Two][c.suit] = true
}

// Has reports whether the card is present.
func (m Matrix) Has(c Card) bool {
	if !c.rank.Valid() || c.suit >= NumSuits {
		return false
	}
	return m[c.rank-Two][c.suit]
}

// Cards lists the present cards from the lowest rank up, in suit order
// within a rank.
func (m Matrix) Cards() []Card {
	var cards []Card
	for row := range m {
		for col, present := range m[row] {
			if present {
				cards = append(cards, NewCard(Rank(row)+Two, Suit(col)))
			}
		}
	}
	return cards
}

// RankCounts sums each row of the matrix.
func (m Matrix) RankCounts() RankCounts {
	var counts RankCounts
	for row := range m {
		for _, present := range m[row] {
			if present {
				counts[Rank(row)+Two]++
			}
		}
	}
	return counts
}

// SuitCounts sums each column of the matrix.
func (m Matrix) SuitCounts() SuitCounts {
	var counts SuitCounts
	for row := range m {
		for col, present := range m[row] {
			if present {
				counts[col]++
			}
		}
	}
	return counts
}
