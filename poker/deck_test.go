package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	deck := NewDeck(rng)

	cards1 := deck.Deal(2)
	require.Len(t, cards1, 2)

	cards2 := deck.Deal(3)
	require.Len(t, cards2, 3)

	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			assert.NotEqual(t, c1, c2, "dealt same card twice")
		}
	}

	remaining := deck.Deal(47)
	require.Len(t, remaining, 47)
	assert.Equal(t, 0, deck.Remaining())
	assert.Nil(t, deck.Deal(1))

	deck.Shuffle()
	assert.Equal(t, DeckSize, deck.Remaining())
}

func TestDeckDealHand(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewSource(7)))

	// Twenty hands need more than one deck; DealHand reshuffles as needed.
	for range 20 {
		text := deck.DealHand()
		h := FromString(text, WithStrictCards())
		category, err := h.Category()
		require.NoError(t, err, text)
		assert.True(t, category.Valid())
		assert.Equal(t, text, h.Text())
	}
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck(rand.New(rand.NewSource(99)))
	b := NewDeck(rand.New(rand.NewSource(99)))
	assert.Equal(t, a.DealHand(), b.DealHand())
}

func TestFormatHand(t *testing.T) {
	t.Parallel()
	cards := []Card{NewCard(Ten, Hearts), NewCard(Ace, Spades)}
	assert.Equal(t, "TH AS", FormatHand(cards))
}

func TestNewDeckRequiresRNG(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewDeck(nil) })
}
