package poker

import (
	"errors"
	"testing"
)

func TestParseRank(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   byte
		want    Rank
		wantErr bool
	}{
		{'2', Two, false},
		{'5', Five, false},
		{'9', Nine, false},
		{'T', Ten, false},
		{'J', Jack, false},
		{'Q', Queen, false},
		{'K', King, false},
		{'A', Ace, false},
		{'1', 0, true},
		{'0', 0, true},
		{'t', 0, true},
		{'a', 0, true},
		{'X', 0, true},
		{' ', 0, true},
	}

	for _, tc := range tests {
		got, err := ParseRank(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRank(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidRank) {
				t.Errorf("ParseRank(%q) error = %v, want ErrInvalidRank", tc.input, err)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRank(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseSuit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   byte
		want    Suit
		wantErr bool
	}{
		{'H', Hearts, false},
		{'S', Spades, false},
		{'C', Clubs, false},
		{'D', Diamonds, false},
		{'h', 0, true},
		{'s', 0, true},
		{'X', 0, true},
		{'1', 0, true},
	}

	for _, tc := range tests {
		got, err := ParseSuit(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSuit(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidSuit) {
				t.Errorf("ParseSuit(%q) error = %v, want ErrInvalidSuit", tc.input, err)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSuit(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr error
	}{
		{"ace of spades", "AS", NewCard(Ace, Spades), nil},
		{"two of hearts", "2H", NewCard(Two, Hearts), nil},
		{"ten with T notation", "TC", NewCard(Ten, Clubs), nil},
		{"king of diamonds", "KD", NewCard(King, Diamonds), nil},
		{"invalid rank", "XS", Card{}, ErrInvalidRank},
		{"invalid suit", "AX", Card{}, ErrInvalidSuit},
		{"lowercase suit", "Ah", Card{}, ErrInvalidSuit},
		{"empty string", "", Card{}, ErrMalformedHand},
		{"too short", "A", Card{}, ErrMalformedHand},
		{"ten written out", "10H", Card{}, ErrMalformedHand},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("ParseCard(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tc.input, err)
			}
			if card != tc.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.want)
			}
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for suit := range Suit(NumSuits) {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			str := card.String()

			if seen[str] {
				t.Errorf("Duplicate card: %s", str)
			}
			seen[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", str)
			}
		}
	}

	if len(seen) != DeckSize {
		t.Errorf("Expected %d unique cards, got %d", DeckSize, len(seen))
	}
}

func TestRankString(t *testing.T) {
	t.Parallel()
	if Ten.String() != "T" {
		t.Errorf("Ten.String() = %q, want T", Ten.String())
	}
	if Rank(1).String() != "?" || Rank(15).String() != "?" {
		t.Error("out of range ranks should render as ?")
	}
	if Suit(7).String() != "?" {
		t.Error("out of range suit should render as ?")
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("AS")
	}
}
