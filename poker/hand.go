package poker

import (
	"fmt"
	"slices"
	"sync"
)

// Outcome is the result of comparing one hand against another.
type Outcome int

const (
	Loss Outcome = -1
	Tie  Outcome = 0
	Win  Outcome = 1
)

// String returns "win", "loss" or "tie".
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Option configures a Hand during creation.
type Option func(*handConfig)

type handConfig struct {
	strict bool
}

// WithStrictCards makes evaluation fail with ErrDuplicateCard when the same
// card appears more than once. Without it, duplicates are the caller's
// responsibility and usually surface as ErrUnclassifiable.
func WithStrictCards() Option {
	return func(cfg *handConfig) {
		cfg.strict = true
	}
}

// Hand is a five-card hand in its text form. Its category and tie-break key
// are computed on first use and cached; a Hand is safe for concurrent use.
type Hand struct {
	text string
	cfg  handConfig

	once     sync.Once
	category Category
	key      []Rank
	err      error
}

// FromString wraps hand text such as "TH JH QH KH AH". The text is not
// validated until Category, TieBreakKey or a comparison is requested.
//
// Each card is expected to appear once. Duplicates are accepted unless
// WithStrictCards is given.
func FromString(text string, opts ...Option) *Hand {
	h := &Hand{text: text}
	for _, opt := range opts {
		opt(&h.cfg)
	}
	return h
}

// Must evaluates h immediately and panics if it is invalid. Intended for
// tests and fixed hand literals.
func Must(h *Hand) *Hand {
	if err := h.evaluate(); err != nil {
		panic(fmt.Sprintf("invalid hand %q: %v", h.text, err))
	}
	return h
}

// Text returns the hand exactly as given to FromString.
func (h *Hand) Text() string {
	return h.text
}

func (h *Hand) String() string {
	return h.text
}

// Category returns the hand's category, 1 (royal flush) to 10 (high card).
func (h *Hand) Category() (Category, error) {
	if err := h.evaluate(); err != nil {
		return 0, err
	}
	return h.category, nil
}

// TieBreakKey returns the ranks used to order hands of equal category. The
// returned slice is a copy.
func (h *Hand) TieBreakKey() ([]Rank, error) {
	if err := h.evaluate(); err != nil {
		return nil, err
	}
	return slices.Clone(h.key), nil
}

// Compare reports whether h wins, loses or ties against other. A lower
// category wins outright; equal categories are decided by the first
// differing tie-break rank.
func (h *Hand) Compare(other *Hand) (Outcome, error) {
	if err := h.evaluate(); err != nil {
		return Tie, err
	}
	if err := other.evaluate(); err != nil {
		return Tie, err
	}

	switch {
	case h.category.Beats(other.category):
		return Win, nil
	case other.category.Beats(h.category):
		return Loss, nil
	}
	return Outcome(CompareKeys(h.key, other.key)), nil
}

// IsBetterThan reports whether h strictly beats other. Tied hands are not
// better than each other.
func (h *Hand) IsBetterThan(other *Hand) (bool, error) {
	outcome, err := h.Compare(other)
	if err != nil {
		return false, err
	}
	return outcome == Win, nil
}

func (h *Hand) evaluate() error {
	h.once.Do(func() {
		h.category, h.key, h.err = evaluateText(h.text, h.cfg)
	})
	return h.err
}

func evaluateText(text string, cfg handConfig) (Category, []Rank, error) {
	cards, err := ParseHand(text)
	if err != nil {
		return 0, nil, fmt.Errorf("hand %q: %w", text, err)
	}
	if cfg.strict {
		if dup, ok := firstDuplicate(cards); ok {
			return 0, nil, fmt.Errorf("hand %q: %w %s", text, ErrDuplicateCard, dup)
		}
	}

	m := NewMatrix(cards...)
	ranks := m.RankCounts()
	category, err := Classify(ranks, m.SuitCounts())
	if err != nil {
		return 0, nil, fmt.Errorf("hand %q: %w", text, err)
	}
	return category, TieBreakKey(ranks), nil
}

func firstDuplicate(cards []Card) (Card, bool) {
	var seen Matrix
	for _, c := range cards {
		if seen.Has(c) {
			return c, true
		}
		seen.set(c)
	}
	return Card{}, false
}
