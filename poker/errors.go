package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHand is returned when a hand does not split into five
	// two-character tokens separated by single spaces.
	ErrMalformedHand = errors.New("malformed hand")

	// ErrInvalidRank is returned for a rank character outside 2-9, T, J, Q, K, A.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrInvalidSuit is returned for a suit character outside H, S, C, D.
	ErrInvalidSuit = errors.New("invalid suit")

	// ErrUnclassifiable is returned when the rank frequencies of a hand do not
	// form any five-card shape. Only reachable with duplicate cards.
	ErrUnclassifiable = errors.New("unclassifiable hand")

	// ErrDuplicateCard is returned in strict mode when a card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// ShapeError reports a rank-frequency shape with no category.
type ShapeError struct {
	MaxFreq       int
	DistinctRanks int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: max frequency %d across %d distinct ranks",
		ErrUnclassifiable, e.MaxFreq, e.DistinctRanks)
}

// Is lets errors.Is(err, ErrUnclassifiable) match a ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrUnclassifiable
}
