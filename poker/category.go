package poker

// Category is the structural class of a hand. Lower values are stronger:
// 1 is a royal flush and 10 is high card.
type Category uint8

const (
	RoyalFlush Category = iota + 1
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// Valid reports whether c is one of the ten categories.
func (c Category) Valid() bool {
	return c >= RoyalFlush && c <= HighCard
}

// Beats reports whether c ranks strictly above other.
func (c Category) Beats(other Category) bool {
	return c < other
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Classify assigns a category from a hand's rank and suit frequencies.
//
// Aces only play high, so A-2-3-4-5 is not a straight and scores as high
// card. The only ace-containing straight is T-J-Q-K-A.
func Classify(ranks RankCounts, suits SuitCounts) (Category, error) {
	sequence := hasSequence(ranks)
	flush := hasFlush(suits)

	switch {
	case sequence && flush:
		if highestRank(ranks) == Ace {
			return RoyalFlush, nil
		}
		return StraightFlush, nil
	case flush:
		return Flush, nil
	case sequence:
		return Straight, nil
	}

	return classifyShape(ranks)
}

// classifyShape maps the (max frequency, distinct ranks) pair of a hand
// without a straight or flush to its category.
func classifyShape(ranks RankCounts) (Category, error) {
	maxFreq, distinct := 0, 0
	for r := Two; r <= Ace; r++ {
		n := ranks[r]
		if n == 0 {
			continue
		}
		distinct++
		if n > maxFreq {
			maxFreq = n
		}
	}

	type shape struct{ maxFreq, distinct int }
	switch (shape{maxFreq, distinct}) {
	case shape{4, 2}:
		return FourOfAKind, nil
	case shape{3, 2}:
		return FullHouse, nil
	case shape{3, 3}:
		return ThreeOfAKind, nil
	case shape{2, 3}:
		return TwoPair, nil
	case shape{2, 4}:
		return OnePair, nil
	case shape{1, 5}:
		return HighCard, nil
	default:
		return 0, &ShapeError{MaxFreq: maxFreq, DistinctRanks: distinct}
	}
}

// hasSequence reports whether the hand holds five distinct consecutive
// ranks. Starting ranks are scanned from 2 through 10.
func hasSequence(ranks RankCounts) bool {
	singles := 0
	for r := Two; r <= Ace; r++ {
		switch ranks[r] {
		case 0:
		case 1:
			singles++
		default:
			return false
		}
	}
	if singles != HandSize {
		return false
	}

	for start := Two; start <= Ten; start++ {
		run := true
		for r := start; r < start+HandSize; r++ {
			if ranks[r] != 1 {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}

// hasFlush reports whether exactly one suit holds all five cards.
func hasFlush(suits SuitCounts) bool {
	full := 0
	for _, n := range suits {
		if n == HandSize {
			full++
		}
	}
	return full == 1
}

// highestRank returns the highest rank present (or 0 when empty).
func highestRank(ranks RankCounts) Rank {
	for r := Ace; r >= Two; r-- {
		if ranks[r] > 0 {
			return r
		}
	}
	return 0
}
