package poker

// TieBreakKey orders the ranks of a hand for comparing two hands of the same
// category: quads first, then trips, pairs and singles, each group from the
// highest rank down. A rank appears once regardless of how many cards share
// it, so a one-pair hand yields four entries and a full house two.
func TieBreakKey(ranks RankCounts) []Rank {
	key := make([]Rank, 0, HandSize)
	for freq := 4; freq >= 1; freq-- {
		for r := Ace; r >= Two; r-- {
			if ranks[r] == freq {
				key = append(key, r)
			}
		}
	}
	return key
}

// CompareKeys compares two tie-break keys position by position and returns
// 1 if a is higher, -1 if b is higher and 0 when the shared prefix is equal.
func CompareKeys(a, b []Rank) int {
	n := min(len(a), len(b))
	for i := range n {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}
