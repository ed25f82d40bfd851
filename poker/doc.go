// Package poker evaluates and compares five-card poker hands written as
// text.
//
// A hand is five two-character tokens separated by single spaces. The first
// character of a token is the rank (2-9, T, J, Q, K, A) and the second is the
// suit (H, S, C, D):
//
//	h := poker.FromString("TH JH QH KH AH")
//	category, err := h.Category() // poker.RoyalFlush (1)
//
// # Categories
//
// Categories are numbered from 1 (royal flush) to 10 (high card); a lower
// number is a stronger hand. Aces only play high, so A-2-3-4-5 is scored as
// high card rather than a straight.
//
// # Comparing hands
//
// Compare returns Win, Loss or Tie. Hands of the same category are ordered by
// their tie-break key: the ranks grouped by how often they occur (quads,
// trips, pairs, singles), highest rank first within each group.
//
//	outcome, err := poker.FromString("AH AS AC 2D 3H").Compare(
//	    poker.FromString("KH KS KC 2D 3H")) // poker.Win
//
// Evaluation is deferred until the first query and cached on the Hand.
package poker
