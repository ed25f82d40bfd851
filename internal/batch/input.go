// Package batch compares many pairs of hands read from a file.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokerhand/poker"
)

// Pair is one comparison line from the input.
type Pair struct {
	Line int
	Text string
}

// ReadPairs reads comparison lines. Blank lines and lines starting with #
// are skipped; the remaining lines are returned unvalidated so that a bad
// line is reported against its own line number.
func ReadPairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pairs = append(pairs, Pair{Line: line, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}
	return pairs, nil
}

// SplitPair splits a line of ten cards into the left and right hand text.
// Cards may be separated by any run of whitespace.
func SplitPair(text string) (left, right string, err error) {
	fields := strings.Fields(text)
	if len(fields) != 2*poker.HandSize {
		return "", "", fmt.Errorf("%w: want %d cards per line, got %d",
			poker.ErrMalformedHand, 2*poker.HandSize, len(fields))
	}
	left = strings.Join(fields[:poker.HandSize], " ")
	right = strings.Join(fields[poker.HandSize:], " ")
	return left, right, nil
}
