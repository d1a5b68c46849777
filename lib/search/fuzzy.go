// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes match fzf's own defaults.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// Match is one candidate that matched a pattern.
type Match struct {
	// Index is the candidate's position in the input slice.
	Index int
	Text  string
	Score int

	// Positions are the rune offsets of matched characters, for
	// highlighting.
	Positions []int
}

// FuzzyMatch scores text against pattern, ignoring case. Words of the
// pattern separated by spaces must each match somewhere in text, in any
// order, and their scores add up. A zero score means no match. slab may
// be nil; pass one to amortise allocations over many calls.
func FuzzyMatch(text, pattern string, slab *util.Slab) Match {
	words := strings.Fields(strings.ToLower(pattern))
	if len(words) == 0 {
		return Match{Text: text}
	}
	chars := util.ToChars([]byte(strings.ToLower(text)))
	match := Match{Text: text}
	for _, word := range words {
		result, positions := algo.FuzzyMatchV2(false, true, true, &chars, []rune(word), true, slab)
		if result.Start < 0 || result.Score <= 0 {
			return Match{Text: text}
		}
		match.Score += result.Score
		if positions != nil {
			match.Positions = append(match.Positions, *positions...)
		}
	}
	slices.Sort(match.Positions)
	match.Positions = slices.Compact(match.Positions)
	return match
}

// Rank returns the candidates matching pattern, best first. Ties keep
// input order. An empty pattern matches every candidate with score 0.
func Rank(pattern string, candidates []string) []Match {
	matches := make([]Match, 0, len(candidates))
	if strings.TrimSpace(pattern) == "" {
		for i, candidate := range candidates {
			matches = append(matches, Match{Index: i, Text: candidate})
		}
		return matches
	}

	slab := util.MakeSlab(slab16Size, slab32Size)
	for i, candidate := range candidates {
		match := FuzzyMatch(candidate, pattern, slab)
		if match.Score <= 0 {
			continue
		}
		match.Index = i
		matches = append(matches, match)
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}
