// Package match scores string similarity through composable criteria
// and picks candidates out of a target list with them.
package match

import (
	"sort"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Criterion scores how well two strings match, from 0 (no match) to 1
// (perfect match).
type Criterion func(a, b string) float64

// Equal scores 1 for identical strings, 0 otherwise.
func Equal(a, b string) float64 {
	if a == b {
		return 1
	}
	return 0
}

// SameSize scores 1 for strings of equal length, 0 otherwise.
func SameSize(a, b string) float64 {
	if len(a) == len(b) {
		return 1
	}
	return 0
}

// Levenshtein scores by edit distance normalized over the longer
// string, so 1 means identical and 0 means fully different.
func Levenshtein(a, b string) float64 {
	n := utf8.RuneCountInString(a)
	if m := utf8.RuneCountInString(b); m > n {
		n = m
	}
	if n == 0 {
		return 1
	}
	dmp := diffmatchpatch.New()
	dist := dmp.DiffLevenshtein(dmp.DiffMain(a, b, false))
	return 1 - float64(dist)/float64(n)
}

// WeightedCriterion pairs a criterion with its relative weight.
type WeightedCriterion struct {
	Criterion Criterion
	Weight    float64
}

// Weighted mixes criteria into one, each contributing in proportion to
// its weight.
func Weighted(crits []WeightedCriterion) Criterion {
	return func(a, b string) float64 {
		var sum, total float64
		for _, wc := range crits {
			sum += wc.Criterion(a, b) * wc.Weight
			total += wc.Weight
		}
		if total == 0 {
			return 0
		}
		return sum / total
	}
}

// Avg mixes criteria with equal weights.
func Avg(crits ...Criterion) Criterion {
	wcs := make([]WeightedCriterion, len(crits))
	for i, c := range crits {
		wcs[i] = WeightedCriterion{Criterion: c, Weight: 1}
	}
	return Weighted(wcs)
}

// FirstMatch returns the first target scoring a perfect match against
// elt, or ok == false when none does.
func FirstMatch(elt string, targets []string, c Criterion) (string, bool) {
	for _, t := range targets {
		if c(elt, t) == 1 {
			return t, true
		}
	}
	return "", false
}

// Match is one scored candidate out of CloseMatches.
type Match struct {
	Target string
	Ratio  float64
}

// CloseMatches scores every target against elt and returns those
// strictly above minRatio, best first. Ties keep target order.
func CloseMatches(elt string, targets []string, c Criterion, minRatio float64) []Match {
	var out []Match
	for _, t := range targets {
		if r := c(elt, t); r > minRatio {
			out = append(out, Match{Target: t, Ratio: r})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ratio > out[j].Ratio })
	return out
}
