// Package langstats folds per-repository language byte counts into an
// accumulator and converts the result into integer percentages
package langstats

import "math"

// Accumulator maps a language name (case-sensitive, as the upstream
// reports it) to an accumulated byte count
type Accumulator map[string]int64

// Merge folds one repository's language breakdown into the accumulator
func (a Accumulator) Merge(bytes map[string]int64) {
	for lang, n := range bytes {
		a[lang] += n
	}
}

// Total returns the sum of all accumulated byte counts
func (a Accumulator) Total() int64 {
	var t int64
	for _, n := range a {
		t += n
	}
	return t
}

// Percentages converts accumulated byte counts into integer percentages
// via round-half-up of (count/total)*100 per language. The values sum
// to roughly 100; per-key rounding drift is expected and left alone.
// An empty or all-zero accumulator yields an empty map.
func (a Accumulator) Percentages() map[string]int {
	total := a.Total()
	if total == 0 {
		return map[string]int{}
	}
	out := make(map[string]int, len(a))
	for lang, n := range a {
		out[lang] = int(math.Floor(float64(n)*100/float64(total) + 0.5))
	}
	return out
}

// Share is one language's portion of a whole, in percent
type Share struct {
	Language string  `json:"language"`
	Percent  float64 `json:"percent"`
}

// Renormalize rescales a truncated set of shares so they sum to 100.
// Used after a top-N cut, where the dropped tail leaves the survivors
// summing to less than the whole. A zero-sum input is returned as-is.
func Renormalize(shares []Share) []Share {
	var sum float64
	for _, s := range shares {
		sum += s.Percent
	}
	if sum == 0 {
		return shares
	}
	out := make([]Share, len(shares))
	for i, s := range shares {
		out[i] = Share{Language: s.Language, Percent: s.Percent * 100 / sum}
	}
	return out
}
