package cleaner

import (
	"fmt"
	"strings"
)

// Matcher decides whether two member names identify the same person.
// It exists so a blocking or indexing strategy can replace the pairwise
// scan without changing the stage contract.
type Matcher interface {
	Match(a, b string) bool
}

// SimilarityMatcher matches names whose case-insensitive sequence
// similarity ratio meets a threshold. A ratio exactly at the threshold
// counts as a match.
type SimilarityMatcher struct {
	Threshold float64
}

func (m SimilarityMatcher) Match(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return Ratio(strings.ToLower(a), strings.ToLower(b)) >= m.Threshold
}

type fuzzyStage struct {
	matcher Matcher
}

func (s fuzzyStage) Name() string    { return "fuzzy_deduplication" }
func (s fuzzyStage) Needs() []string { return []string{FieldName, FieldEmail} }

// Apply compares every row pair (i, j) with i first in current order
// and marks j for removal when the emails differ (same-email pairs were
// already collapsed by exact dedup) and the names are similar enough.
// Rows already marked are skipped. O(n²) by design; acceptable for
// moderate record counts.
func (s fuzzyStage) Apply(rs *RecordSet) (StageResult, error) {
	n := len(rs.Rows)
	names := make([]string, n)
	hasName := make([]bool, n)
	emails := make([]string, n)
	for i, row := range rs.Rows {
		if v, ok := row[FieldName]; ok && v != nil {
			names[i] = fmt.Sprintf("%v", v)
			hasName[i] = true
		}
		if v, ok := row[FieldEmail]; ok && v != nil {
			emails[i] = fmt.Sprintf("%v", v)
		}
	}

	drop := make([]bool, n)
	for i := 0; i < n; i++ {
		if drop[i] || !hasName[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if drop[j] || !hasName[j] {
				continue
			}
			if emails[i] != emails[j] && s.matcher.Match(names[i], names[j]) {
				drop[j] = true
			}
		}
	}

	kept := make([]Record, 0, n)
	for i, row := range rs.Rows {
		if !drop[i] {
			kept = append(kept, row)
		}
	}
	removed := n - len(kept)
	rs.Rows = kept

	var res StageResult
	if removed > 0 {
		res.Log = []string{fmt.Sprintf("Removed %d near-duplicate names using fuzzy matching.", removed)}
	}
	return res, nil
}

// Ratio returns the sequence similarity of two strings: twice the
// number of characters matched by a greedy longest-common-substring
// alignment divided by the total length. 1.0 means identical, 0.0
// means nothing in common.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}

	b2j := make(map[rune][]int, len(rb))
	for j, r := range rb {
		b2j[r] = append(b2j[r], j)
	}

	matched := matchingChars(ra, rb, 0, len(ra), 0, len(rb), b2j)
	return 2 * float64(matched) / float64(total)
}

// matchingChars finds the longest matching block in the given window,
// then recurses on the pieces to its left and right.
func matchingChars(a, b []rune, alo, ahi, blo, bhi int, b2j map[rune][]int) int {
	i, j, size := longestMatch(a, alo, ahi, blo, bhi, b2j)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a, b, alo, i, blo, j, b2j) +
		matchingChars(a, b, i+size, ahi, j+size, bhi, b2j)
}

func longestMatch(a []rune, alo, ahi, blo, bhi int, b2j map[rune][]int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
