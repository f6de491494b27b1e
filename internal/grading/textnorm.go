package grading

import "unicode"

// normalize lowercases, trims, strips punctuation and collapses inner
// whitespace, so "B " and "b" compare equal and "short-lived" matches
// "shortlived". All objective comparisons go through this.
func normalize(s string) string {
	out := make([]rune, 0, len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			// dropped
		default:
			if pendingSpace && len(out) > 0 {
				out = append(out, ' ')
			}
			pendingSpace = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}

// matchesKey reports whether a normalized response equals any accepted key.
func matchesKey(response string, keys []string) bool {
	n := normalize(response)
	for _, k := range keys {
		if normalize(k) == n {
			return true
		}
	}
	return false
}

// nearMiss reports whether the response is within one edit of a key. Used for
// a spelling hint in feedback only; it never awards credit.
func nearMiss(response string, keys []string) bool {
	n := normalize(response)
	for _, k := range keys {
		if editDistance(normalize(k), n) == 1 {
			return true
		}
	}
	return false
}

// editDistance is plain Levenshtein with unit costs, single-row DP.
func editDistance(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}
	row := make([]int, len(br)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(br); j++ {
			sub := diag
			if ar[i-1] != br[j-1] {
				sub++
			}
			diag = row[j]
			row[j] = minInt(row[j]+1, row[j-1]+1, sub)
		}
	}
	return row[len(br)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// wordCount counts whitespace-separated tokens after normalization.
func wordCount(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
	return n
}
