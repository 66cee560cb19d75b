// Package diffutil computes a word-level diff between two versions of a
// section body, used to show what an override changed against the built-in
// text.
package diffutil

import "regexp"

// Op classifies one diff part.
type Op string

const (
	Equal  Op = "equal"
	Insert Op = "insert"
	Delete Op = "delete"
)

// Part is one run of tokens shared or changed between the two texts.
type Part struct {
	Type  Op     `json:"type"`
	Value string `json:"value"`
}

// sepRe splits on intra-line whitespace runs, punctuation, and runs of Thai
// characters. Thai has no inter-word spaces, so a Thai run is treated as one
// token; this keeps the diff coarse but stable for statutory text.
var sepRe = regexp.MustCompile(`[^\S\r\n]+|[.,;:?!\x{0E00}-\x{0E7F}]+`)

// tokenize splits text into tokens, keeping separators so the diff
// round-trips the original formatting.
func tokenize(text string) []string {
	var out []string
	last := 0
	for _, loc := range sepRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out = append(out, text[last:loc[0]])
		}
		out = append(out, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, text[last:])
	}
	return out
}

// Compute returns the word-level diff from a to b as an ordered sequence of
// parts. Concatenating Equal+Delete parts reproduces a; Equal+Insert parts
// reproduce b.
func Compute(a, b string) []Part {
	ta := tokenize(a)
	tb := tokenize(b)

	// Longest common subsequence table.
	dp := make([][]int, len(ta)+1)
	for i := range dp {
		dp[i] = make([]int, len(tb)+1)
	}
	for i := 1; i <= len(ta); i++ {
		for j := 1; j <= len(tb); j++ {
			if ta[i-1] == tb[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] > dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack, building the diff back to front.
	var rev []Part
	i, j := len(ta), len(tb)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ta[i-1] == tb[j-1]:
			rev = append(rev, Part{Type: Equal, Value: ta[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			rev = append(rev, Part{Type: Insert, Value: tb[j-1]})
			j--
		default:
			rev = append(rev, Part{Type: Delete, Value: ta[i-1]})
			i--
		}
	}

	out := make([]Part, 0, len(rev))
	for k := len(rev) - 1; k >= 0; k-- {
		out = append(out, rev[k])
	}
	return out
}
