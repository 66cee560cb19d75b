package thainum

import (
	"strconv"
	"strings"
)

// Suffix is one ordinal modifier that can follow a section number, e.g.
// "มาตรา 112 ทวิ". The rank encodes the canonical insertion order between
// two adjacent whole numbers.
type Suffix struct {
	Token string
	Rank  int
}

// Suffixes is the fixed ordinal-suffix table, in match order. Rank 5 is
// deliberately unassigned; renumbering would silently reorder every section
// using a higher-ranked suffix.
var Suffixes = []Suffix{
	{"ทวิ", 1},
	{"ตรี", 2},
	{"จัตวา", 3},
	{"เบญจ", 4},
	{"ฉ", 6},
	{"สัตต", 7},
	{"อัฏฐ", 8},
	{"นว", 9},
	{"ทศ", 10},
}

// Key is the canonical ordering key for a section label. Ordering is by
// Main, then Sub, then SuffixRank, ascending, so that "112 ทวิ" sorts
// between "112" and "113", and "285/1" before "285/2".
type Key struct {
	Main       float64
	Sub        float64
	SuffixRank int
}

// SortKey parses a section label (either script, optional /sub part,
// optional ordinal suffix) into its ordering key. Malformed numerals are
// never an error; unparseable components fall back to 0.
func SortKey(number string) Key {
	clean := strings.TrimSpace(ToArabic(number))

	var k Key
	for _, suf := range Suffixes {
		if strings.Contains(clean, suf.Token) {
			k.SuffixRank = suf.Rank
			clean = strings.TrimSpace(strings.Replace(clean, suf.Token, "", 1))
			break
		}
	}

	if main, sub, ok := strings.Cut(clean, "/"); ok {
		k.Main = parseNum(main)
		k.Sub = parseNum(sub)
	} else {
		k.Main = parseNum(clean)
	}
	return k
}

// Less reports whether k orders strictly before other.
func (k Key) Less(other Key) bool {
	if k.Main != other.Main {
		return k.Main < other.Main
	}
	if k.Sub != other.Sub {
		return k.Sub < other.Sub
	}
	return k.SuffixRank < other.SuffixRank
}

// Compare orders two section labels: -1, 0, or 1.
func Compare(a, b string) int {
	ka, kb := SortKey(a), SortKey(b)
	switch {
	case ka.Less(kb):
		return -1
	case kb.Less(ka):
		return 1
	default:
		return 0
	}
}

func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
