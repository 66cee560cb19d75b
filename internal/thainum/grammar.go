package thainum

import (
	"regexp"
	"strings"
)

// SectionMarker is the lexical marker that introduces a section number,
// both at the start of a section and in inline cross-references.
const SectionMarker = "มาตรา"

// NumberPattern matches one section numeral token: Thai or Arabic digits
// with an optional /sub part (e.g. "๒๘๕/๑", "285/1").
const NumberPattern = `[๐-๙0-9]+(?:/[๐-๙0-9]+)?`

// SuffixPattern is the alternation of all ordinal-suffix tokens.
//
// NumberPattern and SuffixPattern are the single grammar shared by the
// section-start detector in lawparse and the inline reference detector
// below; a change here changes both, which keeps cross-references
// resolvable against parsed section numbers.
var SuffixPattern = buildSuffixPattern()

func buildSuffixPattern() string {
	toks := make([]string, len(Suffixes))
	for i, s := range Suffixes {
		toks[i] = s.Token
	}
	return strings.Join(toks, "|")
}

// refRe finds inline mentions such as "มาตรา 112", "มาตรา ๒๘๕/๑" or
// "มาตรา 30 ทวิ" anywhere in body text, capturing the full numeral token.
var refRe = regexp.MustCompile(SectionMarker + `\s*(` + NumberPattern + `(?:\s+(?:` + SuffixPattern + `))?)`)

// FindReferences returns every section label referenced inline in text, in
// order of appearance. Matches are non-overlapping; repeated mentions are
// returned repeatedly so callers can link each occurrence.
func FindReferences(text string) []string {
	matches := refRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
