// Package lawparse turns raw statutory text into a flat sequence of
// uniquely-identified, hierarchically-categorized sections.
//
// The input format is an external contract with whoever maintains the
// statute source text: UTF-8, newline-separated, with a small fixed set of
// lexical markers — "ภาค"/"บรรพ" (part), "ลักษณะ" (title), "หมวด" (chapter),
// "ส่วนที่" (sub-part) for headings and "มาตรา <n>" for section starts.
package lawparse

import (
	"regexp"
	"strings"

	"github.com/kornthip/matra/internal/models"
	"github.com/kornthip/matra/internal/thainum"
)

var (
	// sectionStartRe anchors the shared numeral grammar to the start of a
	// line: "มาตรา ๑", "มาตรา 285/1", with the rest of the line captured.
	sectionStartRe = regexp.MustCompile(`^` + thainum.SectionMarker + `\s+(` + thainum.NumberPattern + `)(.*)`)

	// suffixLeadRe matches an ordinal suffix immediately following the
	// captured numeral, bounded by whitespace: " ทวิ ความผิด..." → "ทวิ".
	suffixLeadRe = regexp.MustCompile(`^\s+(` + thainum.SuffixPattern + `)(\s+|$)`)

	// footnoteRe matches inline footnote-index tokens like [1] or [120].
	footnoteRe = regexp.MustCompile(`\[\d+\]`)

	// footnoteLineRe matches a line that is purely a footnote-index token.
	footnoteLineRe = regexp.MustCompile(`^\[\d+\]$`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Heading hierarchy levels, outermost first.
const (
	levelPart = iota
	levelTitle
	levelChapter
	levelSubpart
	levelCount
)

// headingRules maps heading line prefixes to their hierarchy level,
// evaluated top to bottom. Two prefixes share the part level because civil
// codes use บรรพ where other codes use ภาค.
var headingRules = []struct {
	prefix string
	level  int
}{
	{"ภาค ", levelPart},
	{"บรรพ ", levelPart},
	{"ลักษณะ ", levelTitle},
	{"หมวด ", levelChapter},
	{"ส่วนที่ ", levelSubpart},
}

// lineMarkers is every prefix that starts a structural line; used to decide
// whether the line after a heading is a free-standing description.
var lineMarkers = []string{"ภาค ", "บรรพ ", "ลักษณะ ", "หมวด ", "ส่วนที่ ", thainum.SectionMarker + " "}

// SectionID derives the deterministic section ID for a book and native
// section number: Thai digits normalized, "/" and whitespace become "-".
// "crim" + "๒๘๕/๑" → "crim-285-1".
func SectionID(bookID, number string) string {
	norm := thainum.ToArabic(number)
	norm = strings.ReplaceAll(norm, "/", "-")
	norm = whitespaceRe.ReplaceAllString(norm, "-")
	return bookID + "-" + norm
}

// Parse scans raw statute text and returns its sections in document order.
// Parsing is deterministic and never fails: malformed lines degrade into
// body content or are skipped, they do not abort the scan.
func Parse(raw, bookID, bookName string) []models.Section {
	p := &parser{
		bookID:   bookID,
		bookName: bookName,
		lines:    strings.Split(raw, "\n"),
	}
	return p.run()
}

type parser struct {
	bookID   string
	bookName string
	lines    []string

	levels  [levelCount]string
	number  string
	content []string

	out []models.Section
}

func (p *parser) run() []models.Section {
	for i := 0; i < len(p.lines); i++ {
		line := strings.TrimSpace(p.lines[i])

		// Blank lines, page separators, and lone footnote markers never
		// become body content, even inside an open section.
		if line == "" || strings.HasPrefix(line, "==") || footnoteLineRe.MatchString(line) {
			continue
		}

		if level, ok := matchHeading(line); ok {
			p.flush()
			value := line
			if desc := p.nextLineDescription(i); desc != "" {
				value += " " + desc
				i++ // description consumed
			}
			p.levels[level] = value
			for l := level + 1; l < levelCount; l++ {
				p.levels[l] = ""
			}
			continue
		}

		if m := sectionStartRe.FindStringSubmatch(line); m != nil {
			p.flush()
			number, rest := m[1], m[2]
			if sm := suffixLeadRe.FindStringSubmatch(rest); sm != nil {
				number += " " + sm[1]
				rest = rest[len(sm[0]):]
			}
			p.number = number
			if rest = strings.TrimSpace(rest); rest != "" {
				p.content = append(p.content, rest)
			}
			continue
		}

		// Plain content line; only meaningful inside an open section.
		if p.number != "" {
			p.content = append(p.content, line)
		}
	}

	p.flush()
	return p.out
}

// nextLineDescription returns the continuation line for a heading at index
// i, or "" when the next line is blank, structural, or a footnote marker.
// Headings like "ลักษณะ ๑" often carry their title on the following line.
func (p *parser) nextLineDescription(i int) string {
	if i+1 >= len(p.lines) {
		return ""
	}
	next := strings.TrimSpace(p.lines[i+1])
	if next == "" || footnoteLineRe.MatchString(next) {
		return ""
	}
	for _, marker := range lineMarkers {
		if strings.HasPrefix(next, marker) {
			return ""
		}
	}
	return next
}

// flush finalizes the section currently being accumulated, if any. Sections
// whose body is empty after footnote stripping are dropped, not emitted.
func (p *parser) flush() {
	if p.number == "" || len(p.content) == 0 {
		p.number = ""
		p.content = nil
		return
	}

	body := strings.TrimSpace(footnoteRe.ReplaceAllString(strings.Join(p.content, "\n"), ""))
	if body != "" {
		parts := make([]string, 0, levelCount+1)
		parts = append(parts, p.bookName)
		for _, v := range p.levels {
			if v != "" {
				parts = append(parts, v)
			}
		}
		p.out = append(p.out, models.Section{
			ID:       SectionID(p.bookID, p.number),
			Number:   p.number,
			Body:     body,
			Category: strings.Join(parts, " > "),
			BookID:   p.bookID,
		})
	}

	p.number = ""
	p.content = nil
}

func matchHeading(line string) (int, bool) {
	for _, rule := range headingRules {
		if strings.HasPrefix(line, rule.prefix) {
			return rule.level, true
		}
	}
	return 0, false
}
