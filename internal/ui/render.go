package ui

import (
	"strings"
	"unicode/utf8"

	"hyprpick/internal/models"
)

// Segment identifies one semantic substring of a rendered line.
type Segment int

const (
	SegmentCategory Segment = iota
	SegmentAlias
	SegmentDescription
	SegmentTrailing
)

// Span is a half-open [Start, End) range of rune offsets into the
// rendered line, tagged with the segment it covers. Offsets are rune
// positions, never bytes: the separator glyph and descriptions may be
// multi-byte, and a color boundary must not split a code point.
type Span struct {
	Start, End int
	Seg        Segment
}

// descSeparator sits between alias and description. It is multi-byte
// on purpose; tests rely on it to catch byte/rune confusion.
const descSeparator = " — "

// RenderLine formats an entry as
//
//	[<category>] <alias> — <description> | <file> (<path>)
//
// with the separator and description omitted together when the entry
// has no description. When colored is true it also returns the segment
// spans, computed from the same running cursor that builds the string
// so the two can never drift apart.
func RenderLine(e *models.ConfigEntry, colored bool) (string, []Span) {
	var b strings.Builder
	cursor := 0
	var spans []Span

	emit := func(s string) {
		b.WriteString(s)
		cursor += utf8.RuneCountInString(s)
	}
	mark := func(seg Segment, s string) {
		start := cursor
		emit(s)
		if colored {
			spans = append(spans, Span{Start: start, End: cursor, Seg: seg})
		}
	}

	emit("[")
	mark(SegmentCategory, e.Category.String())
	emit("] ")
	mark(SegmentAlias, e.Alias)
	if e.HasDescription() {
		emit(descSeparator)
		mark(SegmentDescription, e.Description)
	}
	emit(" ")
	mark(SegmentTrailing, "| "+e.FileName+" ("+e.Path+")")

	return b.String(), spans
}

// StyledLine paints text with its segment spans and overlays the
// matched rune positions with the theme's match style. matches are
// rune indices as reported by the fuzzy filter; the match style takes
// priority wherever the two overlap. maxWidth > 0 truncates the line
// (in runes) with an ellipsis.
func StyledLine(text string, spans []Span, matches []int, th Theme, maxWidth int) string {
	runes := []rune(text)

	truncated := false
	if maxWidth > 0 && len(runes) > maxWidth {
		runes = runes[:maxWidth-1]
		truncated = true
	}

	segOf := make([]Segment, len(runes))
	hasSeg := make([]bool, len(runes))
	for _, sp := range spans {
		for i := sp.Start; i < sp.End && i < len(runes); i++ {
			segOf[i] = sp.Seg
			hasSeg[i] = true
		}
	}
	matched := make([]bool, len(runes))
	for _, idx := range matches {
		if idx >= 0 && idx < len(runes) {
			matched[idx] = true
		}
	}

	var b strings.Builder
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && matched[j] == matched[i] && hasSeg[j] == hasSeg[i] && segOf[j] == segOf[i] {
			j++
		}
		run := string(runes[i:j])
		switch {
		case matched[i]:
			b.WriteString(th.Match.Render(run))
		case hasSeg[i]:
			b.WriteString(th.segmentStyle(segOf[i]).Render(run))
		default:
			b.WriteString(run)
		}
		i = j
	}
	if truncated {
		b.WriteString("…")
	}
	return b.String()
}
