package syntax

// SpanKind classifies a styled run of a line.
type SpanKind uint8

const (
	// SpanText is unstyled default text.
	SpanText SpanKind = iota

	// SpanToken is a rule match, colored by its rule.
	SpanToken

	// SpanSearch is an occurrence of the active search term.
	SpanSearch
)

// Span is a half-open [Start, End) run of a line, in buffer columns.
type Span struct {
	Start int
	End   int
	Kind  SpanKind
	Color RGB // valid for SpanToken only
}

// Highlighter partitions lines into styled spans against one token index.
type Highlighter struct {
	index *TokenIndex
}

// NewHighlighter creates a highlighter over the given index. A nil index
// behaves like an empty one: everything is default text.
func NewHighlighter(index *TokenIndex) *Highlighter {
	if index == nil {
		index = BuildIndex(nil)
	}
	return &Highlighter{index: index}
}

// SetIndex swaps the active token index, e.g. after a file load selected
// a different definition.
func (h *Highlighter) SetIndex(index *TokenIndex) {
	if index == nil {
		index = BuildIndex(nil)
	}
	h.index = index
}

// Line partitions line[from:] into spans. At each position, an active
// search term wins first, then the longest word-bounded token match,
// otherwise the position joins a default-text run. Span columns are
// absolute line columns, not screen columns.
func (h *Highlighter) Line(line []rune, from int, searchTerm string) []Span {
	if from < 0 {
		from = 0
	}
	var spans []Span
	term := []rune(searchTerm)

	flushText := func(start, end int) {
		if start < end {
			spans = append(spans, Span{Start: start, End: end, Kind: SpanText})
		}
	}

	pos := from
	textStart := from
	for pos < len(line) {
		if len(term) > 0 && matchesAt(line, pos, term) {
			flushText(textStart, pos)
			spans = append(spans, Span{Start: pos, End: pos + len(term), Kind: SpanSearch})
			pos += len(term)
			textStart = pos
			continue
		}
		if entry, ok := h.index.MatchAt(line, pos); ok {
			tokLen := len([]rune(entry.Text))
			flushText(textStart, pos)
			spans = append(spans, Span{Start: pos, End: pos + tokLen, Kind: SpanToken, Color: entry.Color})
			pos += tokLen
			textStart = pos
			continue
		}
		pos++
	}
	flushText(textStart, pos)

	return spans
}
