package syntax

import (
	"sort"
	"unicode"
)

// Entry is one token in the index with the color of its rule.
type Entry struct {
	Text  string
	Color RGB
}

// TokenIndex flattens one definition's rules into a table sorted by token
// text. It is a derived artifact: rebuilt whenever the active definition
// changes, discarded with it.
type TokenIndex struct {
	entries []Entry
	runes   [][]rune // parallel to entries, for position matching
}

// BuildIndex flattens and sorts all (token, color) pairs of a definition.
// A nil definition yields an empty index.
func BuildIndex(def *Definition) *TokenIndex {
	idx := &TokenIndex{}
	if def == nil {
		return idx
	}
	for _, rule := range def.Rules {
		for _, tok := range rule.Tokens {
			if tok == "" {
				continue
			}
			idx.entries = append(idx.entries, Entry{Text: tok, Color: rule.Color})
		}
	}
	sort.Slice(idx.entries, func(i, j int) bool {
		return idx.entries[i].Text < idx.entries[j].Text
	})
	idx.runes = make([][]rune, len(idx.entries))
	for i, e := range idx.entries {
		idx.runes[i] = []rune(e.Text)
	}
	return idx
}

// Len returns the number of indexed tokens.
func (idx *TokenIndex) Len() int { return len(idx.entries) }

// Entries returns the sorted token table.
func (idx *TokenIndex) Entries() []Entry { return idx.entries }

// MatchAt returns the longest indexed token whose text appears at
// line[pos] between word boundaries. The sorted table keeps the scan to
// the contiguous run of tokens sharing the first rune.
func (idx *TokenIndex) MatchAt(line []rune, pos int) (Entry, bool) {
	if pos < 0 || pos >= len(line) || len(idx.entries) == 0 {
		return Entry{}, false
	}

	first := string(line[pos])
	start := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].Text >= first
	})

	best := -1
	bestLen := 0
	for i := start; i < len(idx.entries); i++ {
		tok := idx.runes[i]
		if len(tok) == 0 || tok[0] != line[pos] {
			break
		}
		if len(tok) > bestLen &&
			matchesAt(line, pos, tok) &&
			leftBoundary(line, pos) &&
			rightBoundary(line, pos+len(tok)) {
			best = i
			bestLen = len(tok)
		}
	}
	if best < 0 {
		return Entry{}, false
	}
	return idx.entries[best], true
}

func matchesAt(line []rune, pos int, tok []rune) bool {
	if pos+len(tok) > len(line) {
		return false
	}
	for i, r := range tok {
		if line[pos+i] != r {
			return false
		}
	}
	return true
}

// isWordRune reports whether r is part of an identifier for boundary
// purposes: letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// leftBoundary is satisfied at the line start or after a non-word rune.
func leftBoundary(line []rune, start int) bool {
	return start == 0 || !isWordRune(line[start-1])
}

// rightBoundary is satisfied at the line end or before a non-word rune.
func rightBoundary(line []rune, end int) bool {
	return end >= len(line) || !isWordRune(line[end])
}
