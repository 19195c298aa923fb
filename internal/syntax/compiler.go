package syntax

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// The rule document grammar, by example:
//
//	SYNTAX ".c" ".h"
//	{
//	    "int", "char",
//	    "void" = (255, 120, 0);
//	    "return" = (200, 200, 200);
//	}
//
// A block starts with the SYNTAX keyword followed by quoted extensions,
// then a brace-delimited body of rule statements. A statement is a
// comma-separated list of quoted tokens ending in `= (R, G, B);` and may
// span physical lines; text accumulates until a semicolon. Parsing is
// forgiving: malformed statements are skipped, never fatal.

var (
	quotedRe = regexp.MustCompile(`"([^"]*)"`)
	colorRe  = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`)
)

// Load compiles the rule document at path. A missing file yields zero
// definitions and no error: highlighting is simply disabled.
func Load(path string) (Definitions, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return Compile(f)
}

// Compile parses a rule document into definitions. The only error it can
// return is a read failure; malformed content is skipped.
func Compile(r io.Reader) (Definitions, error) {
	sc := bufio.NewScanner(r)
	var defs Definitions

	for sc.Scan() {
		header := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(header, "SYNTAX") {
			continue
		}

		def := &Definition{Extensions: quotedStrings(header)}

		// The opening brace sits on its own line after the header.
		if !sc.Scan() {
			break
		}
		if !strings.HasPrefix(strings.TrimSpace(sc.Text()), "{") {
			continue
		}

		compileBody(sc, def)
		defs = append(defs, def)
	}

	return defs, sc.Err()
}

// compileBody consumes rule statements until the closing brace or EOF.
func compileBody(sc *bufio.Scanner, def *Definition) {
	for {
		stmt, ok := nextStatement(sc)
		if stmt != "" {
			if rule, parsed := parseRule(stmt); parsed {
				def.Rules = append(def.Rules, rule)
			}
		}
		if !ok {
			return
		}
	}
}

// nextStatement accumulates physical lines until a terminating semicolon.
// The returned bool is false when the block (or input) ended.
func nextStatement(sc *bufio.Scanner) (string, bool) {
	var b strings.Builder
	for {
		if !sc.Scan() {
			return strings.TrimSpace(b.String()), false
		}
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "}") {
			return strings.TrimSpace(b.String()), false
		}
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteString(" ")
		if strings.Contains(line, ";") {
			return strings.TrimSpace(b.String()), true
		}
	}
}

// parseRule extracts the token list and color tuple from one statement.
func parseRule(stmt string) (Rule, bool) {
	eq := strings.Index(stmt, "=")
	if eq < 0 {
		return Rule{}, false
	}

	tokens := quotedStrings(stmt[:eq])
	if len(tokens) == 0 {
		return Rule{}, false
	}

	m := colorRe.FindStringSubmatch(stmt[eq:])
	if m == nil {
		return Rule{}, false
	}

	return Rule{
		Tokens: tokens,
		Color: RGB{
			R: clampChannel(m[1]),
			G: clampChannel(m[2]),
			B: clampChannel(m[3]),
		},
	}, true
}

// quotedStrings returns the deduplicated quoted literals in s, in order.
func quotedStrings(s string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range quotedRe.FindAllStringSubmatch(s, -1) {
		if m[1] == "" {
			continue
		}
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

func clampChannel(s string) uint8 {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
