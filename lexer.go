package curlparser

import (
	"strings"

	"github.com/tyrchen/curl-parser/internal/grammar"
)

// fragmentKind tags a classified token produced by the lexer.
type fragmentKind int

const (
	fragMethod fragmentKind = iota
	fragURL
	fragLocation
	fragHeader
	fragAuth
	fragBody
	fragInsecure
	fragEnd
)

// fragment is one classified token. text is the token content with the
// surrounding quotes stripped and escape sequences untouched; raw is the
// token exactly as written, quotes included (body reduction needs it).
type fragment struct {
	kind fragmentKind
	text string
	raw  string
	line int
	col  int
}

// lexToken is a raw shell-style word before flag classification.
type lexToken struct {
	raw  string
	text string
	line int
	col  int
}

// lexer walks the input byte by byte, tracking line and column for error
// reporting.
type lexer struct {
	input string
	pos   int
	line  int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1, col: 1}
}

func (l *lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

// continuationAt reports whether a backslash-newline sequence starts at pos.
func (l *lexer) continuationAt(pos int) bool {
	if pos >= len(l.input) || l.input[pos] != '\\' {
		return false
	}
	rest := l.input[pos+1:]
	return strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n")
}

// skipSpace consumes whitespace, line continuations, and comment lines.
// A '#' at a token boundary starts a comment running to end of line.
func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case l.continuationAt(l.pos):
			l.advance() // backslash
			if l.input[l.pos] == '\r' {
				l.advance()
			}
			l.advance() // newline
		case c == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// next scans the next word. Quoted words may span multiple lines; inside
// double quotes a backslash keeps the following byte from terminating the
// string. A nil token with a nil error means end of input.
func (l *lexer) next() (*lexToken, *ParseError) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return nil, nil
	}

	start := l.pos
	line, col := l.line, l.col

	switch q := l.input[l.pos]; q {
	case '\'':
		// Single quotes capture everything verbatim, newlines included.
		l.advance()
		for l.pos < len(l.input) && l.input[l.pos] != '\'' {
			l.advance()
		}
		if l.pos >= len(l.input) {
			return nil, &ParseError{Line: line, Column: col, Token: "'", Message: "unterminated single-quoted string"}
		}
		l.advance()
		raw := l.input[start:l.pos]
		return &lexToken{raw: raw, text: raw[1 : len(raw)-1], line: line, col: col}, nil
	case '"':
		l.advance()
		for l.pos < len(l.input) && l.input[l.pos] != '"' {
			if l.input[l.pos] == '\\' && l.pos+1 < len(l.input) {
				l.advance()
			}
			l.advance()
		}
		if l.pos >= len(l.input) {
			return nil, &ParseError{Line: line, Column: col, Token: `"`, Message: "unterminated double-quoted string"}
		}
		l.advance()
		raw := l.input[start:l.pos]
		return &lexToken{raw: raw, text: raw[1 : len(raw)-1], line: line, col: col}, nil
	default:
		for l.pos < len(l.input) {
			c := l.input[l.pos]
			if c == ' ' || c == '\t' || c == '\r' || c == '\n' || l.continuationAt(l.pos) {
				break
			}
			l.advance()
		}
		raw := l.input[start:l.pos]
		return &lexToken{raw: raw, text: raw, line: line, col: col}, nil
	}
}

// tokenize converts a curl command string into an ordered fragment stream
// terminated by an end-of-input fragment. The first word must be "curl";
// every later word is either a recognized flag (with its value token, when
// the flag takes one) or the positional URL.
func tokenize(input string) ([]fragment, error) {
	l := newLexer(input)

	first, perr := l.next()
	if perr != nil {
		return nil, perr
	}
	if first == nil || first.text != "curl" {
		tok := ""
		line, col := l.line, l.col
		if first != nil {
			tok = first.raw
			line, col = first.line, first.col
		}
		return nil, &ParseError{Line: line, Column: col, Token: tok, Message: "expected a curl command"}
	}

	var frags []fragment
	for {
		tok, perr := l.next()
		if perr != nil {
			return nil, perr
		}
		if tok == nil {
			break
		}

		// Only unquoted dash-prefixed words are flag candidates; a quoted
		// token is always a plain value.
		if strings.HasPrefix(tok.raw, "-") {
			flag, ok := grammar.Lookup(tok.text)
			if !ok {
				return nil, &ParseError{
					Line:    tok.line,
					Column:  tok.col,
					Token:   tok.text,
					Message: "unknown flag",
					Suggest: suggestFlag(tok.text),
				}
			}

			if !flag.TakesValue {
				frags = append(frags, fragment{kind: fragInsecure, text: tok.text, raw: tok.raw, line: tok.line, col: tok.col})
				continue
			}

			val, perr := l.next()
			if perr != nil {
				return nil, perr
			}
			if val == nil {
				return nil, &ParseError{Line: tok.line, Column: tok.col, Token: tok.text, Message: "missing value after flag"}
			}
			frags = append(frags, fragment{kind: kindToFragment(flag.Kind), text: val.text, raw: val.raw, line: val.line, col: val.col})
			continue
		}

		frags = append(frags, fragment{kind: fragURL, text: tok.text, raw: tok.raw, line: tok.line, col: tok.col})
	}

	frags = append(frags, fragment{kind: fragEnd, line: l.line, col: l.col})
	return frags, nil
}

func kindToFragment(k grammar.Kind) fragmentKind {
	switch k {
	case grammar.KindMethod:
		return fragMethod
	case grammar.KindHeader:
		return fragHeader
	case grammar.KindBody:
		return fragBody
	case grammar.KindAuth:
		return fragAuth
	case grammar.KindLocation:
		return fragLocation
	default:
		return fragInsecure
	}
}

// suggestFlag suggests a similar flag spelling for an unknown flag.
func suggestFlag(input string) string {
	best := ""
	minDist := 999
	for _, name := range grammar.Names() {
		dist := levenshteinDistance(input, name)
		if dist < minDist {
			minDist = dist
			best = name
		}
	}
	if minDist <= 2 {
		return best
	}
	return ""
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

// removeQuote strips one layer of matching surrounding quotes. Mismatched or
// absent quotes are left alone.
func removeQuote(s string) string {
	if len(s) >= 2 {
		switch {
		case s[0] == '\'' && s[len(s)-1] == '\'':
			return s[1 : len(s)-1]
		case s[0] == '"' && s[len(s)-1] == '"':
			return s[1 : len(s)-1]
		}
	}
	return s
}

// unescapeString translates the escape sequences \" \\ \/ \n \r \t to their
// literal characters. Any other backslash-escaped character is preserved as
// the two literal characters, so unrecognized escapes lose no data.
func unescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			result.WriteByte(c)
			continue
		}
		i++
		switch next := s[i]; next {
		case '"', '\\', '/':
			result.WriteByte(next)
		case 'n':
			result.WriteByte('\n')
		case 'r':
			result.WriteByte('\r')
		case 't':
			result.WriteByte('\t')
		default:
			result.WriteByte('\\')
			result.WriteByte(next)
		}
	}
	return result.String()
}
