// Package lispread implements the recursive-descent reader that turns
// source text into the value tree lispeval walks. Grounded on the
// structuring of the teacher's sxreader.Reader (a stateful scanner exposing
// a single Read-style entry point with line/column tracking), but the
// character grammar and error texts are spec.md's own: an in-memory buffer
// walked by index, not a streaming bufio.RuneReader, so that the reader can
// be recursively reentered with a fresh accumulator at every `(`/`{`
// without sharing any mutable state across calls beyond the index itself.
package lispread

import (
	"strconv"
	"strings"

	"github.com/shengbinmeng/lispy/lispval"
)

// symbolClass reports whether r may appear inside a symbol run.
func symbolClass(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '+', '-', '*', '\\', '/', '=', '<', '>', '!', '&':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\r', '\n':
		return true
	}
	return false
}

// escapeRune maps a recognized backslash escape character to its expansion,
// per spec.md §4.C's string literal grammar.
var escapeRune = map[rune]rune{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n',
	'r': '\r', 't': '\t', 'v': '\v',
	'\\': '\\', '\'': '\'', '"': '"',
}

// reader walks a rune slice by index. It carries no state beyond the
// buffer itself, so a single reader value may be reused (or a fresh one
// constructed per call) to parse nested forms reentrantly.
type reader struct {
	src []rune
}

// Read parses src as a single top-level accumulator and returns the
// resulting SExpr: one child per top-level form found before end of input.
// The reader never fails outright — unparseable input surfaces as an Err
// value appended to the result, per spec.md §4.C.
func Read(src string) *lispval.SExpr {
	rd := &reader{src: []rune(src)}
	dst := lispval.NewSExpr()
	rd.readExpr(dst, 0, 0)
	return dst
}

// accumulator is the minimal interface both SExpr and QExpr satisfy for the
// reader's purposes: an append-only sequence under construction.
type accumulator interface {
	lispval.Value
}

// readExpr appends every top-level expression found starting at index i up
// to the first occurrence of endChar (0 meaning end-of-input) into dst, and
// returns the index just past the point where scanning stopped.
func (rd *reader) readExpr(dst accumulator, i int, endChar rune) int {
	for {
		for i < len(rd.src) && isSpace(rd.src[i]) {
			i++
		}
		if i < len(rd.src) && rd.src[i] == ';' {
			for i < len(rd.src) && rd.src[i] != '\n' {
				i++
			}
			continue
		}

		if i >= len(rd.src) {
			if endChar != 0 {
				appendTo(dst, lispval.NewErr("Missing %c at end of input", endChar))
			}
			return i
		}

		ch := rd.src[i]
		if ch == endChar {
			return i + 1
		}

		switch {
		case ch == '(':
			child := lispval.NewSExpr()
			i = rd.readExpr(child, i+1, ')')
			appendTo(dst, child)
		case ch == '{':
			child := lispval.NewQExpr()
			i = rd.readExpr(child, i+1, '}')
			appendTo(dst, child)
		case ch == '"':
			var v lispval.Value
			v, i = rd.readString(i + 1)
			appendTo(dst, v)
			if _, isErr := v.(lispval.Err); isErr {
				return i
			}
		case symbolClass(ch):
			var v lispval.Value
			v, i = rd.readSymbol(i)
			appendTo(dst, v)
		default:
			appendTo(dst, lispval.NewErr("Unknown Character %c", ch))
			i++
			return i
		}
	}
}

func appendTo(dst accumulator, v lispval.Value) {
	switch d := dst.(type) {
	case *lispval.SExpr:
		d.AddSExpr(v)
	case *lispval.QExpr:
		d.Add(v)
	}
}

// readSymbol reads the longest run of symbol-class characters starting at
// i and classifies it as Num or Sym per spec.md §4.C.
func (rd *reader) readSymbol(i int) (lispval.Value, int) {
	start := i
	for i < len(rd.src) && symbolClass(rd.src[i]) {
		i++
	}
	text := string(rd.src[start:i])
	if isNumber(text) {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return lispval.NewErr("Invalid Number %s", text), i
		}
		return lispval.Num(n), i
	}
	return lispval.Sym(text), i
}

// isNumber implements spec.md's classification rule: the first character
// is '-' or a digit, the run has length >= 2 when it starts with '-' (a
// lone '-' is a symbol), and every remaining character is a digit.
func isNumber(text string) bool {
	if text == "" {
		return false
	}
	r := []rune(text)
	if r[0] != '-' && !isDigit(r[0]) {
		return false
	}
	if r[0] == '-' && len(r) < 2 {
		return false
	}
	for _, c := range r[1:] {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// readString scans a string literal body starting just after the opening
// quote at i, applying the escape table from spec.md §4.C.
func (rd *reader) readString(i int) (lispval.Value, int) {
	var sb strings.Builder
	for {
		if i >= len(rd.src) {
			return lispval.NewErr("Unexpected end of input at string literal"), i
		}
		ch := rd.src[i]
		if ch == '"' {
			return lispval.Str(sb.String()), i + 1
		}
		if ch == '\\' {
			i++
			if i >= len(rd.src) {
				return lispval.NewErr("Unexpected end of input at string literal"), i
			}
			esc, ok := escapeRune[rd.src[i]]
			if !ok {
				return lispval.NewErr("Invalid escape character %c", rd.src[i]), i + 1
			}
			sb.WriteRune(esc)
			i++
			continue
		}
		sb.WriteRune(ch)
		i++
	}
}
