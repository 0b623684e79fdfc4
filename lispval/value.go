// Package lispval provides the tagged value model of the language: numbers,
// errors, symbols, strings, and the two kinds of list. Every concrete type in
// this package is acyclic and owned by exactly one parent; value trees are
// tree-shaped and copies are explicit (see Value.Copy).
package lispval

import (
	"fmt"
	"io"
	"strings"
)

// Value is the generic interface every expression tree node satisfies.
type Value interface {
	fmt.Stringer

	// IsAtom returns true if the value is not further decomposable.
	IsAtom() bool

	// IsEqual compares two values for deep equality. Different concrete
	// types are never equal, even if one could be coerced to the other.
	IsEqual(Value) bool

	// Copy returns a value that shares no mutable storage with the
	// receiver. Lookup and argument passing always hand out copies so
	// that a stored binding is never aliased out.
	Copy() Value

	// Print writes the textual representation to w.
	Print(w io.Writer) (int, error)
}

// Print writes the string representation of v to w.
func Print(w io.Writer, v Value) (int, error) { return v.Print(w) }

func render(v Value) string {
	var sb strings.Builder
	if _, err := v.Print(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}

// Num is a 64-bit signed integer.
type Num int64

func (Num) IsAtom() bool { return true }

func (n Num) IsEqual(other Value) bool {
	o, ok := other.(Num)
	return ok && n == o
}

func (n Num) Copy() Value { return n }

func (n Num) Print(w io.Writer) (int, error) { return fmt.Fprintf(w, "%d", int64(n)) }

func (n Num) String() string { return render(n) }

// Err is a first-class error value. Errors propagate through evaluation like
// any other value and are recovered only at the REPL and at `load`.
type Err string

// NewErr formats a new Err value.
func NewErr(format string, a ...any) Err { return Err(fmt.Sprintf(format, a...)) }

func (Err) IsAtom() bool { return true }

func (e Err) IsEqual(other Value) bool {
	o, ok := other.(Err)
	return ok && e == o
}

func (e Err) Copy() Value { return e }

func (e Err) Print(w io.Writer) (int, error) { return io.WriteString(w, "Error: "+string(e)) }

func (e Err) String() string { return render(e) }

// Sym is an identifier, resolved against an environment during evaluation.
type Sym string

func (Sym) IsAtom() bool { return true }

func (s Sym) IsEqual(other Value) bool {
	o, ok := other.(Sym)
	return ok && s == o
}

func (s Sym) Copy() Value { return s }

func (s Sym) Print(w io.Writer) (int, error) { return io.WriteString(w, string(s)) }

func (s Sym) String() string { return render(s) }

// Name returns the symbol's textual name.
func (s Sym) Name() string { return string(s) }

// Str is a string literal.
type Str string

func (Str) IsAtom() bool { return true }

func (s Str) IsEqual(other Value) bool {
	o, ok := other.(Str)
	return ok && s == o
}

func (s Str) Copy() Value { return s }

// escapeByte maps a raw byte to the two-character escape sequence used when
// printing a Str, mirroring the escapes the reader recognizes (see
// lispread's string scanner).
var escapeByte = map[byte]string{
	'\a': `\a`, '\b': `\b`, '\f': `\f`, '\n': `\n`,
	'\r': `\r`, '\t': `\t`, '\v': `\v`,
	'\\': `\\`, '\'': `\'`, '"': `\"`,
}

func (s Str) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, `"`)
	if err != nil {
		return length, err
	}
	last := 0
	raw := string(s)
	for i := 0; i < len(raw); i++ {
		esc, found := escapeByte[raw[i]]
		if !found {
			continue
		}
		l, werr := io.WriteString(w, raw[last:i])
		length += l
		if werr != nil {
			return length, werr
		}
		l, werr = io.WriteString(w, esc)
		length += l
		if werr != nil {
			return length, werr
		}
		last = i + 1
	}
	l, err := io.WriteString(w, raw[last:])
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, `"`)
	length += l
	return length, err
}

func (s Str) String() string { return render(s) }

// GetValue returns the raw Go string backing s.
func (s Str) GetValue() string { return string(s) }
