// Package lispeval implements the tree-walking evaluator: symbol
// resolution, S-expression reduction, and function application, including
// curried partial application of user lambdas. Grounded on the teacher's
// Environment.Resolve/Apply naming and its LexLambda/Builtin split
// (sxeval/env.go, sxbuiltins/lambda.go), but implemented as a single direct
// recursive walk rather than the teacher's Parse/Improve/Compile/Execute
// pipeline, since spec.md rules out bytecode and tail-call optimization.
package lispeval

import (
	"io"
	"strings"

	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispval"
)

// BuiltinFn is the native implementation of a Builtin. It receives the
// calling environment and owns args: it consumes the sequence and returns
// the result value.
type BuiltinFn func(env *lispenv.Env, args *lispval.SExpr) lispval.Value

// Builtin is a primitive function exposed as a first-class value.
// Equality between two Builtins is identity of the *Builtin struct itself,
// since Go function values are not comparable and every primitive is
// registered as exactly one canonical instance.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// NewBuiltin constructs a named builtin wrapping fn.
func NewBuiltin(name string, fn BuiltinFn) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

func (*Builtin) IsAtom() bool { return false }

func (b *Builtin) IsEqual(other lispval.Value) bool {
	o, ok := other.(*Builtin)
	return ok && b == o
}

// Copy returns the receiver unchanged: builtins are immutable and carry no
// owned storage, so aliasing one is harmless.
func (b *Builtin) Copy() lispval.Value { return b }

func (b *Builtin) Print(w io.Writer) (int, error) {
	return io.WriteString(w, "<builtin "+b.Name+">")
}

func (b *Builtin) String() string { return "<builtin " + b.Name + ">" }

// Lambda is a user-defined function: a formals list, a body, and the
// lambda's own environment, which holds the arguments bound so far. That
// environment has no parent until a call re-parents it onto the caller's
// environment.
type Lambda struct {
	Formals *lispval.QExpr
	Body    *lispval.QExpr
	Env     *lispenv.Env
}

// NewLambda constructs a lambda closing over env. The formals and body are
// taken as-is; callers that need isolation should pass copies.
func NewLambda(formals, body *lispval.QExpr, env *lispenv.Env) *Lambda {
	return &Lambda{Formals: formals, Body: body, Env: env}
}

func (*Lambda) IsAtom() bool { return false }

func (l *Lambda) IsEqual(other lispval.Value) bool {
	o, ok := other.(*Lambda)
	return ok && o.Formals.IsEqual(l.Formals) && o.Body.IsEqual(l.Body)
}

func (l *Lambda) Copy() lispval.Value {
	return &Lambda{
		Formals: l.Formals.Copy().(*lispval.QExpr),
		Body:    l.Body.Copy().(*lispval.QExpr),
		Env:     l.Env.Copy(),
	}
}

func (l *Lambda) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, `<\ `)
	if err != nil {
		return length, err
	}
	fl, err := l.Formals.Print(w)
	length += fl
	if err != nil {
		return length, err
	}
	sl, err := io.WriteString(w, " ")
	length += sl
	if err != nil {
		return length, err
	}
	bl, err := l.Body.Print(w)
	length += bl
	if err != nil {
		return length, err
	}
	cl, err := io.WriteString(w, ">")
	length += cl
	return length, err
}

func (l *Lambda) String() string {
	var sb strings.Builder
	_, _ = l.Print(&sb)
	return sb.String()
}
