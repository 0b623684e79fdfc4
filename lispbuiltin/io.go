package lispbuiltin

import (
	"fmt"
	"io"
	"os"

	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispread"
	"github.com/shengbinmeng/lispy/lispval"
)

// Stdout is the writer `print` and `load`'s error reporting write to. It
// defaults to os.Stdout and is swapped out in tests.
var Stdout io.Writer = os.Stdout

// Print writes each argument space-separated followed by a newline.
var Print = lispeval.NewBuiltin("print", func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
	for i, v := range args.Values() {
		if i > 0 {
			fmt.Fprint(Stdout, " ")
		}
		v.Print(Stdout)
	}
	fmt.Fprintln(Stdout)
	return lispval.NewSExpr()
})

// Error turns a single Str argument into an Err value.
var Error = lispeval.NewBuiltin("error", func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
	if err := expectCount("error", args, 1); err != nil {
		return err
	}
	if err := expectStr("error", args, 0); err != nil {
		return err
	}
	return lispval.NewErr(string(args.Values()[0].(lispval.Str)))
})

// Load reads a file named by a single Str argument, parses its entire
// contents as a sequence of top-level forms, and evaluates each in turn.
// Any Err produced along the way is printed and evaluation continues with
// the next form, per spec.md's `load` propagation rule.
var Load = lispeval.NewBuiltin("load", func(env *lispenv.Env, args *lispval.SExpr) lispval.Value {
	if err := expectCount("load", args, 1); err != nil {
		return err
	}
	if err := expectStr("load", args, 0); err != nil {
		return err
	}
	name := string(args.Values()[0].(lispval.Str))

	contents, readErr := os.ReadFile(name)
	if readErr != nil {
		return lispval.NewErr("Could not load file %s", name)
	}

	top := lispread.Read(string(contents))
	for _, form := range top.Values() {
		result := lispeval.Eval(env, form)
		if e, ok := result.(lispval.Err); ok {
			fmt.Fprintln(Stdout, e.String())
		}
	}
	return lispval.NewSExpr()
})
