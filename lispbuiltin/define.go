package lispbuiltin

import (
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispval"
)

// define binds each symbol named in the first (QExpr) argument to the
// corresponding value among the remaining arguments, using Put for a local
// (global=false) write or Def for a global-ascending (global=true) write.
func define(name string, global bool) *lispeval.Builtin {
	return lispeval.NewBuiltin(name, func(env *lispenv.Env, args *lispval.SExpr) lispval.Value {
		if err := expectMinCount(name, args, 1); err != nil {
			return err
		}
		if err := expectQExpr(name, args, 0); err != nil {
			return err
		}
		names := args.Values()[0].(*lispval.QExpr)
		for _, n := range names.Values() {
			if _, ok := n.(lispval.Sym); !ok {
				return lispval.NewErr(
					"Function '%s' cannot define non-symbol. Got %s, Expected Symbol.", name, typeName(n))
			}
		}

		values := args.Values()[1:]
		if names.Length() != len(values) {
			return lispval.NewErr(
				"Function '%s' passed mismatched number of values to symbols. Got %d, Expected %d.",
				name, len(values), names.Length())
		}

		for i, n := range names.Values() {
			sym := n.(lispval.Sym)
			if global {
				env.Def(sym.Name(), values[i])
			} else {
				env.Put(sym.Name(), values[i])
			}
		}
		return lispval.NewSExpr()
	})
}

// Def binds symbols in the global (outermost) environment.
var Def = define("def", true)

// Put binds symbols in the current (local) environment.
var Put = define("=", false)
