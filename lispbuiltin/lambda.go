package lispbuiltin

import (
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispval"
)

// Lambda constructs a user-defined function from a QExpr of formal symbols
// and a QExpr body, closing over a fresh, parentless environment. The
// environment's parent is set at call time to whatever environment the
// call happens in, per the evaluator's re-parenting rule; reifying the
// defining scope here would create the very closure cycle §9 warns against.
var Lambda = lispeval.NewBuiltin("\\", func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
	if err := expectCount("\\", args, 2); err != nil {
		return err
	}
	if err := expectQExpr("\\", args, 0); err != nil {
		return err
	}
	if err := expectQExpr("\\", args, 1); err != nil {
		return err
	}

	formals := args.Values()[0].(*lispval.QExpr)
	for _, f := range formals.Values() {
		if _, ok := f.(lispval.Sym); !ok {
			return lispval.NewErr(
				"Cannot define non-symbol. Got %s, Expected Symbol.", typeName(f))
		}
	}

	body := args.Values()[1].(*lispval.QExpr)
	return lispeval.NewLambda(
		formals.Copy().(*lispval.QExpr),
		body.Copy().(*lispval.QExpr),
		lispenv.New(nil),
	)
})
