package lispbuiltin

import (
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispval"
)

// If evaluates its true or false branch depending on a Num condition. Both
// branches are supplied as QExpr and evaluated the same way a lambda body
// is: cast to an SExpr and reduced.
var If = lispeval.NewBuiltin("if", func(env *lispenv.Env, args *lispval.SExpr) lispval.Value {
	if err := expectCount("if", args, 3); err != nil {
		return err
	}
	if err := expectNum("if", args, 0); err != nil {
		return err
	}
	if err := expectQExpr("if", args, 1); err != nil {
		return err
	}
	if err := expectQExpr("if", args, 2); err != nil {
		return err
	}

	cond := args.Values()[0].(lispval.Num)
	branch := args.Values()[2].(*lispval.QExpr)
	if cond != 0 {
		branch = args.Values()[1].(*lispval.QExpr)
	}
	return lispeval.EvalSExpr(env, lispval.NewSExpr(branch.Values()...))
})
