package lispbuiltin

import (
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispval"
)

// List retags its arguments as a QExpr, taking ownership of args verbatim.
var List = lispeval.NewBuiltin("list", func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
	return lispval.NewQExpr(args.Values()...)
})

// Head returns a QExpr containing only its argument's first element.
var Head = lispeval.NewBuiltin("head", func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
	if err := expectCount("head", args, 1); err != nil {
		return err
	}
	if err := expectQExpr("head", args, 0); err != nil {
		return err
	}
	if err := expectNonEmpty("head", args, 0); err != nil {
		return err
	}
	q := args.Values()[0].(*lispval.QExpr)
	return q.Take(0)
})

// Tail returns its argument with its first element removed.
var Tail = lispeval.NewBuiltin("tail", func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
	if err := expectCount("tail", args, 1); err != nil {
		return err
	}
	if err := expectQExpr("tail", args, 0); err != nil {
		return err
	}
	if err := expectNonEmpty("tail", args, 0); err != nil {
		return err
	}
	q := args.Values()[0].(*lispval.QExpr)
	q.Pop(0)
	return q
})

// Join concatenates any number of QExpr arguments into one.
var Join = lispeval.NewBuiltin("join", func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
	for i := range args.Values() {
		if err := expectQExpr("join", args, i); err != nil {
			return err
		}
	}
	result := lispval.NewQExpr()
	for _, v := range args.Values() {
		result.Join(v.(*lispval.QExpr))
	}
	return result
})

// Eval evaluates its single QExpr argument as if it were an SExpr.
var Eval = lispeval.NewBuiltin("eval", func(env *lispenv.Env, args *lispval.SExpr) lispval.Value {
	if err := expectCount("eval", args, 1); err != nil {
		return err
	}
	if err := expectQExpr("eval", args, 0); err != nil {
		return err
	}
	q := args.Values()[0].(*lispval.QExpr)
	return lispeval.EvalSExpr(env, lispval.NewSExpr(q.Values()...))
})
