package lispbuiltin

import (
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispval"
)

func arithmetic(name string, op func(acc, n int64) int64, unaryNegate bool) *lispeval.Builtin {
	return lispeval.NewBuiltin(name, func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
		if err := expectMinCount(name, args, 1); err != nil {
			return err
		}
		for i := range args.Values() {
			if err := expectNum(name, args, i); err != nil {
				return err
			}
		}

		nums := args.Values()
		if unaryNegate && len(nums) == 1 {
			return -nums[0].(lispval.Num)
		}

		acc := int64(nums[0].(lispval.Num))
		for _, v := range nums[1:] {
			n := int64(v.(lispval.Num))
			if name == "/" && n == 0 {
				return lispval.NewErr("Division By Zero.")
			}
			acc = op(acc, n)
		}
		return lispval.Num(acc)
	})
}

// Add sums a non-empty list of Num.
var Add = arithmetic("+", func(a, n int64) int64 { return a + n }, false)

// Sub subtracts left-to-right, or negates when given a single argument.
var Sub = arithmetic("-", func(a, n int64) int64 { return a - n }, true)

// Mul multiplies a non-empty list of Num.
var Mul = arithmetic("*", func(a, n int64) int64 { return a * n }, false)

// Div divides left-to-right; dividing by zero yields an Err.
var Div = arithmetic("/", func(a, n int64) int64 { return a / n }, false)

func comparison(name string, op func(a, b int64) bool) *lispeval.Builtin {
	return lispeval.NewBuiltin(name, func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
		if err := expectCount(name, args, 2); err != nil {
			return err
		}
		if err := expectNum(name, args, 0); err != nil {
			return err
		}
		if err := expectNum(name, args, 1); err != nil {
			return err
		}
		a := int64(args.Values()[0].(lispval.Num))
		b := int64(args.Values()[1].(lispval.Num))
		if op(a, b) {
			return lispval.Num(1)
		}
		return lispval.Num(0)
	})
}

// Gt, Lt, Ge, Le compare exactly two Num arguments.
var (
	Gt = comparison(">", func(a, b int64) bool { return a > b })
	Lt = comparison("<", func(a, b int64) bool { return a < b })
	Ge = comparison(">=", func(a, b int64) bool { return a >= b })
	Le = comparison("<=", func(a, b int64) bool { return a <= b })
)

func equality(name string, want bool) *lispeval.Builtin {
	return lispeval.NewBuiltin(name, func(_ *lispenv.Env, args *lispval.SExpr) lispval.Value {
		if err := expectCount(name, args, 2); err != nil {
			return err
		}
		eq := args.Values()[0].IsEqual(args.Values()[1])
		if eq == want {
			return lispval.Num(1)
		}
		return lispval.Num(0)
	})
}

// Eq and Ne compare any two values by deep equality.
var (
	Eq = equality("==", true)
	Ne = equality("!=", false)
)
