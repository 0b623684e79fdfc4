package lispeval

import (
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispval"
)

// Eval reduces v to a value in env. A Sym resolves against env; an SExpr is
// reduced via EvalSExpr; everything else (Num, Str, Err, QExpr, Builtin,
// Lambda) evaluates to itself.
func Eval(env *lispenv.Env, v lispval.Value) lispval.Value {
	switch t := v.(type) {
	case lispval.Sym:
		got, err := env.Get(t.Name())
		if err != nil {
			return lispval.NewErr("Unbound Symbol '%s'", t.Name())
		}
		return got
	case *lispval.SExpr:
		return EvalSExpr(env, t)
	default:
		return v
	}
}

// EvalSExpr evaluates every child of s in order, then reduces the result:
// the first Err produced by any child wins outright; an empty sequence
// evaluates to itself; a single child unwraps; otherwise the first child
// must be a function, applied to the rest.
func EvalSExpr(env *lispenv.Env, s *lispval.SExpr) lispval.Value {
	items := s.Values()
	evaluated := make([]lispval.Value, len(items))
	for i, item := range items {
		evaluated[i] = Eval(env, item)
	}
	for _, ev := range evaluated {
		if e, ok := ev.(lispval.Err); ok {
			return e
		}
	}

	switch len(evaluated) {
	case 0:
		return lispval.NewSExpr()
	case 1:
		return evaluated[0]
	}

	f := evaluated[0]
	args := lispval.NewSExpr(evaluated[1:]...)
	if !isFun(f) {
		return lispval.NewErr("first element is not a function")
	}
	return Call(env, f, args)
}

func isFun(v lispval.Value) bool {
	switch v.(type) {
	case *Builtin, *Lambda:
		return true
	}
	return false
}

// Call applies f (a Builtin or Lambda) to args, an SExpr of already
// evaluated arguments. The caller relinquishes args: Call and the callee it
// dispatches to own it outright.
func Call(env *lispenv.Env, f lispval.Value, args *lispval.SExpr) lispval.Value {
	switch fn := f.(type) {
	case *Builtin:
		return fn.Fn(env, args)
	case *Lambda:
		return callLambda(env, fn, args)
	default:
		return lispval.NewErr("first element is not a function")
	}
}

// callLambda binds args against fn's formals left to right, per spec.md
// §4.D: a leading '&' formal collects the remaining arguments into a
// QExpr; running out of formals with arguments left over is an arity
// error; once every formal is bound, the body evaluates in the lambda's
// environment re-parented onto the caller; if formals remain unbound, a
// deep copy of the partially applied lambda is returned, enabling currying.
func callLambda(callerEnv *lispenv.Env, fn *Lambda, args *lispval.SExpr) lispval.Value {
	lambda := fn.Copy().(*Lambda)
	given := args.Length()
	totalFormals := lambda.Formals.Length()
	argIdx := 0

	for lambda.Formals.Length() > 0 {
		sym, ok := lambda.Formals.Values()[0].(lispval.Sym)
		if !ok {
			return lispval.NewErr("Function format invalid. Symbol '&' not followed by single symbol.")
		}

		if sym.Name() == "&" {
			if lambda.Formals.Length() != 2 {
				return lispval.NewErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			restSym, ok := lambda.Formals.Values()[1].(lispval.Sym)
			if !ok {
				return lispval.NewErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			lambda.Formals.Pop(0)
			lambda.Formals.Pop(0)
			lambda.Env.Put(restSym.Name(), lispval.NewQExpr(args.Values()[argIdx:]...))
			argIdx = given
			break
		}

		if argIdx >= given {
			// Out of arguments with formals still pending: stop binding so
			// the caller gets back a partially applied lambda (currying).
			break
		}
		lambda.Formals.Pop(0)
		lambda.Env.Put(sym.Name(), args.Values()[argIdx])
		argIdx++
	}

	if argIdx < given {
		return lispval.NewErr("Function passed too many arguments. Got %d, Expected %d.", given, totalFormals)
	}

	if lambda.Formals.Length() == 0 {
		lambda.Env.SetParent(callerEnv)
		body := lispval.NewSExpr(lambda.Body.Values()...)
		return EvalSExpr(lambda.Env, body)
	}

	return lambda
}
