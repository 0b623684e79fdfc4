// Package lispbuiltin implements the primitive functions exposed to the
// language: list operations, arithmetic, comparison, equality, control
// flow, definition, lambda construction, and I/O. Grounded on the
// teacher's sxbuiltins package layout (one file per concern) and its
// GetSymbol/GetString/GetNumber/GetList argument-checking helpers
// (sxbuiltins/sxbuiltins.go), adapted to return Value-typed Err results
// instead of Go errors, since spec.md treats errors as first-class values.
package lispbuiltin

import (
	"github.com/shengbinmeng/lispy/lispval"
)

// expectCount returns an Err unless args has exactly n elements.
func expectCount(name string, args *lispval.SExpr, n int) lispval.Value {
	if args.Length() != n {
		return lispval.NewErr(
			"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, args.Length(), n)
	}
	return nil
}

// expectMinCount returns an Err unless args has at least n elements.
func expectMinCount(name string, args *lispval.SExpr, n int) lispval.Value {
	if args.Length() < n {
		return lispval.NewErr(
			"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, args.Length(), n)
	}
	return nil
}

// expectNum returns an Err unless args[i] is a Num.
func expectNum(name string, args *lispval.SExpr, i int) lispval.Value {
	if _, ok := args.Values()[i].(lispval.Num); !ok {
		return lispval.NewErr(
			"Function '%s' passed incorrect type for argument %d. Got %s, Expected Number.",
			name, i, typeName(args.Values()[i]))
	}
	return nil
}

// expectQExpr returns an Err unless args[i] is a QExpr.
func expectQExpr(name string, args *lispval.SExpr, i int) lispval.Value {
	if _, ok := args.Values()[i].(*lispval.QExpr); !ok {
		return lispval.NewErr(
			"Function '%s' passed incorrect type for argument %d. Got %s, Expected Q-Expression.",
			name, i, typeName(args.Values()[i]))
	}
	return nil
}

// expectStr returns an Err unless args[i] is a Str.
func expectStr(name string, args *lispval.SExpr, i int) lispval.Value {
	if _, ok := args.Values()[i].(lispval.Str); !ok {
		return lispval.NewErr(
			"Function '%s' passed incorrect type for argument %d. Got %s, Expected String.",
			name, i, typeName(args.Values()[i]))
	}
	return nil
}

// expectNonEmpty returns an Err unless args[i] is a non-empty QExpr. The
// caller must already have confirmed args[i] is a QExpr.
func expectNonEmpty(name string, args *lispval.SExpr, i int) lispval.Value {
	q := args.Values()[i].(*lispval.QExpr)
	if q.Length() == 0 {
		return lispval.NewErr("Function '%s' passed {} for argument %d.", name, i)
	}
	return nil
}

func typeName(v lispval.Value) string {
	switch v.(type) {
	case lispval.Num:
		return "Number"
	case lispval.Err:
		return "Error"
	case lispval.Sym:
		return "Symbol"
	case lispval.Str:
		return "String"
	case *lispval.SExpr:
		return "S-Expression"
	case *lispval.QExpr:
		return "Q-Expression"
	default:
		return "Function"
	}
}
