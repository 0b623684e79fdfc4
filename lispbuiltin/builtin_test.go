package lispbuiltin_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shengbinmeng/lispy/lispbuiltin"
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispread"
	"github.com/shengbinmeng/lispy/lispval"
)

func rootEnv() *lispenv.Env {
	env := lispenv.New(nil)
	lispbuiltin.Register(env)
	return env
}

func eval(t *testing.T, src string) lispval.Value {
	t.Helper()
	env := rootEnv()
	return evalIn(env, src)
}

func evalIn(env *lispenv.Env, src string) lispval.Value {
	return lispeval.Eval(env, parseOne(src))
}

func parseOne(src string) lispval.Value {
	top := lispread.Read(src)
	return lispval.NewSExpr(top.Values()...)
}

func TestArithmeticBuiltins(t *testing.T) {
	assert.Equal(t, lispval.Num(6), eval(t, "+ 1 2 3"))
	assert.Equal(t, lispval.Num(-1), eval(t, "- 1 2"))
	assert.Equal(t, lispval.Num(-5), eval(t, "- 5"))
	assert.Equal(t, lispval.Num(24), eval(t, "* 2 3 4"))
	assert.Equal(t, lispval.Num(5), eval(t, "/ 10 2"))
}

func TestDivisionByZero(t *testing.T) {
	result := eval(t, "/ 10 0")
	assert.Equal(t, "Error: Division By Zero.", result.String())
}

func TestComparisonAndEquality(t *testing.T) {
	assert.Equal(t, lispval.Num(1), eval(t, "> 2 1"))
	assert.Equal(t, lispval.Num(0), eval(t, "< 2 1"))
	assert.Equal(t, lispval.Num(1), eval(t, "== 1 1"))
	assert.Equal(t, lispval.Num(1), eval(t, "!= 1 2"))
}

func TestListPrimitives(t *testing.T) {
	assert.Equal(t, "{1 2 3}", eval(t, "list 1 2 3").String())
	assert.Equal(t, "{1}", eval(t, "head {1 2 3}").String())
	assert.Equal(t, "{2 3}", eval(t, "tail {1 2 3}").String())
	assert.Equal(t, "3", eval(t, "eval {+ 1 2}").String())
}

func TestHeadOnEmptyIsError(t *testing.T) {
	result := eval(t, "head {}")
	e, ok := result.(lispval.Err)
	require.True(t, ok)
	assert.Contains(t, string(e), "passed {} for argument")
}

func TestIfBuiltin(t *testing.T) {
	assert.Equal(t, lispval.Num(3), eval(t, "if (== 1 1) {+ 1 2} {+ 10 20}"))
	assert.Equal(t, lispval.Num(30), eval(t, "if (== 1 2) {+ 1 2} {+ 10 20}"))
}

func TestDefAndLocalPut(t *testing.T) {
	env := rootEnv()
	evalIn(env, "def {x} 100")
	assert.Equal(t, lispval.Num(100), evalIn(env, "x"))

	evalIn(env, "def {setlocal} (\\ {v} {= {y} v})")
	evalIn(env, "setlocal 5")
	_, isErr := evalIn(env, "y").(lispval.Err)
	assert.True(t, isErr, "= inside a lambda must not bind y globally")
}

func TestLambdaDefinitionAndCurrying(t *testing.T) {
	env := rootEnv()
	evalIn(env, "def {add} (\\ {x y} {+ x y})")
	assert.Equal(t, lispval.Num(30), evalIn(env, "add 10 20"))
	assert.Equal(t, lispval.Num(30), evalIn(env, "(add 10) 20"))

	result := evalIn(env, "(\\ {x y} {+ x y}) 10 20")
	assert.Equal(t, lispval.Num(30), result)
}

func TestVariadicAddMul(t *testing.T) {
	env := rootEnv()
	evalIn(env, "def {add-mul} (\\ {x & xs} {+ x (eval (join {*} xs))})")
	assert.Equal(t, lispval.Num(34), evalIn(env, "add-mul 10 2 3 4"))
}

func TestErrorBuiltin(t *testing.T) {
	result := eval(t, `error "boom"`)
	assert.Equal(t, "Error: boom", result.String())
}

func TestPrintBuiltin(t *testing.T) {
	var buf bytes.Buffer
	old := lispbuiltin.Stdout
	lispbuiltin.Stdout = &buf
	defer func() { lispbuiltin.Stdout = old }()

	eval(t, "print 1 2 3")
	assert.Equal(t, "1 2 3\n", buf.String())
}

func TestLoadMissingFile(t *testing.T) {
	result := eval(t, `load "does-not-exist.lispy"`)
	e, ok := result.(lispval.Err)
	require.True(t, ok)
	assert.Contains(t, string(e), "Could not load file")
}
