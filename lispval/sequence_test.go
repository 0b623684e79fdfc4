package lispval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shengbinmeng/lispy/lispval"
)

func TestSExprPrint(t *testing.T) {
	s := lispval.NewSExpr(lispval.Sym("+"), lispval.Num(1), lispval.Num(2))
	assert.Equal(t, "(+ 1 2)", s.String())
	assert.False(t, s.IsAtom())
}

func TestQExprPrint(t *testing.T) {
	q := lispval.NewQExpr(lispval.Num(1), lispval.Num(2), lispval.Num(3))
	assert.Equal(t, "{1 2 3}", q.String())
}

func TestSExprAndQExprNeverEqual(t *testing.T) {
	s := lispval.NewSExpr(lispval.Num(1))
	q := lispval.NewQExpr(lispval.Num(1))
	assert.False(t, s.IsEqual(q))
}

func TestSequenceDeepEquality(t *testing.T) {
	a := lispval.NewQExpr(lispval.Num(1), lispval.NewQExpr(lispval.Num(2)))
	b := lispval.NewQExpr(lispval.Num(1), lispval.NewQExpr(lispval.Num(2)))
	c := lispval.NewQExpr(lispval.Num(1), lispval.NewQExpr(lispval.Num(3)))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestCopyIsDeepAndIndependent(t *testing.T) {
	inner := lispval.NewQExpr(lispval.Num(1))
	original := lispval.NewQExpr(inner)

	copied := original.Copy().(*lispval.QExpr)
	copied.Add(lispval.Num(99))

	assert.Equal(t, 1, original.Length())
	assert.Equal(t, 2, copied.Length())
	assert.True(t, original.IsEqual(lispval.NewQExpr(inner)))
}

func TestAddPopTakeJoin(t *testing.T) {
	q := lispval.NewQExpr(lispval.Num(1), lispval.Num(2))
	q.Add(lispval.Num(3))
	assert.Equal(t, "{1 2 3}", q.String())

	popped := q.Pop(0)
	assert.Equal(t, lispval.Num(1), popped)
	assert.Equal(t, "{2 3}", q.String())

	taken := lispval.NewQExpr(lispval.Num(2), lispval.Num(3)).Take(1)
	assert.Equal(t, "{3}", taken.String())

	joined := lispval.NewQExpr(lispval.Num(1)).Join(lispval.NewQExpr(lispval.Num(2), lispval.Num(3)))
	assert.Equal(t, "{1 2 3}", joined.String())
}

func TestSExprAddAndPop(t *testing.T) {
	s := lispval.NewSExpr(lispval.Sym("head"))
	s.AddSExpr(lispval.NewQExpr(lispval.Num(1), lispval.Num(2)))
	assert.Equal(t, "(head {1 2})", s.String())

	popped := s.PopSExpr(0)
	assert.Equal(t, lispval.Sym("head"), popped)
	assert.Equal(t, "({1 2})", s.String())
}

func TestValuesSlice(t *testing.T) {
	q := lispval.NewQExpr(lispval.Num(1), lispval.Num(2))
	assert.Len(t, q.Values(), 2)
	assert.Equal(t, 2, q.Length())
}
