package lispenv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispval"
)

func TestPutAndGetLocal(t *testing.T) {
	env := lispenv.New(nil)
	env.Put("x", lispval.Num(10))

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, lispval.Num(10), v)
}

func TestGetAscendsToParent(t *testing.T) {
	root := lispenv.New(nil)
	root.Put("x", lispval.Num(1))
	child := lispenv.New(root)

	v, err := child.Get("x")
	require.NoError(t, err)
	assert.Equal(t, lispval.Num(1), v)
}

func TestGetUnboundReturnsNotBoundError(t *testing.T) {
	env := lispenv.New(nil)
	_, err := env.Get("nope")
	require.Error(t, err)
	var nb lispenv.NotBoundError
	require.ErrorAs(t, err, &nb)
	assert.Equal(t, "nope", nb.Name)
}

func TestPutIsLocalOnly(t *testing.T) {
	root := lispenv.New(nil)
	child := lispenv.New(root)
	child.Put("x", lispval.Num(5))

	_, err := root.Get("x")
	require.Error(t, err)
}

func TestDefWritesToRoot(t *testing.T) {
	root := lispenv.New(nil)
	child := lispenv.New(root)
	grandchild := lispenv.New(child)

	grandchild.Def("g", lispval.Num(42))

	v, err := root.Get("g")
	require.NoError(t, err)
	assert.Equal(t, lispval.Num(42), v)

	_, err = child.Get("g")
	require.NoError(t, err, "child should see the root binding by ascending")
}

func TestGetReturnsACopyNotAnAlias(t *testing.T) {
	env := lispenv.New(nil)
	original := lispval.NewQExpr(lispval.Num(1))
	env.Put("q", original)

	got, err := env.Get("q")
	require.NoError(t, err)
	got.(*lispval.QExpr).Add(lispval.Num(2))

	stillStored, err := env.Get("q")
	require.NoError(t, err)
	assert.Equal(t, 1, stillStored.(*lispval.QExpr).Length())
}

func TestCopyIsIndependent(t *testing.T) {
	root := lispenv.New(nil)
	root.Put("x", lispval.Num(1))

	cp := root.Copy()
	cp.Put("x", lispval.Num(2))

	orig, _ := root.Get("x")
	copied, _ := cp.Get("x")
	assert.Equal(t, lispval.Num(1), orig)
	assert.Equal(t, lispval.Num(2), copied)
}

func TestSetParentReparents(t *testing.T) {
	a := lispenv.New(nil)
	a.Put("x", lispval.Num(1))
	b := lispenv.New(nil)
	b.Put("x", lispval.Num(2))

	child := lispenv.New(a)
	v, _ := child.Get("x")
	assert.Equal(t, lispval.Num(1), v)

	child.SetParent(b)
	v, _ = child.Get("x")
	assert.Equal(t, lispval.Num(2), v)
}
