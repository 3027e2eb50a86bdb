package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXorClauseList(t *testing.T) {
	xors := NewXorClauseList()
	assert.Equal(t, 0, xors.Len())

	require.NoError(t, xors.AddClause([]int{1, 2, 3}))
	assert.Equal(t, 1, xors.Len())
	c0, err := xors.At(0)
	require.NoError(t, err)
	want0, _ := NewXorClause([]int{1, 2, 3})
	assert.True(t, c0.Equal(want0))
	assert.Equal(t, int32(3), xors.NVars())

	require.NoError(t, xors.AddClause([]int{4, 5, 6}))
	assert.Equal(t, int32(6), xors.NVars())

	flat := xors.Flat()
	assert.Equal(t, []int32{1, 2, 3, 0, 4, 5, 6, 0}, flat.Raw())
	flat.Release()

	require.NoError(t, xors.AddClause([]int{-7, 8, -9}))
	last, err := xors.At(-1)
	require.NoError(t, err)
	prevLast, err := xors.At(2)
	require.NoError(t, err)
	assert.True(t, last.Equal(prevLast))

	_, err = xors.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = xors.At(-4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestXorCNFConstructionAndDIMACS(t *testing.T) {
	xorCNF := NewXorCNF()
	cnfPart, err := CNFFromFlat([]int{1, -2, 3, 0, -4, 5, -6, 0})
	require.NoError(t, err)
	require.NoError(t, xorCNF.AddCNF(cnfPart))

	xorPart, err := XorClauseListFromFlat([]int{1, 3, 6, 0, -2, 4, 5, 0})
	require.NoError(t, err)
	require.NoError(t, xorCNF.AddXor(xorPart))

	assert.Equal(t, int32(6), xorCNF.NVars())
	assert.Equal(t, "p cnf 6 4\n"+
		"1 -2 3 0\n"+
		"-4 5 -6 0\n"+
		"x1 3 6 0\n"+
		"x-2 4 5 0\n", xorCNF.ToDIMACS())

	recovered, err := FromDIMACS(xorCNF.ToDIMACS())
	require.NoError(t, err)
	assert.True(t, recovered.Equal(xorCNF))
}

func TestXorCNFAppendSelfRejected(t *testing.T) {
	xorCNF := NewXorCNF()
	cnfPart, _ := CNFFromFlat([]int{1, -2, 3, 0})
	require.NoError(t, xorCNF.AddCNF(cnfPart))
	xorPart, _ := XorClauseListFromFlat([]int{1, 3, 0})
	require.NoError(t, xorCNF.AddXor(xorPart))

	err := xorCNF.Append(xorCNF)
	assert.ErrorIs(t, err, ErrBorrowed)

	clone := xorCNF.Clone()
	require.NoError(t, xorCNF.Append(clone))

	assert.Equal(t, "p cnf 3 4\n"+
		"1 -2 3 0\n"+
		"1 -2 3 0\n"+
		"x1 3 0\n"+
		"x1 3 0\n", xorCNF.ToDIMACS())
}

func TestXorCNFFromDIMACSErrors(t *testing.T) {
	_, err := FromDIMACS("")
	assert.Error(t, err)
	_, err = FromDIMACS("p cnf 6 x\n")
	assert.Error(t, err)
	_, err = FromDIMACS("p cnf x 0\n")
	assert.Error(t, err)
	_, err = FromDIMACS("p cnf 6 0\np cnf 6 0\n")
	assert.Error(t, err)
}

func TestXorClauseListRejectsWrongKind(t *testing.T) {
	xors := NewXorClauseList()
	require.NoError(t, xors.AddClause([]int{1, 2, 3}))
	require.NoError(t, xors.AddClause([]int{-4, 5, 6}))
	require.NoError(t, xors.AddClause([]int{7, 8, -9}))

	require.NoError(t, xors.AddClause([]int{1, -3, 5}))

	clause, _ := NewClause([]int{2, -4, 6})
	err := xors.AddClauseValue(clause)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestXorClauseListOperators(t *testing.T) {
	xors := NewXorClauseList()
	a, err := XorClauseListFromFlat([]int{-1, 2, -3, 0, 4, -5, 6, 0})
	require.NoError(t, err)
	require.NoError(t, xors.Append(a))

	b, err := XorClauseListFromFlat([]int{1, 2, 3, 0})
	require.NoError(t, err)
	require.NoError(t, xors.Append(b))

	require.Equal(t, 3, xors.Len())
	c0, _ := xors.At(0)
	want0, _ := NewXorClause([]int{-1, 2, -3})
	assert.True(t, c0.Equal(want0))
	c1, _ := xors.At(1)
	want1, _ := NewXorClause([]int{4, -5, 6})
	assert.True(t, c1.Equal(want1))
	c2, _ := xors.At(2)
	want2, _ := NewXorClause([]int{1, 2, 3})
	assert.True(t, c2.Equal(want2))

	assert.True(t, xors.Contains(c1))
	plainC1, _ := NewClause([]int{4, -5, 6})
	assert.False(t, xors.Contains(plainC1))
	assert.Equal(t, 0, xors.Count(plainC1))
	assert.Equal(t, 1, xors.Count(c1))

	idx, err := xors.IndexOf(c1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	idx, err = xors.IndexOf(c2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	_, err = xors.IndexOf(plainC1)
	assert.ErrorIs(t, err, ErrClauseNotFound)

	tmp, err := XorClauseListFromFlatWithNVars([]int{3, -7, -12, 0}, 14)
	require.NoError(t, err)
	assert.Equal(t, int32(14), tmp.NVars())
	require.NoError(t, xors.Append(tmp))
	assert.Equal(t, int32(14), xors.NVars())

	more, err := XorClauseListFromFlat([]int{3, -7, -16, 0})
	require.NoError(t, err)
	require.NoError(t, xors.Append(more))
	assert.Equal(t, int32(16), xors.NVars())
}
