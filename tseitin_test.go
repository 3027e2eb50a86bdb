package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXorCNFToCNF(t *testing.T) {
	xorEqual, err := NewXorCNFFromFlat(nil, []int{1, 2, 0})
	require.NoError(t, err)
	cnfEqual, err := xorEqual.ToCNF()
	require.NoError(t, err)
	assert.Equal(t, 2, cnfEqual.Len())
	lit12, _ := NewClause([]int{1, -2})
	litNeg12, _ := NewClause([]int{-1, 2})
	assert.True(t, cnfEqual.Contains(lit12))
	assert.True(t, cnfEqual.Contains(litNeg12))

	xorNotEqual, err := NewXorCNFFromFlat(nil, []int{-1, 2, 0})
	require.NoError(t, err)
	cnfNotEqual, err := xorNotEqual.ToCNF()
	require.NoError(t, err)
	assert.Equal(t, 2, cnfNotEqual.Len())
	both, _ := NewClause([]int{1, 2})
	bothNeg, _ := NewClause([]int{-1, -2})
	assert.True(t, cnfNotEqual.Contains(both))
	assert.True(t, cnfNotEqual.Contains(bothNeg))
}

func TestCreateXorAsCNF(t *testing.T) {
	cnfXor3, err := NewXorAsCNF([][]int{{1}, {2}, {3}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cnfXor3.Len())
	for _, lits := range [][]int{{1, 2, -3}, {1, -2, 3}, {-1, 2, 3}, {-1, -2, -3}} {
		c, _ := NewClause(lits)
		assert.True(t, cnfXor3.Contains(c), "expected clause %v", lits)
	}

	cnfXor3Multi, err := NewXorAsCNF([][]int{{1, 4}, {2, 5}, {3, 6}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cnfXor3Multi.Len())
	for _, lits := range [][]int{
		{1, 2, -3}, {1, -2, 3}, {-1, 2, 3}, {-1, -2, -3},
		{4, 5, -6}, {4, -5, 6}, {-4, 5, 6}, {-4, -5, -6},
	} {
		c, _ := NewClause(lits)
		assert.True(t, cnfXor3Multi.Contains(c), "expected clause %v", lits)
	}
}

func xorClausesToCNF(t *testing.T, xors *XorClauseList) *CNF {
	t.Helper()
	out, err := NewXorCNFFromParts(NewCNF(), xors).ToCNF()
	require.NoError(t, err)
	return out
}

func TestCreateXor(t *testing.T) {
	xorEqual, err := NewXorClauses([][]int{{1}, {2}}, nil)
	require.NoError(t, err)
	cnfEqual := xorClausesToCNF(t, xorEqual)
	assert.Equal(t, 2, cnfEqual.Len())
	c1, _ := NewClause([]int{1, -2})
	c2, _ := NewClause([]int{-1, 2})
	assert.True(t, cnfEqual.Contains(c1))
	assert.True(t, cnfEqual.Contains(c2))

	xorNotEqual, err := NewXorClauses([][]int{{1}, {2}}, []int{1})
	require.NoError(t, err)
	cnfNotEqual := xorClausesToCNF(t, xorNotEqual)
	c3, _ := NewClause([]int{1, 2})
	c4, _ := NewClause([]int{-1, -2})
	assert.True(t, cnfNotEqual.Contains(c3))
	assert.True(t, cnfNotEqual.Contains(c4))

	_, err = NewXorClauses(nil, []int{1})
	assert.ErrorIs(t, err, ErrEmptyXor)

	xor3, err := NewXorClauses([][]int{{1}, {2}, {3}}, nil)
	require.NoError(t, err)
	cnf3 := xorClausesToCNF(t, xor3)
	assert.Equal(t, 4, cnf3.Len())

	_, err = NewXorClauses([][]int{{0}}, []int{1})
	assert.ErrorIs(t, err, ErrZeroLiteral)
	_, err = NewXorClauses([][]int{{1, 2}, {3, 0}}, nil)
	assert.ErrorIs(t, err, ErrZeroLiteral)
	_, err = NewXorClauses([][]int{{0}}, nil)
	assert.ErrorIs(t, err, ErrZeroLiteral)
}
