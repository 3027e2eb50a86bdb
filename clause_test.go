package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClause(t *testing.T) {
	clause, err := NewClause([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, clause.Len())

	lit, err := clause.At(0)
	require.NoError(t, err)
	assert.Equal(t, Literal(1), lit)
	lit, err = clause.At(1)
	require.NoError(t, err)
	assert.Equal(t, Literal(2), lit)
	lit, err = clause.At(2)
	require.NoError(t, err)
	assert.Equal(t, Literal(3), lit)

	_, err = clause.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	other, err := NewClause([]int{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, clause.Equal(other))

	xorClause, err := NewXorClause([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, xorClause.Len())

	lit, err = xorClause.At(-1)
	require.NoError(t, err)
	assert.Equal(t, Literal(3), lit)
	_, err = xorClause.At(-4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewClause([]int{1, 2, 3, 0})
	assert.ErrorIs(t, err, ErrZeroLiteral)
	_, err = NewXorClause([]int{1, 2, 3, 0})
	assert.ErrorIs(t, err, ErrZeroLiteral)
}

func TestClauseKindsDontMix(t *testing.T) {
	clause, err := NewClause([]int{1, 2, 3})
	require.NoError(t, err)
	xorClause, err := NewXorClause([]int{1, 2, 3})
	require.NoError(t, err)

	assert.NotEqual(t, clauseValue(clause).kindOf(), clauseValue(xorClause).kindOf())
}
