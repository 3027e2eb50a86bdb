package cnf

import "fmt"

// xorColumns validates k groups of equal width w >= 1 (spec.md §4.4) and
// returns, for each column j, the literal sequence of that column's
// parity clause with the RHS bit folded into the sign of its first
// literal. rhs may be nil, meaning all-zero.
func xorColumns(groups [][]int, rhs []int) ([][]Literal, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("create_xor: %w", ErrEmptyXor)
	}
	w := len(groups[0])
	if w == 0 {
		return nil, fmt.Errorf("create_xor: %w", ErrEmptyXor)
	}
	for gi, g := range groups {
		if len(g) != w {
			return nil, fmt.Errorf("create_xor: group %d has width %d, want %d: %w", gi, len(g), w, ErrGroupWidthMismatch)
		}
	}
	if rhs == nil {
		rhs = make([]int, w)
	} else if len(rhs) != w {
		return nil, fmt.Errorf("create_xor: rhs has width %d, want %d: %w", len(rhs), w, ErrGroupWidthMismatch)
	}

	cols := make([][]Literal, w)
	for j := 0; j < w; j++ {
		col := make([]Literal, len(groups))
		for gi, g := range groups {
			v := g[j]
			if v == 0 {
				return nil, fmt.Errorf("create_xor: column %d, group %d: %w", j, gi, ErrZeroLiteral)
			}
			col[gi] = Literal(v)
		}
		if rhs[j] != 0 {
			col[0] = col[0].Negate()
		}
		cols[j] = col
	}
	return cols, nil
}

// NewXorClauses builds a fresh XorClauseList holding one parity clause per
// column of the given groups, per spec.md §4.4.
func NewXorClauses(groups [][]int, rhs []int) (*XorClauseList, error) {
	cols, err := xorColumns(groups, rhs)
	if err != nil {
		return nil, err
	}
	out := NewXorClauseList()
	for _, col := range cols {
		if err := out.list.addLiterals(col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NewXorAsCNF builds the CNF directly equivalent to the XOR relation
// described by groups/rhs, by Tseitin-expanding every column (spec.md
// §4.4: "CNF.create_xor(*groups, rhs=r) produces the equivalent CNF
// directly using the expansion").
func NewXorAsCNF(groups [][]int, rhs []int) (*CNF, error) {
	cols, err := xorColumns(groups, rhs)
	if err != nil {
		return nil, err
	}
	out := NewCNF()
	for _, col := range cols {
		if err := expandParityInto(out, col); err != nil {
			return nil, err
		}
	}
	return out, nil
}
