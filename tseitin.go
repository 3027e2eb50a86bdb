package cnf

import "math/bits"

// expandStoredParityClause performs the Tseitin expansion of a single
// stored parity clause (spec.md §4.5). The RHS bit is recovered from the
// sign of the first literal (spec.md §4.4's encoding convention); the
// clause's other literals are used as stored. Enumeration proceeds over
// all 2^k sign patterns in ascending bitmask order (bit i set means
// literal i is negated in that pattern), emitting the clause whenever the
// parity of the negation count differs from r — this is the canonical,
// deterministic order spec.md §9 requires of to_cnf's output.
//
// An empty stored clause (k=0) has no first literal to carry the RHS bit.
// CreateXor and XorClauseList.AddClause never produce one, but the flat,
// clause-value and binary constructors accept it; it expands to no
// clauses, i.e. it is read as the always-true relation 0 = 0.
func expandStoredParityClause(stored []Literal) []Clause {
	k := len(stored)
	if k == 0 {
		return nil
	}

	r := 0
	lits := make([]Literal, k)
	lits[0] = stored[0]
	if lits[0] < 0 {
		lits[0] = -lits[0]
		r = 1
	}
	copy(lits[1:], stored[1:])

	clauses := make([]Clause, 0, 1<<(k-1))
	total := 1 << k
	for mask := 0; mask < total; mask++ {
		parity := bits.OnesCount32(uint32(mask)) & 1
		if parity == r {
			continue
		}
		cl := make([]Literal, k)
		for i := 0; i < k; i++ {
			if mask&(1<<uint(i)) != 0 {
				cl[i] = lits[i].Negate()
			} else {
				cl[i] = lits[i]
			}
		}
		clauses = append(clauses, Clause{lits: cl})
	}
	return clauses
}

// expandParityInto appends the Tseitin expansion of col (a stored-format
// parity clause, RHS already folded into its first literal's sign) to
// dst.
func expandParityInto(dst *CNF, col []Literal) error {
	for _, clause := range expandStoredParityClause(col) {
		if err := dst.list.addLiterals(clause.lits); err != nil {
			return err
		}
	}
	return nil
}
