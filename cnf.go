package cnf

import "fmt"

// CNF is a packed list of ordinary (disjunction) clauses.
type CNF struct {
	list *ClauseList[OrKind]
}

// NewCNF returns an empty CNF.
func NewCNF() *CNF {
	return &CNF{list: newClauseList[OrKind]()}
}

// CNFFromFlat builds a CNF from a flat zero-terminated literal encoding,
// e.g. []int{1, 2, 3, 0, 4, 5, 6, 0}. See spec.md §4.2.
func CNFFromFlat(flat []int) (*CNF, error) {
	l, err := clauseListFromFlat[OrKind](flat)
	if err != nil {
		return nil, err
	}
	return &CNF{list: l}, nil
}

// CNFFromFlatWithNVars is CNFFromFlat with an explicit nvars override,
// which must be at least the maximum variable observed in flat.
func CNFFromFlatWithNVars(flat []int, nvars int32) (*CNF, error) {
	c, err := CNFFromFlat(flat)
	if err != nil {
		return nil, err
	}
	if nvars < c.list.nvars {
		return nil, fmt.Errorf("nvars %d, observed max %d: %w", nvars, c.list.nvars, ErrNVarsTooSmall)
	}
	c.list.nvars = nvars
	return c, nil
}

// Len returns the number of clauses.
func (c *CNF) Len() int { return c.list.Len() }

// NVars returns the asserted upper bound on variable indices.
func (c *CNF) NVars() int32 { return c.list.NVars() }

// SetNVars raises nvars; see ClauseList.SetNVars.
func (c *CNF) SetNVars(n int32) error { return c.list.SetNVars(n) }

// AddClause appends a clause given as raw nonzero literals.
func (c *CNF) AddClause(lits []int) error {
	ls, err := toLiterals(lits)
	if err != nil {
		return err
	}
	return c.list.addLiterals(ls)
}

// AddClauseValue appends a clause value, which must be a Clause (an
// XorClause is rejected with ErrKindMismatch, matching the spec's
// cross-kind AddClause rule).
func (c *CNF) AddClauseValue(clause clauseValue) error {
	if clause.kindOf() != tagOr {
		return fmt.Errorf("add clause: %w", ErrKindMismatch)
	}
	return c.list.addLiterals(clause.rawLits())
}

// At returns an independent copy of clause i. Negative indices address
// from the end.
func (c *CNF) At(i int) (Clause, error) {
	raw, err := c.list.rawAt(i)
	if err != nil {
		return Clause{}, err
	}
	return Clause{lits: int32sToLiterals(raw)}, nil
}

// Borrow returns a zero-copy view over clause i.
func (c *CNF) Borrow(i int) (*View[OrKind], error) { return c.list.Borrow(i) }

// Flat returns a zero-copy view over the packed buffer.
func (c *CNF) Flat() *View[OrKind] { return c.list.Flat() }

// All returns independent copies of every clause, in order.
func (c *CNF) All() []Clause {
	out := make([]Clause, c.Len())
	for i := range out {
		out[i], _ = c.At(i)
	}
	return out
}

// Append concatenates other onto the receiver (the `a += b` operation).
func (c *CNF) Append(other *CNF) error { return c.list.Append(other.list) }

// Clone returns an independent deep copy.
func (c *CNF) Clone() *CNF { return &CNF{list: c.list.Clone()} }

// Equal reports structural equality (same nvars, identical packed buffer).
func (c *CNF) Equal(other *CNF) bool { return c.list.Equal(other.list) }

// Contains reports whether clause appears verbatim (kind-aware: an
// XorClause is never contained in a CNF).
func (c *CNF) Contains(clause clauseValue) bool { return c.list.Contains(clause) }

// Count returns the number of occurrences of clause.
func (c *CNF) Count(clause clauseValue) int { return c.list.Count(clause) }

// IndexOf returns the index of the first clause equal to clause.
func (c *CNF) IndexOf(clause clauseValue) (int, error) { return c.list.IndexOf(clause) }

// Translate rewrites every literal through mapping; see ClauseList.Translate.
func (c *CNF) Translate(mapping []int32) (*CNF, error) {
	l, err := c.list.Translate(mapping)
	if err != nil {
		return nil, err
	}
	return &CNF{list: l}, nil
}

// Units returns the set of literals l such that some clause is exactly
// [l]. CNF-only: unit clauses are not a meaningful concept for parity
// clauses.
func (c *CNF) Units() map[Literal]struct{} {
	units := make(map[Literal]struct{})
	for i := 0; i < c.Len(); i++ {
		raw, _ := c.list.rawAt(i)
		if len(raw) == 1 {
			units[Literal(raw[0])] = struct{}{}
		}
	}
	return units
}

// LogicalOr returns a new CNF identical to the receiver with l appended to
// every clause.
func (c *CNF) LogicalOr(l Literal) *CNF {
	out := NewCNF()
	for i := 0; i < c.Len(); i++ {
		raw, _ := c.list.rawAt(i)
		lits := int32sToLiterals(raw)
		lits = append(lits, l)
		_ = out.list.addLiterals(lits)
	}
	out.list.nvars = c.list.nvars
	if v := l.Var(); v > out.list.nvars {
		out.list.nvars = v
	}
	return out
}

// ImpliedBy returns a new CNF expressing `v -> original`: equivalent to
// LogicalOr(-v).
func (c *CNF) ImpliedBy(v Literal) *CNF {
	return c.LogicalOr(v.Negate())
}

func int32sToLiterals(raw []int32) []Literal {
	out := make([]Literal, len(raw))
	for i, v := range raw {
		out[i] = Literal(v)
	}
	return out
}
