package cnf

import "fmt"

// XorClauseList is a packed list of parity (XOR) clauses. The RHS bit of
// each stored clause is folded into the sign of its first literal: a
// leading negative literal denotes RHS=1, a leading positive literal
// denotes RHS=0 (see CreateXor and spec.md §4.4/§9).
type XorClauseList struct {
	list *ClauseList[XorKind]
}

// NewXorClauseList returns an empty XorClauseList.
func NewXorClauseList() *XorClauseList {
	return &XorClauseList{list: newClauseList[XorKind]()}
}

// XorClauseListFromFlat builds an XorClauseList from a flat zero-terminated
// literal encoding.
func XorClauseListFromFlat(flat []int) (*XorClauseList, error) {
	l, err := clauseListFromFlat[XorKind](flat)
	if err != nil {
		return nil, err
	}
	return &XorClauseList{list: l}, nil
}

// XorClauseListFromFlatWithNVars is XorClauseListFromFlat with an explicit
// nvars override.
func XorClauseListFromFlatWithNVars(flat []int, nvars int32) (*XorClauseList, error) {
	x, err := XorClauseListFromFlat(flat)
	if err != nil {
		return nil, err
	}
	if nvars < x.list.nvars {
		return nil, fmt.Errorf("nvars %d, observed max %d: %w", nvars, x.list.nvars, ErrNVarsTooSmall)
	}
	x.list.nvars = nvars
	return x, nil
}

// Len returns the number of parity clauses.
func (x *XorClauseList) Len() int { return x.list.Len() }

// NVars returns the asserted upper bound on variable indices.
func (x *XorClauseList) NVars() int32 { return x.list.NVars() }

// SetNVars raises nvars; see ClauseList.SetNVars.
func (x *XorClauseList) SetNVars(n int32) error { return x.list.SetNVars(n) }

// AddClause appends a parity clause given as raw nonzero literals; the
// first entry's sign carries the RHS bit. An empty clause is rejected with
// ErrEmptyXor.
func (x *XorClauseList) AddClause(lits []int) error {
	if len(lits) == 0 {
		return fmt.Errorf("add clause: %w", ErrEmptyXor)
	}
	ls, err := toLiterals(lits)
	if err != nil {
		return err
	}
	return x.list.addLiterals(ls)
}

// AddClauseValue appends a clause value, which must be an XorClause (a
// Clause is rejected with ErrKindMismatch).
func (x *XorClauseList) AddClauseValue(clause clauseValue) error {
	if clause.kindOf() != tagXor {
		return fmt.Errorf("add clause: %w", ErrKindMismatch)
	}
	return x.list.addLiterals(clause.rawLits())
}

// At returns an independent copy of parity clause i.
func (x *XorClauseList) At(i int) (XorClause, error) {
	raw, err := x.list.rawAt(i)
	if err != nil {
		return XorClause{}, err
	}
	return XorClause{lits: int32sToLiterals(raw)}, nil
}

// Borrow returns a zero-copy view over parity clause i.
func (x *XorClauseList) Borrow(i int) (*View[XorKind], error) { return x.list.Borrow(i) }

// Flat returns a zero-copy view over the packed buffer.
func (x *XorClauseList) Flat() *View[XorKind] { return x.list.Flat() }

// All returns independent copies of every parity clause, in order.
func (x *XorClauseList) All() []XorClause {
	out := make([]XorClause, x.Len())
	for i := range out {
		out[i], _ = x.At(i)
	}
	return out
}

// Append concatenates other onto the receiver (the `a += b` operation).
func (x *XorClauseList) Append(other *XorClauseList) error { return x.list.Append(other.list) }

// Clone returns an independent deep copy.
func (x *XorClauseList) Clone() *XorClauseList { return &XorClauseList{list: x.list.Clone()} }

// Equal reports structural equality.
func (x *XorClauseList) Equal(other *XorClauseList) bool { return x.list.Equal(other.list) }

// Contains reports whether clause appears verbatim.
func (x *XorClauseList) Contains(clause clauseValue) bool { return x.list.Contains(clause) }

// Count returns the number of occurrences of clause.
func (x *XorClauseList) Count(clause clauseValue) int { return x.list.Count(clause) }

// IndexOf returns the index of the first clause equal to clause.
func (x *XorClauseList) IndexOf(clause clauseValue) (int, error) { return x.list.IndexOf(clause) }

// Translate rewrites every literal through mapping; see ClauseList.Translate.
func (x *XorClauseList) Translate(mapping []int32) (*XorClauseList, error) {
	l, err := x.list.Translate(mapping)
	if err != nil {
		return nil, err
	}
	return &XorClauseList{list: l}, nil
}
