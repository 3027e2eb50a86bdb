package cnf

import "fmt"

// ClauseList is the packed, flat representation of a sequence of clauses
// shared by CNF and XorClauseList (spec.md §3-4.2). buf is the
// zero-terminated concatenation of every clause's literals (B); starts
// holds the m+1 segment boundaries into buf (S). Clause i occupies
// buf[starts[i]:starts[i+1]], with buf[starts[i+1]-1] always the
// terminating 0.
//
// The kind (ordinary vs. parity) is a compile-time type parameter rather
// than a runtime field, per the "tagged kind vs. inheritance" design note:
// CNF and XorClauseList are distinct instantiations and the Go type
// checker rejects most cross-kind mistakes (e.g. Append) for free.
type ClauseList[K Kind] struct {
	buf     []int32
	starts  []int32
	nvars   int32
	tracker borrowTracker
}

// clauseValue is implemented by Clause and XorClause so that operations
// accepting "a clause value of either kind" (AddClauseValue, Contains,
// Count, IndexOf) can check the kind tag at runtime. AddClauseValue
// rejects a wrong-kind value with ErrKindMismatch; Contains, Count and
// IndexOf treat it as equal to no stored clause.
type clauseValue interface {
	kindOf() kindTag
	rawLits() []Literal
}

func (c Clause) kindOf() kindTag       { return tagOr }
func (c Clause) rawLits() []Literal    { return c.lits }
func (c XorClause) kindOf() kindTag    { return tagXor }
func (c XorClause) rawLits() []Literal { return c.lits }

func newClauseList[K Kind]() *ClauseList[K] {
	return &ClauseList[K]{starts: []int32{0}}
}

// clauseListFromFlat parses a flat encoding: every maximal run of nonzero
// values terminated by a 0, with the final element 0 (or the whole
// sequence empty). Trailing nonzero literals without a terminator are
// rejected.
func clauseListFromFlat[K Kind](flat []int) (*ClauseList[K], error) {
	buf := make([]int32, len(flat))
	starts := []int32{0}
	var nvars int32

	for i, v := range flat {
		buf[i] = int32(v)
		if v == 0 {
			starts = append(starts, int32(i+1))
			continue
		}
		av := int32(v)
		if av < 0 {
			av = -av
		}
		if av > nvars {
			nvars = av
		}
	}
	if len(flat) > 0 && flat[len(flat)-1] != 0 {
		return nil, fmt.Errorf("flat encoding of length %d: %w", len(flat), ErrTrailingLiterals)
	}
	return &ClauseList[K]{buf: buf, starts: starts, nvars: nvars}, nil
}

// Len returns the number of clauses.
func (l *ClauseList[K]) Len() int { return len(l.starts) - 1 }

// NVars returns the asserted upper bound on variable indices.
func (l *ClauseList[K]) NVars() int32 { return l.nvars }

// SetNVars raises nvars to n. Returns ErrNVarsTooSmall if n is below the
// current value; nvars never decreases.
func (l *ClauseList[K]) SetNVars(n int32) error {
	if n < l.nvars {
		return fmt.Errorf("set nvars to %d (current %d): %w", n, l.nvars, ErrNVarsTooSmall)
	}
	l.nvars = n
	return nil
}

func (l *ClauseList[K]) bounds(i int) (int32, int32, error) {
	m := l.Len()
	idx := i
	if idx < 0 {
		idx += m
	}
	if idx < 0 || idx >= m {
		return 0, 0, fmt.Errorf("clause list index %d (length %d): %w", i, m, ErrIndexOutOfRange)
	}
	return l.starts[idx], l.starts[idx+1] - 1, nil
}

// rawAt returns the literal slice (excluding the terminating 0) for clause
// i, a sub-slice of the internal buffer. Used internally; callers needing
// a safe zero-copy handle should use Borrow, and callers needing an owned
// value should use the kind-specific At accessors on CNF/XorClauseList.
func (l *ClauseList[K]) rawAt(i int) ([]int32, error) {
	s, e, err := l.bounds(i)
	if err != nil {
		return nil, err
	}
	return l.buf[s:e], nil
}

// Borrow returns a zero-copy view over clause i's literals. The view must
// be Release()d before the list can be mutated again.
func (l *ClauseList[K]) Borrow(i int) (*View[K], error) {
	raw, err := l.rawAt(i)
	if err != nil {
		return nil, err
	}
	return newView[K](raw, &l.tracker), nil
}

// Flat returns a zero-copy, read-only view over the entire packed buffer
// B (including terminating zeros), the numerical-array interop surface
// from spec.md §6. The view must be Release()d before the list can be
// mutated again.
func (l *ClauseList[K]) Flat() *View[K] {
	return newView[K](l.buf, &l.tracker)
}

// addLiterals appends a clause's literals and a terminating 0, raising
// nvars as needed. Rejects the call with ErrBorrowed (without mutating)
// if a view is currently outstanding.
func (l *ClauseList[K]) addLiterals(lits []Literal) error {
	if l.tracker.live() {
		return fmt.Errorf("add clause: %w", ErrBorrowed)
	}
	for _, lit := range lits {
		l.buf = append(l.buf, int32(lit))
	}
	l.buf = append(l.buf, 0)
	l.starts = append(l.starts, int32(len(l.buf)))
	if mv := maxVar(lits); mv > l.nvars {
		l.nvars = mv
	}
	return nil
}

// Append concatenates other onto the receiver in place (the `a += b`
// operation). Both must be distinct objects: self-concatenation is
// rejected the same way mutation under a live borrow is, since it would
// read from the very buffer being extended.
func (l *ClauseList[K]) Append(other *ClauseList[K]) error {
	if l == other {
		return fmt.Errorf("append: cannot concatenate a list with itself: %w", ErrBorrowed)
	}
	if l.tracker.live() {
		return fmt.Errorf("append: %w", ErrBorrowed)
	}
	base := int32(len(l.buf))
	l.buf = append(l.buf, other.buf...)
	for _, s := range other.starts[1:] {
		l.starts = append(l.starts, base+s)
	}
	if other.nvars > l.nvars {
		l.nvars = other.nvars
	}
	return nil
}

// Clone returns an independent deep copy.
func (l *ClauseList[K]) Clone() *ClauseList[K] {
	return &ClauseList[K]{
		buf:    append([]int32(nil), l.buf...),
		starts: append([]int32(nil), l.starts...),
		nvars:  l.nvars,
	}
}

// Equal reports whether l and other have equal nvars and identical packed
// buffers. Both operands share the kind K by construction.
func (l *ClauseList[K]) Equal(other *ClauseList[K]) bool {
	if l.nvars != other.nvars {
		return false
	}
	if len(l.buf) != len(other.buf) {
		return false
	}
	for i := range l.buf {
		if l.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

func (l *ClauseList[K]) indexOf(c clauseValue) int {
	var zero K
	if c.kindOf() != zero.tag() {
		return -1
	}
	target := c.rawLits()
	for i := 0; i < l.Len(); i++ {
		raw, err := l.rawAt(i)
		if err != nil {
			break
		}
		if len(raw) != len(target) {
			continue
		}
		match := true
		for j, lit := range target {
			if int32(lit) != raw[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Contains reports whether c (a Clause or XorClause) appears verbatim.
// Equality is kind-aware: a value of the wrong kind is never contained.
func (l *ClauseList[K]) Contains(c clauseValue) bool {
	return l.indexOf(c) >= 0
}

// Count returns the number of clauses equal to c.
func (l *ClauseList[K]) Count(c clauseValue) int {
	var zero K
	if c.kindOf() != zero.tag() {
		return 0
	}
	target := c.rawLits()
	n := 0
	for i := 0; i < l.Len(); i++ {
		raw, _ := l.rawAt(i)
		if len(raw) != len(target) {
			continue
		}
		match := true
		for j, lit := range target {
			if int32(lit) != raw[j] {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}

// IndexOf returns the index of the first clause equal to c, or
// ErrClauseNotFound (including when c is of the wrong kind).
func (l *ClauseList[K]) IndexOf(c clauseValue) (int, error) {
	idx := l.indexOf(c)
	if idx < 0 {
		return 0, fmt.Errorf("index of %v: %w", c, ErrClauseNotFound)
	}
	return idx, nil
}

// Translate returns a new list of the same kind and clause count, with
// every literal v (resp. -v) rewritten to mapping[v] (resp. -mapping[v]).
// mapping[0] must be 0, and mapping must cover every variable in use
// (len(mapping) >= nvars+1). The new nvars is the max |mapping[v]| over
// variables actually referenced.
func (l *ClauseList[K]) Translate(mapping []int32) (*ClauseList[K], error) {
	if l.tracker.live() {
		return nil, fmt.Errorf("translate: %w", ErrBorrowed)
	}
	if len(mapping) > 0 && mapping[0] != 0 {
		return nil, ErrMappingRoot
	}
	if int32(len(mapping)) < l.nvars+1 {
		return nil, fmt.Errorf("translate: mapping length %d, nvars %d: %w", len(mapping), l.nvars, ErrMappingTooShort)
	}

	out := newClauseList[K]()
	for i := 0; i < l.Len(); i++ {
		raw, err := l.rawAt(i)
		if err != nil {
			return nil, err
		}
		for _, lit := range raw {
			var mapped int32
			if lit < 0 {
				mapped = -mapping[-lit]
			} else {
				mapped = mapping[lit]
			}
			out.buf = append(out.buf, mapped)
			av := mapped
			if av < 0 {
				av = -av
			}
			if av > out.nvars {
				out.nvars = av
			}
		}
		out.buf = append(out.buf, 0)
		out.starts = append(out.starts, int32(len(out.buf)))
	}
	return out, nil
}
