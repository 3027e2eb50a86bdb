package cnf

import (
	"fmt"
	"strings"
)

// Clause is an immutable ordinary (disjunction) clause: the assertion that
// at least one of its literals is true.
type Clause struct {
	lits []Literal
}

// XorClause is an immutable parity clause: the assertion that the XOR of
// its literals' truth values equals a fixed bit. The bit is encoded in the
// sign of lits[0] (see CreateXor / XorClauseList for the convention);
// XorClause itself just stores the literal sequence as given.
type XorClause struct {
	lits []Literal
}

// NewClause builds a Clause from raw literals, copying them. Returns
// ErrZeroLiteral if any entry is 0.
func NewClause(lits []int) (Clause, error) {
	ls, err := toLiterals(lits)
	if err != nil {
		return Clause{}, err
	}
	return Clause{lits: ls}, nil
}

// NewXorClause builds an XorClause from raw literals, copying them. Returns
// ErrZeroLiteral if any entry is 0.
func NewXorClause(lits []int) (XorClause, error) {
	ls, err := toLiterals(lits)
	if err != nil {
		return XorClause{}, err
	}
	return XorClause{lits: ls}, nil
}

// Len returns the number of literals.
func (c Clause) Len() int { return len(c.lits) }

// Len returns the number of literals.
func (c XorClause) Len() int { return len(c.lits) }

// At returns the literal at index i. Python-style negative indices address
// from the end: -1 is the last literal. Out-of-range indices return
// ErrIndexOutOfRange.
func (c Clause) At(i int) (Literal, error) { return atLiteral(c.lits, i) }

// At returns the literal at index i, with the same indexing rules as
// Clause.At.
func (c XorClause) At(i int) (Literal, error) { return atLiteral(c.lits, i) }

func atLiteral(lits []Literal, i int) (Literal, error) {
	n := len(lits)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("clause index %d (length %d): %w", i, n, ErrIndexOutOfRange)
	}
	return lits[idx], nil
}

// Literals returns a copy of the clause's literal sequence.
func (c Clause) Literals() []Literal { return append([]Literal(nil), c.lits...) }

// Literals returns a copy of the clause's literal sequence.
func (c XorClause) Literals() []Literal { return append([]Literal(nil), c.lits...) }

// MaxVar returns the largest variable index referenced, 0 for an empty
// clause.
func (c Clause) MaxVar() int32 { return maxVar(c.lits) }

// MaxVar returns the largest variable index referenced, 0 for an empty
// clause.
func (c XorClause) MaxVar() int32 { return maxVar(c.lits) }

// Equal reports whether c and other hold the same literals in the same
// order. Equality across kinds (Clause vs XorClause) is always false, even
// for identical literal sequences; Equal only accepts a Clause, so a
// cross-kind comparison does not compile.
func (c Clause) Equal(other Clause) bool { return equalLits(c.lits, other.lits) }

// Equal reports whether c and other hold the same literals in the same
// order.
func (c XorClause) Equal(other XorClause) bool { return equalLits(c.lits, other.lits) }

func equalLits(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (c Clause) String() string    { return clauseString("Clause", c.lits) }
func (c XorClause) String() string { return clauseString("XorClause", c.lits) }

func clauseString(tag string, lits []Literal) string {
	sb := strings.Builder{}
	sb.WriteString(tag)
	sb.WriteByte('[')
	for i, l := range lits {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
