package cnf

import "fmt"

// Literal is a nonzero signed variable reference. Its sign is the polarity
// (positive = the variable itself, negative = its negation); its absolute
// value is the variable index. Variables are bare positive integers in
// 1..nvars, there is no symbol table.
type Literal int32

// Var returns the variable index of l, always positive.
func (l Literal) Var() int32 {
	if l < 0 {
		return int32(-l)
	}
	return int32(l)
}

// Sign reports the polarity of l: true for a positive literal.
func (l Literal) Sign() bool {
	return l > 0
}

// Negate returns the complementary literal, -l.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int32(l))
}

// toLiterals validates and converts a slice of raw ints into Literals,
// rejecting any zero entry. The returned slice is a fresh copy; in is never
// retained.
func toLiterals(in []int) ([]Literal, error) {
	out := make([]Literal, len(in))
	for i, v := range in {
		if v == 0 {
			return nil, fmt.Errorf("literal at index %d: %w", i, ErrZeroLiteral)
		}
		out[i] = Literal(v)
	}
	return out, nil
}

func maxVar(lits []Literal) int32 {
	var m int32
	for _, l := range lits {
		if v := l.Var(); v > m {
			m = v
		}
	}
	return m
}
