package cnf

// XorCNF is the combined formula: ordinary clauses plus parity clauses,
// sharing a logical variable count (spec.md §4.3).
type XorCNF struct {
	CNF *CNF
	Xor *XorClauseList
}

// NewXorCNF returns an empty XorCNF.
func NewXorCNF() *XorCNF {
	return &XorCNF{CNF: NewCNF(), Xor: NewXorClauseList()}
}

// NewXorCNFFromParts builds an XorCNF from existing CNF and XorClauseList
// parts (taking ownership of neither; both are referenced directly, as the
// spec's "owns its two child ClauseLists" only constrains lifecycle within
// XorCNF itself, not how the caller obtained them).
func NewXorCNFFromParts(cnf *CNF, xor *XorClauseList) *XorCNF {
	return &XorCNF{CNF: cnf, Xor: xor}
}

// NewXorCNFFromFlat builds an XorCNF from a pair of flat zero-terminated
// literal encodings, one for the CNF part and one for the XOR part.
func NewXorCNFFromFlat(cnfFlat, xorFlat []int) (*XorCNF, error) {
	cnf, err := CNFFromFlat(cnfFlat)
	if err != nil {
		return nil, err
	}
	xors, err := XorClauseListFromFlat(xorFlat)
	if err != nil {
		return nil, err
	}
	return &XorCNF{CNF: cnf, Xor: xors}, nil
}

// CreateXor builds a fresh XorCNF with an empty CNF part and one parity
// clause per column of groups/rhs, per spec.md §4.4.
func CreateXor(groups [][]int, rhs []int) (*XorCNF, error) {
	xors, err := NewXorClauses(groups, rhs)
	if err != nil {
		return nil, err
	}
	return &XorCNF{CNF: NewCNF(), Xor: xors}, nil
}

// NVars is the logical variable count of the whole formula: the larger of
// the two parts' nvars.
func (f *XorCNF) NVars() int32 {
	n := f.CNF.NVars()
	if x := f.Xor.NVars(); x > n {
		n = x
	}
	return n
}

// AddCNF concatenates cnf onto the receiver's CNF part (the `+= CNF`
// operation).
func (f *XorCNF) AddCNF(cnf *CNF) error { return f.CNF.Append(cnf) }

// AddXor concatenates xors onto the receiver's XOR part (the
// `+= XorClauseList` operation).
func (f *XorCNF) AddXor(xors *XorClauseList) error { return f.Xor.Append(xors) }

// Append concatenates other's CNF and XOR parts onto the receiver's,
// implementing `xor_cnf += xor_cnf`-style whole-formula concatenation.
// Self-concatenation (other == f) is rejected with ErrBorrowed before any
// mutation: it forwards to CNF.Append(f.CNF), which detects the aliased
// pointer the same way a plain ClauseList does.
func (f *XorCNF) Append(other *XorCNF) error {
	if err := f.CNF.Append(other.CNF); err != nil {
		return err
	}
	return f.Xor.Append(other.Xor)
}

// ToCNF returns a CNF equivalent to the whole formula: the CNF part plus
// the Tseitin expansion of every stored parity clause (spec.md §4.5),
// preserving nvars.
func (f *XorCNF) ToCNF() (*CNF, error) {
	out := f.CNF.Clone()
	for i := 0; i < f.Xor.Len(); i++ {
		raw, err := f.Xor.list.rawAt(i)
		if err != nil {
			return nil, err
		}
		if err := expandParityInto(out, int32sToLiterals(raw)); err != nil {
			return nil, err
		}
	}
	if n := f.NVars(); n > out.NVars() {
		_ = out.SetNVars(n)
	}
	return out, nil
}

// Clone returns an independent deep copy of both parts.
func (f *XorCNF) Clone() *XorCNF {
	return &XorCNF{CNF: f.CNF.Clone(), Xor: f.Xor.Clone()}
}

// Equal reports componentwise equality of the CNF and XOR parts.
func (f *XorCNF) Equal(other *XorCNF) bool {
	return f.CNF.Equal(other.CNF) && f.Xor.Equal(other.Xor)
}
