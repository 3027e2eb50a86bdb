package cnf

import "errors"

// Sentinel errors returned by this package. Callers should match them with
// errors.Is, since most are wrapped with call-site context via fmt.Errorf.
var (
	// ErrZeroLiteral is returned when a clause value or raw literal slice
	// contains a 0 entry, which is reserved as the flat-encoding terminator.
	ErrZeroLiteral = errors.New("cnf: literal must be nonzero")

	// ErrKindMismatch is returned when AddClauseValue mixes a Clause with an
	// XorClauseList or an XorClause with a CNF, and when UnmarshalBinary
	// decodes data encoded from a list of the other kind. Concatenating
	// lists of different kinds does not compile.
	ErrKindMismatch = errors.New("cnf: clause kind mismatch")

	// ErrIndexOutOfRange is returned by indexed access outside [-m, m-1].
	ErrIndexOutOfRange = errors.New("cnf: index out of range")

	// ErrBorrowed is returned when a mutating operation is attempted while
	// an outstanding view (from Borrow or Flat) is still live.
	ErrBorrowed = errors.New("cnf: list has an outstanding borrowed view")

	// ErrNVarsTooSmall is returned when a caller-supplied nvars override is
	// smaller than the maximum variable observed in the input.
	ErrNVarsTooSmall = errors.New("cnf: nvars override smaller than observed maximum")

	// ErrTrailingLiterals is returned when a flat encoding's final element
	// is not a terminating zero.
	ErrTrailingLiterals = errors.New("cnf: flat encoding missing final terminator")

	// ErrEmptyXor is returned by CreateXor when called with zero groups or
	// a group of width zero, and by XorClauseList.AddClause for an empty
	// clause: the empty parity relation is unrepresentable
	// because the RHS bit is folded into the sign of the first literal.
	ErrEmptyXor = errors.New("cnf: xor relation needs at least one literal per column")

	// ErrGroupWidthMismatch is returned by CreateXor when groups differ in
	// length.
	ErrGroupWidthMismatch = errors.New("cnf: xor groups must have equal width")

	// ErrMalformedDIMACS covers structural DIMACS problems: missing or
	// duplicate header, non-integer tokens, clause lines before the header.
	ErrMalformedDIMACS = errors.New("cnf: malformed DIMACS input")

	// ErrClauseNotFound is returned by IndexOf when no clause matches.
	ErrClauseNotFound = errors.New("cnf: clause not found")

	// ErrMappingTooShort is returned by Translate when the mapping slice
	// does not cover every variable in use.
	ErrMappingTooShort = errors.New("cnf: translate mapping shorter than nvars+1")

	// ErrMappingRoot is returned by Translate when mapping[0] is nonzero.
	ErrMappingRoot = errors.New("cnf: translate mapping[0] must be 0")
)
