package cnf

// Kind tags a ClauseList as holding ordinary (disjunction) clauses or XOR
// (parity) clauses. It is instantiated at compile time as a generic type
// parameter (see spec design note "Tagged kind vs. inheritance") rather
// than as a runtime field, so that e.g. passing a Clause into an
// XorClauseList.AddClause is caught by the type checker wherever possible;
// the few operations that must still compare a value's kind at runtime
// (AddClauseValue, Contains/Count/IndexOf) compare kind tags, and
// ClauseList obtains its own tag through the tag() method below.
type Kind interface {
	tag() kindTag
}

type kindTag uint8

const (
	tagOr kindTag = iota
	tagXor
)

// OrKind tags a ClauseList of ordinary disjunction clauses (CNF).
type OrKind struct{}

func (OrKind) tag() kindTag { return tagOr }

// XorKind tags a ClauseList of parity clauses (XOR-CNF).
type XorKind struct{}

func (XorKind) tag() kindTag { return tagXor }

func kindName(k kindTag) string {
	if k == tagOr {
		return "Clause"
	}
	return "XorClause"
}
