// Package solver is the surface adapter that answers equiv queries by
// delegating to an embedded SAT oracle, per spec.md §6 ("the library
// itself does not solve ... depends on an external SAT oracle"). The
// driving style (building a gini instance, feeding it literals, reading
// back Solve's verdict) is adapted from
// _examples/operator-framework-operator-lifecycle-manager's resolver/solver
// package (dict.go, solve.go), which drives the same library to decide
// dependency-resolution satisfiability. That package imports gini under
// both github.com/go-air/gini and github.com/irifrance/gini because it
// vendors both trees side by side; this module only requires the former,
// so it is used consistently here, under its own import path.
package solver

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"go.uber.org/zap"

	cnf "github.com/fanosta/sat-toolkit"
)

// Oracle answers satisfiability and equivalence queries for formulas built
// with this module, backed by an embedded gini instance per query (gini
// instances are not safe for concurrent reuse across queries, so a fresh
// one is constructed each call).
type Oracle struct {
	log *zap.Logger
}

// NewOracle returns an Oracle that logs each query at debug level through
// log. A nil log is replaced with zap.NewNop().
func NewOracle(log *zap.Logger) *Oracle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Oracle{log: log}
}

// Satisfiable reports whether c has a satisfying assignment, per the
// "accept clauses, return SAT/UNSAT" oracle contract from spec.md §6.
func (o *Oracle) Satisfiable(ctx context.Context, c *cnf.CNF) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	g := gini.New()
	for i := 0; i < c.Len(); i++ {
		clause, err := c.At(i)
		if err != nil {
			return false, fmt.Errorf("solver: read clause %d: %w", i, err)
		}
		for _, lit := range clause.Literals() {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(0)
	}

	o.log.Debug("dispatching SAT query", zap.Int("clauses", c.Len()), zap.Int32("nvars", c.NVars()))
	switch g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, fmt.Errorf("solver: gini returned an unknown verdict")
	}
}

// Equiv reports whether a and b are logically equivalent:
// UNSAT(a ∧ ¬b) ∧ UNSAT(¬a ∧ b), exactly the definition from spec.md §6.
// Each side's ToCNF is taken first, so a and b may freely mix ordinary and
// parity clauses.
func (o *Oracle) Equiv(ctx context.Context, a, b *cnf.XorCNF) (bool, error) {
	aCNF, err := a.ToCNF()
	if err != nil {
		return false, fmt.Errorf("solver: equiv: %w", err)
	}
	bCNF, err := b.ToCNF()
	if err != nil {
		return false, fmt.Errorf("solver: equiv: %w", err)
	}

	aImpliesB, err := o.implies(ctx, aCNF, bCNF)
	if err != nil {
		return false, err
	}
	if !aImpliesB {
		return false, nil
	}
	return o.implies(ctx, bCNF, aCNF)
}

// implies reports whether lhs ∧ ¬rhs is unsatisfiable, i.e. lhs |= rhs.
func (o *Oracle) implies(ctx context.Context, lhs, rhs *cnf.CNF) (bool, error) {
	negRHS, nextVar := negateCNF(rhs, maxOf(lhs.NVars(), rhs.NVars()))
	combined := lhs.Clone()
	if err := combined.Append(negRHS); err != nil {
		return false, fmt.Errorf("solver: equiv: %w", err)
	}
	if err := combined.SetNVars(nextVar); err != nil {
		return false, fmt.Errorf("solver: equiv: %w", err)
	}

	sat, err := o.Satisfiable(ctx, combined)
	if err != nil {
		return false, err
	}
	return !sat, nil
}

func maxOf(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// negateCNF builds a CNF equivalent to ¬c using one fresh Tseitin
// auxiliary variable per clause of c, starting at startVar+1. Clause i's
// auxiliary a_i is constrained one-directionally, a_i -> ¬l for every
// literal l in clause i; together with the top-level disjunction of every
// a_i, this is satisfiable exactly when some clause of c is falsified,
// which is sufficient (and only needed) to decide UNSAT(lhs ∧ ¬c) queries.
func negateCNF(c *cnf.CNF, startVar int32) (*cnf.CNF, int32) {
	out := cnf.NewCNF()
	aux := make([]int, c.Len())
	next := startVar
	for i := 0; i < c.Len(); i++ {
		next++
		aux[i] = int(next)
		clause, _ := c.At(i)
		for _, lit := range clause.Literals() {
			_ = out.AddClause([]int{-aux[i], int(-lit)})
		}
	}
	if len(aux) > 0 {
		_ = out.AddClause(aux)
	} else {
		// c has no clauses: c is the empty conjunction (always true), so
		// ¬c is unsatisfiable. A fresh variable constrained both true and
		// false encodes that directly.
		_ = out.AddClause([]int{int(next + 1)})
		_ = out.AddClause([]int{int(-(next + 1))})
		next++
	}
	_ = out.SetNVars(next)
	return out, next
}
