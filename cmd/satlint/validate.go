package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cnf "github.com/fanosta/sat-toolkit"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "parse a DIMACS/XOR-DIMACS file and report structural issues",
		ArgsUsage: "<file>",
		Action:    runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("validate: missing <file> argument")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	defer f.Close()

	formula, err := cnf.ReadDIMACS(f)
	if err != nil {
		return fmt.Errorf("validate: parse %s: %w", path, err)
	}
	log.Debug("parsed formula",
		zap.String("file", path),
		zap.Int("clauses", formula.CNF.Len()),
		zap.Int("xor_clauses", formula.Xor.Len()),
		zap.Int32("nvars", formula.NVars()),
	)

	var issues *multierror.Error
	issues = multierror.Append(issues, lintEmptyClauses(formula.CNF)...)
	issues = multierror.Append(issues, lintDuplicateClauses(formula.CNF)...)

	if issues.ErrorOrNil() != nil {
		fmt.Fprintln(os.Stderr, issues)
		return fmt.Errorf("validate: %d issue(s) found in %s", len(issues.Errors), path)
	}
	fmt.Printf("%s: ok (%d clauses, %d xor clauses, %d vars)\n", path, formula.CNF.Len(), formula.Xor.Len(), formula.NVars())
	return nil
}

func lintEmptyClauses(c *cnf.CNF) []error {
	var errs []error
	for i := 0; i < c.Len(); i++ {
		clause, err := c.At(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if clause.Len() == 0 {
			errs = append(errs, fmt.Errorf("clause %d is empty (unsatisfiable)", i))
		}
	}
	return errs
}

func lintDuplicateClauses(c *cnf.CNF) []error {
	var errs []error
	seen := make(map[string]int)
	for i := 0; i < c.Len(); i++ {
		clause, err := c.At(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		key := clause.String()
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("clause %d duplicates clause %d", i, prev))
			continue
		}
		seen[key] = i
	}
	return errs
}
