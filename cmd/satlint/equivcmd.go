package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cnf "github.com/fanosta/sat-toolkit"
	"github.com/fanosta/sat-toolkit/solver"
)

func equivCommand() *cli.Command {
	return &cli.Command{
		Name:      "equiv",
		Usage:     "check whether two DIMACS/XOR-DIMACS files are logically equivalent",
		ArgsUsage: "<file-a> <file-b>",
		Action:    runEquiv,
	}
}

func runEquiv(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("equiv: expected exactly 2 file arguments, got %d", len(args))
	}

	a, err := readFormula(args[0])
	if err != nil {
		return fmt.Errorf("equiv: %w", err)
	}
	b, err := readFormula(args[1])
	if err != nil {
		return fmt.Errorf("equiv: %w", err)
	}

	oracle := solver.NewOracle(log)
	equal, err := oracle.Equiv(ctx, a, b)
	if err != nil {
		return fmt.Errorf("equiv: %w", err)
	}

	if equal {
		fmt.Printf("%s and %s are equivalent\n", args[0], args[1])
		return nil
	}
	fmt.Printf("%s and %s are NOT equivalent\n", args[0], args[1])
	return cli.Exit("", 1)
}

func readFormula(path string) (*cnf.XorCNF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cnf.ReadDIMACS(f)
}
