package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cnf "github.com/fanosta/sat-toolkit"
)

func toCNFCommand() *cli.Command {
	return &cli.Command{
		Name:      "to-cnf",
		Usage:     "Tseitin-expand a combined CNF/XOR-CNF file into plain CNF DIMACS",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
		},
		Action: runToCNF,
	}
}

func runToCNF(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("to-cnf: missing <file> argument")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("to-cnf: %w", err)
	}
	defer f.Close()

	formula, err := cnf.ReadDIMACS(f)
	if err != nil {
		return fmt.Errorf("to-cnf: parse %s: %w", path, err)
	}

	expanded, err := formula.ToCNF()
	if err != nil {
		return fmt.Errorf("to-cnf: expand %s: %w", path, err)
	}
	log.Debug("expanded xor clauses into cnf",
		zap.Int("xor_clauses", formula.Xor.Len()),
		zap.Int("resulting_clauses", expanded.Len()),
	)

	whole := cnf.NewXorCNF()
	if err := whole.AddCNF(expanded); err != nil {
		return fmt.Errorf("to-cnf: %w", err)
	}
	out := whole.ToDIMACS()

	outPath := cmd.String("out")
	if outPath == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(outPath, []byte(out), 0o644)
}
