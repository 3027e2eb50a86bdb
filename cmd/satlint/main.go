// Command satlint is a DIMACS/XOR-DIMACS front-end: it validates, converts,
// and checks equivalence of CNF/XOR-CNF formulas. One subcommand per
// *cli.Command factory function, following
// _examples/hemanta212-scaf/cmd/scaf's layout (config.go, generate.go,
// test.go each contributing one command to a shared root).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	log, err := newLogger(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "satlint: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	cmd := &cli.Command{
		Name:  "satlint",
		Usage: "validate, convert, and compare CNF/XOR-CNF DIMACS formulas",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				level.SetLevel(zap.DebugLevel)
			}
			return context.WithValue(ctx, loggerKey{}, log), nil
		},
		Commands: []*cli.Command{
			validateCommand(),
			toCNFCommand(),
			equivCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error("satlint failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

type loggerKey struct{}

func loggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
