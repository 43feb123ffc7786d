package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/gridroute/bytefall"
	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/internal/cli"
	"github.com/katalvlaran/gridroute/internal/ctxlog"
	"github.com/katalvlaran/gridroute/optimal"
	"github.com/katalvlaran/gridroute/route"
	"github.com/katalvlaran/gridroute/shortcut"
)

// main is the entrypoint for the gridroute command.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.CodeFailure)
	}
}

// run parses args, solves the input and writes results to outW. Logs go to
// logW.
func run(outW, logW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg := inv.Config
	logger := ctxlog.New(logW, cfg.Logging.Level, cfg.Logging.Format)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("gridroute starting", "mode", cfg.Mode, "input", inv.InputPath)

	src, err := readInput(inv.InputPath)
	if err != nil {
		return &cli.ExitError{Code: cli.CodeUsage, Message: err.Error()}
	}

	switch cfg.Mode {
	case config.ModeShortcuts:
		return runShortcuts(ctx, outW, cfg, src)
	case config.ModeBytes:
		return runBytes(ctx, outW, cfg, src)
	default:
		return runMaze(ctx, outW, cfg, src)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func parseMaze(src string) (*gridgraph.Maze, error) {
	m, err := gridgraph.ParseMazeString(src)
	if err != nil {
		return nil, &cli.ExitError{Code: cli.CodeUsage, Message: err.Error()}
	}
	return m, nil
}

// failed maps a solver error to an exit error.
func failed(err error) error {
	return &cli.ExitError{Code: cli.CodeFailure, Message: err.Error()}
}

func runMaze(ctx context.Context, outW io.Writer, cfg *config.Config, src string) error {
	logger := ctxlog.FromContext(ctx)
	m, err := parseMaze(src)
	if err != nil {
		return err
	}

	best, err := route.FindOptimal(m.Grid, m.Start, m.Goal,
		route.WithContext(ctx),
		route.WithCostModel(cfg.Cost),
		route.WithKeyMode(cfg.KeyMode),
	)
	if err != nil {
		return failed(err)
	}
	seed, err := best.Path()
	if err != nil {
		return failed(err)
	}
	logger.Info("route found", "cost", best.Cost, "length", len(seed), "expanded", best.Expanded)

	res, err := optimal.Enumerate(m.Grid, m.Goal, best.Cost, seed,
		optimal.WithContext(ctx),
		optimal.WithCostModel(cfg.Cost),
		optimal.WithMinBranchDegree(cfg.Enumerate.MinBranchDegree),
		optimal.WithStartBranching(cfg.Enumerate.StartBranching),
		optimal.WithWorkers(cfg.Enumerate.Workers),
		optimal.WithLogger(logger),
	)
	if err != nil {
		return failed(err)
	}
	logger.Info("optimal routes enumerated",
		"routes", len(res.Paths), "trials", res.Trials, "discarded", res.Discarded)

	fmt.Fprintf(outW, "cost: %d\n", best.Cost)
	fmt.Fprintf(outW, "cells: %d\n", res.Count())
	fmt.Fprintf(outW, "routes: %d\n", len(res.Paths))
	return nil
}

func runShortcuts(ctx context.Context, outW io.Writer, cfg *config.Config, src string) error {
	m, err := parseMaze(src)
	if err != nil {
		return err
	}
	sc := cfg.Shortcuts
	found, err := shortcut.FindInMaze(m, sc.MaxJump, sc.MinSaved,
		shortcut.WithContext(ctx),
		shortcut.WithWorkers(sc.Workers),
		shortcut.WithLogger(ctxlog.FromContext(ctx)),
	)
	if err != nil {
		return failed(err)
	}

	hist := shortcut.Histogram(found)
	saves := make([]int, 0, len(hist))
	for s := range hist {
		saves = append(saves, s)
	}
	slices.Sort(saves)

	fmt.Fprintf(outW, "shortcuts: %d\n", len(found))
	for _, s := range saves {
		fmt.Fprintf(outW, "  save %d: %d\n", s, hist[s])
	}
	return nil
}

func runBytes(ctx context.Context, outW io.Writer, cfg *config.Config, src string) error {
	coords, err := bytefall.ParseCoords(strings.NewReader(src))
	if err != nil {
		return &cli.ExitError{Code: cli.CodeUsage, Message: err.Error()}
	}
	size, fallen := cfg.Bytes.Size, min(cfg.Bytes.Fallen, len(coords))

	steps, err := bytefall.ShortestSteps(size, coords, fallen)
	if err != nil {
		return failed(err)
	}
	fmt.Fprintf(outW, "steps after %d bytes: %d\n", fallen, steps)

	p, err := bytefall.FirstBlocking(size, coords, fallen,
		bytefall.WithContext(ctx),
		bytefall.WithLogger(ctxlog.FromContext(ctx)),
	)
	switch {
	case errors.Is(err, bytefall.ErrNeverBlocked):
		fmt.Fprintln(outW, "first blocking byte: none")
		return nil
	case err != nil:
		return failed(err)
	}
	fmt.Fprintf(outW, "first blocking byte: %s\n", bytefall.FormatCoord(p))
	return nil
}
