// cmd/mazegen/main.go
//
// mazegen generates a batch of seeded mazes in parallel and checks each one: every
// path cell reachable from the origin, a closed perimeter and a non-empty wall set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go-maze-defense/internal/logging"
	"go-maze-defense/pkg/maze"
)

var ErrUnreachable = errors.New("maze has unreachable path cells")

type options struct {
	Rows, Cols int
	Tile       float64
	Count      int
	Seed       int64
	Workers    int
	Print      bool
}

// report summarises one generated maze.
type report struct {
	Seed      int64
	PathCells int
	Segments  int
	Boundary  int
	Solution  int // длина пути A* от начала до дальнего угла
	grid      *maze.Grid
}

func main() {
	var opts options
	flag.IntVar(&opts.Rows, "rows", 25, "maze rows")
	flag.IntVar(&opts.Cols, "cols", 33, "maze columns")
	flag.Float64Var(&opts.Tile, "tile", 32, "tile size in world units")
	flag.IntVar(&opts.Count, "count", 16, "number of mazes")
	flag.Int64Var(&opts.Seed, "seed", 1, "seed of the first maze; maze i uses seed+i")
	flag.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "parallel generators")
	flag.BoolVar(&opts.Print, "print", false, "print every maze as ASCII")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel, "json", "mazegen")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(context.Background(), opts, os.Stdout, logger); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer, logger *slog.Logger) error {
	if opts.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	reports := make([]report, opts.Count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i := range reports {
		i := i
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := check(opts, seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		logger.Info("maze ok",
			"seed", r.Seed,
			"rows", r.grid.Rows,
			"cols", r.grid.Cols,
			"path_cells", r.PathCells,
			"segments", r.Segments,
			"boundary", r.Boundary,
			"solution", r.Solution)
		if opts.Print {
			fmt.Fprintf(out, "seed %d\n%s\n", r.Seed, r.grid)
		}
	}
	return nil
}

func check(opts options, seed int64) (report, error) {
	grid := maze.Generate(opts.Rows, opts.Cols, rand.New(rand.NewSource(seed)))
	r := report{Seed: seed, grid: grid}

	reach := grid.Reachable(maze.Origin)
	cells := grid.PathCells()
	r.PathCells = len(cells)
	for _, c := range cells {
		if !reach[c] {
			return r, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, c.Col, c.Row)
		}
	}

	segments := maze.ExtractWallSegments(grid, opts.Tile)
	r.Segments = len(segments)
	for _, s := range segments {
		if s.Kind == maze.Boundary {
			r.Boundary++
		}
	}
	if r.Boundary == 0 {
		return r, errors.New("maze has no perimeter walls")
	}

	far, _ := grid.Nearest(maze.Cell{Col: grid.Cols - 1, Row: grid.Rows - 1})
	if path := maze.AStar(maze.Origin, far, grid); path != nil {
		r.Solution = len(path)
	} else {
		return r, fmt.Errorf("%w: no path to (%d,%d)", ErrUnreachable, far.Col, far.Row)
	}
	return r, nil
}
