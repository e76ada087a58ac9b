// Command axisroll builds a labeled 3-D grid, prints a prefix of it, rolls
// every axis-2 plane along axis 1 by its own shift, and prints it again.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/banshee-data/axisroll/internal/config"
	"github.com/banshee-data/axisroll/internal/grid"
	"github.com/banshee-data/axisroll/internal/monitoring"
	"github.com/banshee-data/axisroll/internal/render"
	"github.com/banshee-data/axisroll/internal/roll"
	"github.com/banshee-data/axisroll/internal/version"
)

var (
	configPath  = flag.String("config", "", "Path to a run configuration JSON file (default: reference 7x8x9 scenario)")
	previewRows = flag.Int("preview", -1, "Axis-0 rows to print before and after (overrides config; 0 prints all)")
	parallel    = flag.Bool("parallel", false, "Roll planes concurrently")
	workers     = flag.Int("workers", 0, "Worker limit for parallel runs (0 = GOMAXPROCS)")
	lattice     = flag.Bool("lattice", false, "Also roll each plane along axis 0 by the D2Q9 y velocities")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

const separatorWidth = 60

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg := &config.RunConfig{}
	if *configPath != "" {
		var err error
		cfg, err = config.LoadRunConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	applyFlags(cfg, setFlags())

	runID := uuid.NewString()
	monitoring.SetLogger(monitoring.WithRun(runID, log.Printf))

	if err := run(context.Background(), os.Stdout, cfg); err != nil {
		log.Fatalf("roll failed: %v", err)
	}
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides cfg with every explicitly set flag, so a flag wins
// over the config file and an unset flag leaves the file's value alone.
func applyFlags(cfg *config.RunConfig, set map[string]bool) {
	if set["preview"] && *previewRows >= 0 {
		cfg.PreviewRows = previewRows
	}
	if set["parallel"] {
		cfg.Parallel = parallel
	}
	if set["workers"] {
		cfg.Workers = workers
	}
	if set["lattice"] {
		cfg.Lattice = lattice
	}
}

// run executes one configured roll, writing the before and after views to w.
func run(ctx context.Context, w io.Writer, cfg *config.RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	ext := cfg.GetExtents()
	g, err := grid.Labeled(ext[0], ext[1], ext[2])
	if err != nil {
		return err
	}
	monitoring.Logf("built %dx%dx%d grid", ext[0], ext[1], ext[2])

	rows := cfg.GetPreviewRows()
	if err := render.Grid(w, g, rows); err != nil {
		return err
	}
	if err := render.Separator(w, separatorWidth); err != nil {
		return err
	}

	shifts, rowShifts := cfg.GetShifts(), cfg.GetRowShifts()
	switch {
	case rowShifts != nil && cfg.GetParallel():
		err = roll.RollLatticeParallel(ctx, g, shifts, rowShifts, cfg.GetWorkers())
	case rowShifts != nil:
		err = roll.RollLattice(g, shifts, rowShifts)
	case cfg.GetParallel():
		err = roll.RollAxisParallel(ctx, g, shifts, cfg.GetWorkers())
	default:
		err = roll.RollAxis(g, shifts)
	}
	if err != nil {
		return err
	}

	return render.Grid(w, g, rows)
}
