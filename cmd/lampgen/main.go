// Command lampgen generates a Hamiltonian lamp path pattern: build the
// canonical cycle for an even cylindrical grid, optionally randomize it
// with flips, then persist the result as JSON and, on request, render it
// to PNG and file it in a pattern catalog.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lampwright/lampcycle/catalog"
	"github.com/lampwright/lampcycle/cylgrid"
	"github.com/lampwright/lampcycle/hamcycle"
	"github.com/lampwright/lampcycle/pathio"
	"github.com/lampwright/lampcycle/render"
)

var (
	// Flags
	outPath    string
	imagePath  string
	catalogDir string
	flips      int
	seed       int64
	thickness  float64
	wallHeight float64
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lampgen <width> <height>",
	Short: "Generate Hamiltonian cycle lamp patterns on cylindrical grids",
	Long: `lampgen builds a closed Hamiltonian cycle over an even-by-even cylindrical
grid (the x axis wraps, the y axis does not), optionally randomizes it with
local flip moves, and writes the result as a JSON path record.

The record carries the physical fabrication traits (wall thickness and
height) and can additionally be rendered to a PNG preview, with seam-
crossing edges split into two stubs, or stored in a Badger pattern catalog.

A seed of 0 derives one from the clock; pass --seed for reproducible runs.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          generate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&outPath, "out", "cycle.json", "output path record file")
	rootCmd.Flags().StringVar(&imagePath, "image", "", "optional PNG preview file")
	rootCmd.Flags().StringVar(&catalogDir, "catalog", "", "optional pattern catalog directory")
	rootCmd.Flags().IntVar(&flips, "flips", 0, "randomized flip attempts after construction")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "flip RNG seed; 0 derives one from the clock")
	rootCmd.Flags().Float64Var(&thickness, "thickness", 1.6, "wall thickness trait, millimeters")
	rootCmd.Flags().Float64Var(&wallHeight, "wall-height", 24, "wall height trait, millimeters")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func generate(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("width %q: %w", args[0], err)
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("height %q: %w", args[1], err)
	}

	g, err := cylgrid.New(width, height)
	if err != nil {
		return err
	}

	c, err := hamcycle.Build(g)
	if err != nil {
		return err
	}
	logger.Info("canonical cycle built",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("vertices", c.Len()))

	if flips > 0 {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		accepted := hamcycle.Flip(c, flips, hamcycle.NewRNG(seed))
		logger.Info("cycle randomized",
			zap.Int("attempts", flips),
			zap.Int("accepted", accepted),
			zap.Int64("seed", seed),
			zap.Int("seam_edges", len(c.SeamEdges())))
	}

	rec, err := pathio.Encode(c, pathio.Traits{
		WallThickness: thickness,
		WallHeight:    wallHeight,
	})
	if err != nil {
		return err
	}
	if err = pathio.Save(outPath, rec); err != nil {
		return err
	}
	logger.Info("record saved", zap.String("path", outPath))

	if imagePath != "" {
		img, err := render.Image(rec, render.DefaultOptions())
		if err != nil {
			return err
		}
		if err = render.WritePNG(imagePath, img); err != nil {
			return err
		}
		logger.Info("preview rendered", zap.String("path", imagePath))
	}

	if catalogDir != "" {
		store, err := catalog.Open(catalogDir)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Put(rec)
		if err != nil {
			return err
		}
		logger.Info("record cataloged",
			zap.String("dir", catalogDir),
			zap.String("id", id))
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lampgen:", err)
		os.Exit(1)
	}
}
