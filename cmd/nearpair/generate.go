package main

import (
	"fmt"

	"github.com/hupe1980/nearpair/geom"
	"github.com/hupe1980/nearpair/internal/resource"
	"github.com/hupe1980/nearpair/table"
	"github.com/hupe1980/nearpair/util"
	"github.com/spf13/cobra"
)

type generateOpts struct {
	root      *rootOpts
	count     int
	min       float64
	max       float64
	seed      int64
	integer   bool
	delimiter string
	header    []string
	out       string
}

func newGenerateCommand(root *rootOpts) *cobra.Command {
	opts := &generateOpts{root: root}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a table of random points",
		Long: `Write a table of uniformly distributed random points to the store.

The same --seed always produces the same table. With --integer coordinates are
whole numbers in [min, max]; otherwise they lie in [min, max).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.count, "count", 1000, "Number of points")
	flags.Float64Var(&opts.min, "min", 0, "Lower coordinate bound")
	flags.Float64Var(&opts.max, "max", 1000, "Upper coordinate bound")
	flags.Int64Var(&opts.seed, "seed", 1, "Random seed")
	flags.BoolVar(&opts.integer, "integer", false, "Generate integer coordinates")
	flags.StringVar(&opts.delimiter, "delimiter", table.DefaultDelimiter, "Value delimiter")
	flags.StringSliceVar(&opts.header, "header", []string{"x", "y"}, "Header line; empty for none")
	flags.StringVar(&opts.out, "out", "points.csv", "Name of the generated table (.zst or .lz4 compresses)")
	return cmd
}

func (o *generateOpts) run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	logger, err := o.root.logger(cmd)
	if err != nil {
		return err
	}
	if o.count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", o.count)
	}
	if o.max < o.min {
		return fmt.Errorf("--max %g is below --min %g", o.max, o.min)
	}

	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: o.root.store.ioLimit})
	store, err := o.root.store.open(ctx, rc)
	if err != nil {
		return err
	}

	rng := util.NewRNG(o.seed)
	var points []geom.Point
	if o.integer {
		lo, hi := int64(o.min), int64(o.max)
		points = make([]geom.Point, o.count)
		for i := range points {
			points[i] = geom.Pt(float64(util.InRange(rng, lo, hi)), float64(util.InRange(rng, lo, hi)))
		}
	} else {
		points = rng.Points(o.count, o.min, o.max)
	}

	opts := table.Options{Delimiter: o.delimiter, Header: o.header}
	err = table.Write(ctx, store, o.out, table.FromPoints(points), opts)
	logger.LogExport(ctx, o.out, len(points), err)
	return err
}
