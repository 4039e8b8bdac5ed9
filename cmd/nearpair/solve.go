package main

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/hupe1980/nearpair"
	"github.com/hupe1980/nearpair/blobstore"
	"github.com/hupe1980/nearpair/codec"
	"github.com/hupe1980/nearpair/console"
	"github.com/hupe1980/nearpair/geom"
	"github.com/hupe1980/nearpair/internal/resource"
	"github.com/hupe1980/nearpair/metrics/prom"
	"github.com/hupe1980/nearpair/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// samplePoints is solved when no input is named.
var samplePoints = []geom.Point{
	geom.Pt(10, 2),
	geom.Pt(3, 40),
	geom.Pt(1, 2),
	geom.Pt(70, 8),
	geom.Pt(9, 10),
}

type solveOpts struct {
	root            *rootOpts
	delimiter       string
	header          []string
	out             string
	report          string
	codec           string
	compression     string
	jobs            int
	memoryLimit     int64
	metricsTextfile string
}

type solveResult struct {
	name   string
	points []geom.Point
	pair   nearpair.Pair
	took   time.Duration
}

func newSolveCommand(root *rootOpts) *cobra.Command {
	opts := &solveOpts{root: root}

	cmd := &cobra.Command{
		Use:   "solve [names...]",
		Short: "Find the closest pair in each named point table",
		Long: `Find the closest pair of points in each named table of the store.

Each input holds one point per line (x and y separated by the delimiter) and
may start with a header line. Without inputs a built-in sample set is solved.

For every input the points followed by the closest pair are exported. A single
input (or the sample) is exported to --out; with several inputs each result
is written next to its input as <name>.pair<ext>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.delimiter, "delimiter", table.DefaultDelimiter, "Value delimiter of input and output tables")
	flags.StringSliceVar(&opts.header, "header", []string{"x", "y"}, "Header line of exported tables; empty for none")
	flags.StringVar(&opts.out, "out", "data.csv", "Name of the exported table")
	flags.StringVar(&opts.report, "report", "", "Name of a JSON report covering all inputs")
	flags.StringVar(&opts.codec, "codec", codec.Default.Name(), "Report codec: "+strings.Join(codec.Names(), " or "))
	flags.StringVar(&opts.compression, "compression", "none", "Compression of exported tables: none, zstd or lz4")
	flags.IntVar(&opts.jobs, "jobs", 4, "Number of inputs solved concurrently")
	flags.Int64Var(&opts.memoryLimit, "memory-limit", 0, "Memory budget in bytes shared by concurrent solves; 0 for unlimited")
	flags.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this local file")
	return cmd
}

func (o *solveOpts) run(cmd *cobra.Command, names []string) error {
	ctx := cmd.Context()

	logger, err := o.root.logger(cmd)
	if err != nil {
		return err
	}
	comp, err := table.ParseCompression(o.compression)
	if err != nil {
		return err
	}
	c, ok := codec.ByName(o.codec)
	if !ok {
		return fmt.Errorf("unknown --codec %q", o.codec)
	}
	if o.jobs < 1 {
		return fmt.Errorf("--jobs must be positive, got %d", o.jobs)
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   o.memoryLimit,
		IOLimitBytesPerSec: o.root.store.ioLimit,
	})
	store, err := o.root.store.open(ctx, rc)
	if err != nil {
		return err
	}

	solverOpts := []nearpair.Option{nearpair.WithLogger(logger)}
	var collector *prom.Collector
	if o.metricsTextfile != "" {
		if collector, err = prom.NewCollector(nil); err != nil {
			return err
		}
		solverOpts = append(solverOpts, nearpair.WithMetricsCollector(collector))
	}
	solver := nearpair.New(solverOpts...)

	readOpts := table.Options{Delimiter: o.delimiter}
	writeOpts := table.Options{Delimiter: o.delimiter, Header: o.header, Compression: comp}

	results := make([]solveResult, max(len(names), 1))
	if len(names) == 0 {
		results[0] = solveResult{name: "sample", points: samplePoints}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.jobs)
	for i := range results {
		g.Go(func() error {
			res := &results[i]
			if len(names) > 0 {
				res.name = names[i]
				points, err := loadPoints(gctx, store, res.name, readOpts)
				if err != nil {
					return err
				}
				logger.WithName(res.name).WithCount(len(points)).Debug("points loaded")
				res.points = points
			}

			mem := resource.PointBytes(len(res.points))
			if err := rc.AcquireMemory(gctx, mem); err != nil {
				return fmt.Errorf("%s: %w", res.name, err)
			}
			defer rc.ReleaseMemory(mem)
			logger.WithName(res.name).Debug("memory reserved",
				"bytes", mem, "in_use", rc.MemoryUsage(), "limit", rc.MemoryLimit())

			start := time.Now()
			pair, err := solver.Solve(gctx, res.points)
			if err != nil {
				return fmt.Errorf("%s: %w", res.name, err)
			}
			res.pair, res.took = pair, time.Since(start)

			return solver.Export(gctx, store, o.outputName(names, i, comp), res.points, pair, writeOpts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := console.New(cmd.OutOrStdout())
	for _, res := range results {
		if len(results) > 1 {
			out.WriteLine(res.name + ":")
		}
		out.Write("Closest pair:", res.pair.P, "and", res.pair.Q)
		out.WriteLine("")
		out.Write("Distance:", res.pair.Distance)
		out.WriteLine("")
	}
	if err := out.Err(); err != nil {
		return err
	}

	if o.report != "" {
		if err := o.writeReport(ctx, store, c, solver, results); err != nil {
			return err
		}
	}
	if collector != nil {
		if err := collector.WriteTextfile(o.metricsTextfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func (o *solveOpts) outputName(names []string, i int, comp table.Compression) string {
	if len(names) <= 1 {
		if table.CompressionFromName(o.out) == comp {
			return o.out
		}
		return o.out + comp.Ext()
	}
	name := names[i]
	ext := path.Ext(name)
	if table.CompressionFromName(name) != table.CompressionNone {
		name = strings.TrimSuffix(name, ext)
		ext = path.Ext(name)
	}
	return strings.TrimSuffix(name, ext) + ".pair" + ext + comp.Ext()
}

func (o *solveOpts) writeReport(ctx context.Context, store blobstore.BlobStore, c codec.Codec, solver *nearpair.Solver, results []solveResult) error {
	reports := make([]nearpair.Report, len(results))
	for i, res := range results {
		r := solver.Report(res.points, res.pair)
		r.Name = res.name
		r.Elapsed = res.took
		reports[i] = r
	}

	data, err := c.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return store.Put(ctx, o.report, data)
}

func loadPoints(ctx context.Context, store blobstore.BlobStore, name string, opts table.Options) ([]geom.Point, error) {
	_, rows, err := table.Read(ctx, store, name, opts)
	if err != nil {
		return nil, err
	}
	points, err := table.Points(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return points, nil
}
