// Package nearpair finds the closest pair of points in a planar point set.
//
// The Solver wraps the divide-and-conquer algorithm in package closest with
// structured logging, metrics and export of results to a blob store.
//
// # Quick Start
//
//	solver := nearpair.New()
//	pair, err := solver.Solve(ctx, []geom.Point{
//	    geom.Pt(-1, 2), geom.Pt(0, 0), geom.Pt(-5, 6), geom.Pt(7, -8), geom.Pt(9, 10),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pair) // (0, 0) and (-1, 2) (distance 2.23606797749979)
//
// # Exporting
//
// Table returns the input points followed by the two result points. Export
// writes that table to any blobstore.BlobStore:
//
//	store, _ := blobstore.NewLocalStore("./out")
//	err = solver.Export(ctx, store, "data.csv", points, pair, table.DefaultOptions())
//
// # Observability
//
//	metrics := &nearpair.BasicMetricsCollector{}
//	solver := nearpair.New(
//	    nearpair.WithLogger(nearpair.NewJSONLogger(slog.LevelDebug)),
//	    nearpair.WithMetricsCollector(metrics),
//	)
//
// A Solver holds no per-call state; Solve may be called from many goroutines.
package nearpair
