package table

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/nearpair/blobstore"
	"github.com/hupe1980/nearpair/geom"
	"github.com/hupe1980/nearpair/vector"
)

// DefaultDelimiter separates values when Options.Delimiter is empty.
const DefaultDelimiter = ";"

var (
	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = errors.New("table rows differ in length")
	// ErrInvalidDelimiter is returned for delimiters that cannot separate numbers.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

// Options configures encoding and storage of a table.
type Options struct {
	// Delimiter separates values on a line. Default: ";"
	Delimiter string
	// Header is written as the first line when non-empty.
	Header []string
	// Compression applied to the stored blob. CompressionNone defers to the
	// blob name suffix (".zst", ".lz4").
	Compression Compression
}

// DefaultOptions returns options with the default delimiter and no header.
func DefaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

func (o Options) delimiter() (string, error) {
	d := o.Delimiter
	if d == "" {
		d = DefaultDelimiter
	}
	if strings.ContainsAny(d, "\r\n0123456789.+-eE") {
		return "", fmt.Errorf("%w: %q", ErrInvalidDelimiter, o.Delimiter)
	}
	return d, nil
}

func (o Options) compressionFor(name string) Compression {
	if o.Compression != CompressionNone {
		return o.Compression
	}
	return CompressionFromName(name)
}

// Encode formats rows as delimited text, one line per row.
func Encode(rows [][]float64, opts Options) ([]byte, error) {
	delim, err := opts.delimiter()
	if err != nil {
		return nil, err
	}

	width := -1
	if len(opts.Header) > 0 {
		width = len(opts.Header)
	}

	var buf bytes.Buffer
	if len(opts.Header) > 0 {
		buf.WriteString(strings.Join(opts.Header, delim))
		buf.WriteByte('\n')
	}

	num := make([]byte, 0, 32)
	for i, row := range rows {
		if width < 0 {
			width = len(row)
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(row), width)
		}
		for j, v := range row {
			if j > 0 {
				buf.WriteString(delim)
			}
			num = strconv.AppendFloat(num[:0], v, 'g', -1, 64)
			buf.Write(num)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Decode parses delimited text produced by Encode. A first line none of whose
// fields is a number is returned as the header. Blank lines are skipped.
func Decode(data []byte, opts Options) ([]string, [][]float64, error) {
	delim, err := opts.delimiter()
	if err != nil {
		return nil, nil, err
	}

	var (
		header []string
		rows   [][]float64
		width  = -1
	)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, delim)

		row, err := parseRow(fields)
		if err != nil {
			if header == nil && rows == nil && !anyNumber(fields) {
				header = trimAll(fields)
				width = len(header)
				continue
			}
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if width < 0 {
			width = len(row)
		}
		if len(row) != width {
			return nil, nil, fmt.Errorf("%w: line %d has %d values, want %d", ErrRaggedRows, i+1, len(row), width)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func parseRow(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for j, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}
	return row, nil
}

func anyNumber(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			return true
		}
	}
	return false
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

// Write encodes rows and stores them under name.
func Write(ctx context.Context, store blobstore.BlobStore, name string, rows [][]float64, opts Options) error {
	data, err := Encode(rows, opts)
	if err != nil {
		return err
	}
	data, err = compress(data, opts.compressionFor(name))
	if err != nil {
		return fmt.Errorf("compress %s: %w", name, err)
	}
	return store.Put(ctx, name, data)
}

// Read loads and decodes the table stored under name.
func Read(ctx context.Context, store blobstore.BlobStore, name string, opts Options) ([]string, [][]float64, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, nil, err
	}
	data, err = decompress(data, opts.compressionFor(name))
	if err != nil {
		return nil, nil, fmt.Errorf("decompress %s: %w", name, err)
	}
	header, rows, err := Decode(data, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return header, rows, nil
}

// FromPoints converts points to two-column rows (x, y).
func FromPoints(points []geom.Point) [][]float64 {
	rows := make([][]float64, len(points))
	for i, p := range points {
		rows[i] = []float64{p.X, p.Y}
	}
	return rows
}

// Points converts two-column rows back to points.
func Points(rows [][]float64) ([]geom.Point, error) {
	points := make([]geom.Point, len(rows))
	for i, row := range rows {
		p, err := geom.FromVector(vector.Of(row...))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		points[i] = p
	}
	return points, nil
}
