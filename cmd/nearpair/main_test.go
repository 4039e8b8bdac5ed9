package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/nearpair"
	"github.com/hupe1980/nearpair/codec"
	"github.com/hupe1980/nearpair/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSolve_Sample(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--root", dir, "solve")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Closest pair: (9, 10) and (10, 2)\nDistance: 8.0622577"), out)
	assert.True(t, strings.HasSuffix(out, "\n"))

	assert.Equal(t, "x;y\n10;2\n3;40\n1;2\n70;8\n9;10\n9;10\n10;2\n", readFile(t, filepath.Join(dir, "data.csv")))
}

func TestGenerateThenSolve(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--root", dir, "generate", "--count", "300", "--seed", "3", "--out", "a.csv")
	require.NoError(t, err)
	_, err = execute(t, "--root", dir, "generate", "--count", "50", "--integer", "--max", "20", "--out", "b.csv.zst")
	require.NoError(t, err)

	out, err := execute(t, "--root", dir, "solve", "a.csv", "b.csv.zst",
		"--jobs", "2", "--compression", "lz4", "--report", "report.json")
	require.NoError(t, err)
	assert.Contains(t, out, "a.csv:\nClosest pair:")
	assert.Contains(t, out, "b.csv.zst:\nClosest pair:")

	assert.FileExists(t, filepath.Join(dir, "a.pair.csv.lz4"))
	assert.FileExists(t, filepath.Join(dir, "b.pair.csv.lz4"))

	var reports []nearpair.Report
	require.NoError(t, codec.Default.Unmarshal([]byte(readFile(t, filepath.Join(dir, "report.json"))), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "a.csv", reports[0].Name)
	assert.Equal(t, 300, reports[0].Count)
	assert.Equal(t, 50, reports[1].Count)
	// Integer coordinates put the squared distance on a whole number.
	d2 := reports[1].Distance * reports[1].Distance
	assert.InDelta(t, math.Round(d2), d2, 1e-9)
}

func TestGenerate_Deterministic(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--root", dir, "generate", "--count", "20", "--seed", "9", "--out", "one.csv")
	require.NoError(t, err)
	_, err = execute(t, "--root", dir, "generate", "--count", "20", "--seed", "9", "--out", "two.csv")
	require.NoError(t, err)

	assert.Equal(t, readFile(t, filepath.Join(dir, "one.csv")), readFile(t, filepath.Join(dir, "two.csv")))
}

func TestSolve_EnvBinding(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NEARPAIR_DELIMITER", ",")
	t.Setenv("NEARPAIR_OUT", "env.csv")

	_, err := execute(t, "--root", dir, "solve")
	require.NoError(t, err)
	assert.Equal(t, "x,y\n10,2\n3,40\n1,2\n70,8\n9,10\n9,10\n10,2\n", readFile(t, filepath.Join(dir, "env.csv")))
}

func TestSolve_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "nearpair.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("out: from-config.csv\nheader: [a, b]\n"), 0o600))

	_, err := execute(t, "--config", cfg, "--root", dir, "solve")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, filepath.Join(dir, "from-config.csv")), "a;b\n")
}

func TestSolve_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.csv"), []byte("x;y\n1;1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wide.csv"), []byte("1;2;3\n4;5;6\n"), 0o600))

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"TooFewPoints", []string{"solve", "one.csv"}, "at least 2 points"},
		{"WrongWidth", []string{"solve", "wide.csv"}, "dimension mismatch"},
		{"Missing", []string{"solve", "missing.csv"}, "no such file"},
		{"BadCompression", []string{"solve", "--compression", "gzip"}, "unknown compression"},
		{"BadCodec", []string{"solve", "--codec", "xml"}, "unknown --codec"},
		{"BadJobs", []string{"solve", "--jobs", "0"}, "--jobs must be positive"},
		{"BadStore", []string{"--store", "ftp", "solve"}, "unknown --store"},
		{"S3WithoutBucket", []string{"--store", "s3", "solve"}, "--bucket is required"},
		{"BadLogFormat", []string{"--log-format", "xml", "solve"}, "invalid --log-format"},
		{"MemoryLimit", []string{"solve", "--memory-limit", "10"}, "memory limit exceeded"},
		{"BadRange", []string{"generate", "--min", "5", "--max", "1"}, "below --min"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"--root", dir}, tc.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSolve_Throttled(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--root", dir, "--io-limit", "1048576", "solve", "--memory-limit", "1048576")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "data.csv"))
}

func TestSolve_DebugLogsMemory(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--root", dir, "--log-level", "debug", "solve", "--memory-limit", "4096"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	logs := stderr.String()
	assert.Contains(t, logs, "memory reserved")
	assert.Contains(t, logs, "in_use=440")
	assert.Contains(t, logs, "limit=4096")
}

func TestSolve_MetricsTextfile(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "nearpair.prom")

	_, err := execute(t, "--root", dir, "solve", "--metrics-textfile", metricsFile)
	require.NoError(t, err)
	assert.Contains(t, readFile(t, metricsFile), "nearpair_export_rows_total 7")
}

func TestSolve_CompressedSingleOutput(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--root", dir, "solve", "--compression", "zstd")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "data.csv"))
	require.FileExists(t, filepath.Join(dir, "data.csv.zst"))

	out, err := execute(t, "--root", dir, "solve", "data.csv.zst", "--out", "again.csv")
	require.NoError(t, err)
	// The exported table repeats the pair, so it now holds duplicates.
	assert.Contains(t, out, "Distance: 0\n")
}

func TestOutputName(t *testing.T) {
	o := &solveOpts{out: "data.csv"}

	assert.Equal(t, "data.csv", o.outputName(nil, 0, 0))
	assert.Equal(t, "data.csv", o.outputName([]string{"in.csv"}, 0, 0))

	assert.Equal(t, "data.csv.zst", o.outputName(nil, 0, table.CompressionZSTD))
	assert.Equal(t, "data.csv.lz4", o.outputName([]string{"in.csv"}, 0, table.CompressionLZ4))
	o.out = "data.csv.zst"
	assert.Equal(t, "data.csv.zst", o.outputName(nil, 0, table.CompressionZSTD))
	o.out = "data.csv"

	names := []string{"dir/a.csv", "b.csv.zst", "c"}
	assert.Equal(t, "dir/a.pair.csv", o.outputName(names, 0, 0))
	assert.Equal(t, "b.pair.csv", o.outputName(names, 1, 0))
	assert.Equal(t, "c.pair.zst", o.outputName(names, 2, 1))
}
