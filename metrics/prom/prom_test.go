package prom

import (
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)

	c.RecordSolve(100, time.Millisecond, nil)
	c.RecordSolve(1, time.Millisecond, errors.New("too few"))
	c.RecordExport(7, time.Millisecond, nil)
	c.RecordExport(7, time.Millisecond, errors.New("disk full"))

	assert.Equal(t, 4, testutil.CollectAndCount(c.opLatency))
	assert.Equal(t, 1, testutil.CollectAndCount(c.points))
	assert.Equal(t, float64(7), testutil.ToFloat64(c.exportRows))
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestCollector_Handler(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)
	c.RecordExport(3, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "nearpair_export_rows_total 3")
}

func TestCollector_WriteTextfile(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)
	c.RecordSolve(10, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "nearpair.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `nearpair_operation_latency_seconds_count{op="solve",status="success"} 1`))
}
