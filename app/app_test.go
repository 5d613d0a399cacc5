package app

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/Black-And-White-Club/lif-standings/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nationalsFinal = "012-Open Final-01\n1,11,2,Ward,Kim,North,3:01.2\n2,12,3,Hale,Lou,South,3:02.4\n"

const oldFinal = "003-Open Final-01\n1,31,1,Pike,Max,West,3:10.0\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2017 Nationals", "012.lif"), nationalsFinal)
	writeFile(t, filepath.Join(root, "2017 Nationals", "notes.txt"), "ignored Final\n1,1,1,a,b,X\n")
	writeFile(t, filepath.Join(root, "2014 Regionals", "003.lif"), oldFinal)

	minYear := 2016
	cfg := &config.Config{
		Source: config.SourceConfig{Dir: root, Charset: "utf-8", Workers: 1},
		Filter: standingsdomain.NewYearRange(&minYear, nil),
		Observability: config.ObservabilityConfig{
			MetricsFile: filepath.Join(t.TempDir(), "standings.prom"),
		},
	}

	app, err := NewApp(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app, root
}

func TestApp_ComputeAndExport(t *testing.T) {
	app, _ := newTestApp(t)

	result, err := app.Compute(context.Background(), app.Cfg.Filter)
	require.NoError(t, err)
	assert.Equal(t, []standingsdomain.Standing{
		{Rank: 1, Club: "North", Points: 10},
		{Rank: 2, Club: "South", Points: 7},
	}, result.Standings)
	assert.Contains(t, result.Summary.FoldersExcluded, "2014 Regionals")

	out := filepath.Join(t.TempDir(), "nested", "results.csv")
	require.NoError(t, app.Export(out, result.Standings))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Club Name", "Points"}, {"North", "10"}, {"South", "7"}}, rows)

	require.Error(t, app.Export(filepath.Join(t.TempDir(), "results.pdf"), result.Standings))

	require.NoError(t, app.Close(context.Background()))
	metrics, err := os.ReadFile(app.Cfg.Observability.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "lif_standings_files_scored_total 1")
	assert.Contains(t, string(metrics), "lif_standings_standings_clubs 2")
}

func TestApp_Router(t *testing.T) {
	app, _ := newTestApp(t)
	srv := httptest.NewServer(app.Router())
	defer srv.Close()

	get := func(path string) (int, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	status, body := get("/standings")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Club Name,Points\nNorth,10\nSouth,7\n", body)

	status, body = get("/standings?min_year=2010&max_year=2014")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Club Name,Points\nWest,10\n", body)

	status, _ = get("/healthz")
	assert.Equal(t, http.StatusOK, status)

	status, body = get("/metrics")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(body, `lif_standings_operation_attempts_total{operation="ComputeStandings",service="StandingsService"} 2`), body)
}

func TestNewApp_RejectsUnknownCharset(t *testing.T) {
	cfg := &config.Config{Source: config.SourceConfig{Dir: t.TempDir(), Charset: "klingon"}}
	_, err := NewApp(context.Background(), cfg, nil)
	require.Error(t, err)
}
