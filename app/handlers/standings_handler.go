package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	standingsservice "github.com/Black-And-White-Club/lif-standings/app/modules/standings/application"
	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/Black-And-White-Club/lif-standings/app/modules/standings/infrastructure/exporters"
	"github.com/go-chi/chi/v5"
)

// WarningCountHeader carries the number of warnings raised for a CSV response.
const WarningCountHeader = "X-Standings-Warnings"

// csvFilename selects the CSV exporter from the factory.
const csvFilename = "standings.csv"

// StandingsHandler serves standings computed from the configured source folder.
type StandingsHandler struct {
	service standingsservice.Service
	root    string
	years   standingsdomain.YearRange
	workers   int
	exporters exporters.ExporterFactory
	logger    *slog.Logger
}

// NewStandingsHandler creates a handler computing over root. years is the
// default filter, narrowed per request by min_year and max_year.
func NewStandingsHandler(
	service standingsservice.Service,
	root string,
	years standingsdomain.YearRange,
	workers int,
	exporterFactory exporters.ExporterFactory,
	logger *slog.Logger,
) *StandingsHandler {
	if exporterFactory == nil {
		exporterFactory = exporters.NewFactory(exporters.Options{})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StandingsHandler{
		service:   service,
		root:      root,
		years:     years,
		workers:   workers,
		exporters: exporterFactory,
		logger:    logger,
	}
}

// GetStandings computes and returns the standings table.
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	years, err := h.yearsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "json" {
		http.Error(w, fmt.Sprintf("Unsupported format %q", format), http.StatusBadRequest)
		return
	}

	result, err := h.service.ComputeStandings(r.Context(), standingsservice.ComputeRequest{
		Root:    h.root,
		Years:   years,
		Workers: h.workers,
	})
	if err != nil {
		if errors.Is(err, standingsdomain.ErrInvalidYearRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to compute standings", slog.Any("error", err))
		http.Error(w, fmt.Sprintf("Failed to compute standings: %v", err), http.StatusInternalServerError)
		return
	}

	if format == "json" {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
		}
		return
	}

	exporter, err := h.exporters.GetExporter(csvFilename)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to export standings: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set(WarningCountHeader, strconv.Itoa(len(result.Warnings)))
	if err := exporter.Export(w, result.Standings); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write standings", slog.Any("error", err))
	}
}

// yearsFromQuery overlays min_year and max_year on the default filter.
func (h *StandingsHandler) yearsFromQuery(r *http.Request) (standingsdomain.YearRange, error) {
	years := h.years
	query := r.URL.Query()

	for _, bound := range []struct {
		param  string
		target **int
	}{
		{"min_year", &years.Min},
		{"max_year", &years.Max},
	} {
		raw := query.Get(bound.param)
		if raw == "" {
			continue
		}
		year, err := strconv.Atoi(raw)
		if err != nil {
			return years, fmt.Errorf("invalid %s: %q", bound.param, raw)
		}
		*bound.target = &year
	}

	return years, years.Validate()
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Routes sets up the routes for the standings handler.
func (h *StandingsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetStandings)
	return r
}
