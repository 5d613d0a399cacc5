package app

import (
	"github.com/Black-And-White-Club/lif-standings/app/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the HTTP surface: standings, health and metrics.
func (app *App) Router() chi.Router {
	standings := handlers.NewStandingsHandler(
		app.Service,
		app.Cfg.Source.Dir,
		app.Cfg.Filter,
		app.Cfg.Source.Workers,
		app.Exporters,
		app.Logger,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Healthz)
	r.Mount("/standings", standings.Routes())
	r.Handle("/metrics", promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{}))
	return r
}
