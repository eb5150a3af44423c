package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", PingHandler)
	r.Get("/dashboard/", app.DashboardHandler)

	r.Post("/summarize/", app.SummarizeHandler)
	r.Get("/analytics/{videoID}", app.AnalyticsHandler)
	r.Get("/output/*", app.OutputHandler)

	fileServer := http.FileServer(http.Dir(app.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}
