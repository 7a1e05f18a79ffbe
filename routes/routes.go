package routes

import (
	"net/http"

	"github.com/Dosada05/volleyball-league/handlers"
	"github.com/Dosada05/volleyball-league/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/volleyball-league/docs"
)

type Handlers struct {
	Division  *handlers.DivisionHandler
	Playoff   *handlers.PlayoffHandler
	Standings *handlers.StandingsHandler
	Team      *handlers.TeamHandler
	WebSocket *handlers.WebSocketHandler
}

type Options struct {
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", handlers.Healthz)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	// Not rate limited.
	router.Get("/ws/divisions/{divisionID}", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Middleware)
		}

		r.Route("/seasons/{seasonID}", func(r chi.Router) {
			r.Get("/divisions", h.Division.ListDivisions)
			r.Get("/standings", h.Standings.GetSeasonStandings)
			r.Get("/teams/search", h.Team.SearchTeams)
		})

		r.Route("/divisions/{divisionID}", func(r chi.Router) {
			r.Get("/playoffs", h.Playoff.GetPlayoffs)
			r.Get("/playoffs/bracket", h.Playoff.GetBracket)
			r.Get("/schedule", h.Playoff.GetSchedule)
			r.Get("/standings", h.Standings.GetDivisionStandings)
		})

		r.Get("/playoffs/template", h.Playoff.PreviewTemplate)
	})
}
