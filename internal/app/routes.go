package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("movie-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.rateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.GetHealth)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.Register)
			r.Post("/login", app.Login)
			r.With(app.requireAuthentication).Get("/me", app.GetCurrentUser)
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", app.ListMovies)
			r.Get("/now-showing", app.ListNowShowingMovies)
			r.Get("/upcoming", app.ListUpcomingMovies)
			r.Get("/{id}", app.GetMovie)

			r.Group(func(r chi.Router) {
				r.Use(app.requireAuthentication, app.requireAdmin)
				r.Post("/", app.CreateMovie)
				r.Put("/{id}", app.UpdateMovie)
				r.Delete("/{id}", app.DeleteMovie)
			})
		})

		r.Route("/theaters", func(r chi.Router) {
			r.Get("/{id}", app.GetTheater)

			r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateTheater)
		})

		r.Route("/shows", func(r chi.Router) {
			r.Get("/", app.ListShows)
			r.Get("/movie/{movieId}", app.ListShowsByMovie)
			r.Get("/{id}/seats", app.GetSeatAvailability)

			r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateShow)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Use(app.requireAuthentication)

			r.Post("/", app.CreateBooking)
			r.With(app.requireAdmin).Get("/", app.ListAllBookings)
			r.Get("/my-bookings", app.ListMyBookings)
			r.Get("/{id}", app.GetBooking)
			r.Put("/{id}/cancel", app.CancelBooking)
		})
	})

	return r
}
