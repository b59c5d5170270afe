package app

import (
	"net/http"

	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("theater-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.identityFromGateway)

	manage := app.requirePermission(domain.OpManageCatalog)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/screens", func(r chi.Router) {
		r.Get("/", app.ListScreens)
		r.With(manage).Post("/", app.CreateScreen)
		r.With(manage).Delete("/{screenId}", app.DeleteScreen)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.With(manage).Post("/", app.CreateMovie)
		r.Get("/{movieId}", app.GetMovie)
		r.With(manage).Put("/{movieId}", app.UpdateMovie)
		r.With(manage).Delete("/{movieId}", app.DeleteMovie)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", app.ListShows)
		r.With(manage).Post("/", app.CreateShow)
		r.Get("/{showId}", app.GetShow)
		r.With(manage).Patch("/{showId}", app.UpdateShow)
		r.With(manage).Delete("/{showId}", app.DeleteShow)
		r.With(manage).Put("/{showId}/prices/{priceId}", app.UpdateShowPrice)
		r.Get("/{showId}/seats", app.GetShowSeats)

		r.With(app.requirePermission(domain.OpBookSeats)).
			Post("/occurrences/{occurrenceId}/bookings", app.BookSeats)
	})

	r.With(app.requirePermission(domain.OpViewBookings)).
		Get("/users/me/bookings", app.ListMyBookings)

	return r
}
