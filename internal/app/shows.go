package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/shopspring/decimal"
)

// lowercaseKeys normalizes price-table category names; lookups at booking time
// are lowercased too.
func lowercaseKeys(prices map[string]decimal.Decimal) map[string]decimal.Decimal {
	normalized := make(map[string]decimal.Decimal, len(prices))
	for category, price := range prices {
		normalized[strings.ToLower(category)] = price
	}

	return normalized
}

func toAPIShow(details *domain.ShowDetails) api.Show {
	return api.Show{
		ID: details.ID,
		Movie: api.ShowMovie{
			ID:       details.MovieID,
			Title:    details.MovieTitle,
			Poster:   details.MoviePosterUrl,
			Duration: details.MovieDuration,
			Rating:   details.MovieRating,
		},
		Theater: api.ShowTheater{
			ID:      details.TheaterID,
			Name:    details.TheaterName,
			Address: details.TheaterAddress,
			City:    details.TheaterCity,
			State:   details.TheaterState,
		},
		ScreenNumber: details.ScreenNumber,
		Date:         details.Date,
		StartTime:    details.StartTime,
		EndTime:      details.EndTime,
		Price:        details.Prices,
		TotalSeats:   details.TotalSeats,
		IsActive:     details.IsActive,
	}
}

func toAPIShows(shows []*domain.ShowDetails) []api.Show {
	out := make([]api.Show, 0, len(shows))
	for _, details := range shows {
		out = append(out, toAPIShow(details))
	}

	return out
}

func (app *Application) ListShows(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	date, err := app.readDate(qs, "date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.ShowFilters{
		Date:      date,
		TheaterID: app.readInt(qs, "theater", 0),
		Pagination: domain.Pagination{
			Page:     app.readInt(qs, "page", 1),
			PageSize: app.readInt(qs, "limit", 10),
		},
	}

	shows, metadata, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	count := len(shows)
	resp := api.Response{
		Success: true,
		Count:   &count,
		Total:   &metadata.TotalRecords,
		Data:    toAPIShows(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListShowsByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	date, err := app.readDate(r.URL.Query(), "date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shows, err := app.showRepo.GetAllByMovie(r.Context(), movieID, date)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	count := len(shows)
	resp := api.Response{
		Success: true,
		Count:   &count,
		Data:    toAPIShows(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), input.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("movie %d does not exist", input.MovieID))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	_, err = app.theaterRepo.GetById(r.Context(), input.TheaterID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("theater %d does not exist", input.TheaterID))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	show := domain.Show{
		MovieID:      input.MovieID,
		TheaterID:    input.TheaterID,
		ScreenNumber: input.ScreenNumber,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Prices:       lowercaseKeys(input.Price),
		TotalSeats:   input.TotalSeats,
	}

	err = app.showRepo.Create(r.Context(), &show)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.Response{
		Success: true,
		Message: "Show created successfully",
		Data: api.Show{
			ID:           show.ID,
			Movie:        api.ShowMovie{ID: show.MovieID},
			Theater:      api.ShowTheater{ID: show.TheaterID},
			ScreenNumber: show.ScreenNumber,
			Date:         show.Date,
			StartTime:    show.StartTime,
			EndTime:      show.EndTime,
			Price:        show.Prices,
			TotalSeats:   show.TotalSeats,
			IsActive:     show.IsActive,
		},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	details, err := app.showRepo.GetDetailsById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	availability := domain.AvailableSeats(details.BookedSeats, details.TotalSeats)

	seats := make([]api.Seat, 0, len(availability))
	for _, seat := range availability {
		seats = append(seats, api.Seat{
			SeatNumber:  seat.SeatNumber,
			IsAvailable: seat.Available,
		})
	}

	bookedSeats := make([]string, 0, len(details.BookedSeats))
	for _, seat := range details.BookedSeats {
		bookedSeats = append(bookedSeats, seat.SeatNumber)
	}

	resp := api.Response{
		Success: true,
		Data: api.SeatMap{
			Show:        toAPIShow(details),
			Seats:       seats,
			BookedSeats: bookedSeats,
		},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
