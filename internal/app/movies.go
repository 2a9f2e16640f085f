package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/domain"
)

func toAPIMovie(movie *domain.Movie) api.Movie {
	cast := make([]api.CastMember, 0, len(movie.CastMembers))
	for _, member := range movie.CastMembers {
		cast = append(cast, api.CastMember{Name: member.Name, Role: member.Role})
	}

	return api.Movie{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Genres:      movie.Genres,
		Duration:    movie.Duration,
		Language:    movie.Language,
		Rating:      movie.Rating,
		ReleaseDate: movie.ReleaseDate,
		Poster:      movie.PosterUrl,
		Image:       movie.ImageUrl,
		Trailer:     movie.TrailerUrl,
		Cast:        cast,
		Director:    movie.Director,
		ShowTimings: movie.ShowTimings,
		Info:        movie.Info,
		IsActive:    movie.IsActive,
		CreatedAt:   movie.CreatedAt,
	}
}

func toAPIMovies(movies []*domain.Movie) []api.Movie {
	out := make([]api.Movie, 0, len(movies))
	for _, movie := range movies {
		out = append(out, toAPIMovie(movie))
	}

	return out
}

func movieFromRequest(input api.CreateMovieRequest) domain.Movie {
	cast := make([]domain.CastMember, 0, len(input.Cast))
	for _, member := range input.Cast {
		cast = append(cast, domain.CastMember{Name: member.Name, Role: member.Role})
	}

	return domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Genres:      input.Genres,
		Duration:    input.Duration,
		Language:    input.Language,
		Rating:      input.Rating,
		ReleaseDate: input.ReleaseDate,
		PosterUrl:   input.Poster,
		ImageUrl:    input.Image,
		TrailerUrl:  input.Trailer,
		CastMembers: cast,
		Director:    input.Director,
		ShowTimings: input.ShowTimings,
		Info:        input.Info,
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := domain.MovieFilters{
		Term:     app.readString(qs, "search", ""),
		Genre:    app.readString(qs, "genre", ""),
		Language: app.readString(qs, "language", ""),
		Pagination: domain.Pagination{
			Page:     app.readInt(qs, "page", 1),
			PageSize: app.readInt(qs, "limit", 10),
		},
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	count := len(movies)
	resp := api.Response{
		Success: true,
		Count:   &count,
		Total:   &metadata.TotalRecords,
		Data:    toAPIMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListNowShowingMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetNowShowing(r.Context(), time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeMovieList(w, r, movies)
}

func (app *Application) ListUpcomingMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetUpcoming(r.Context(), time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeMovieList(w, r, movies)
}

func (app *Application) writeMovieList(w http.ResponseWriter, r *http.Request, movies []*domain.Movie) {
	count := len(movies)
	resp := api.Response{
		Success: true,
		Count:   &count,
		Data:    toAPIMovies(movies),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.Response{
		Success: true,
		Data:    toAPIMovie(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := movieFromRequest(input)

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.Response{
		Success: true,
		Message: "Movie created successfully",
		Data:    toAPIMovie(&movie),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateMovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := movieFromRequest(input)
	movie.ID = id

	err = app.movieRepo.Update(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.Response{
		Success: true,
		Message: "Movie updated successfully",
		Data:    toAPIMovie(&movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.Response{
		Success: true,
		Message: "Movie deleted successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
