package app

import (
	"errors"
	"net/http"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/domain"
)

func toAPITheater(theater *domain.Theater) api.Theater {
	screens := make([]api.TheaterScreen, 0, len(theater.Screens))
	for _, screen := range theater.Screens {
		layout := make([]api.TheaterSeatBlock, 0, len(screen.SeatLayout))
		for _, block := range screen.SeatLayout {
			layout = append(layout, api.TheaterSeatBlock{
				Category: block.Category,
				Price:    block.Price,
				Rows:     block.Rows,
			})
		}

		screens = append(screens, api.TheaterScreen{
			ScreenNumber: screen.ScreenNumber,
			ScreenName:   screen.ScreenName,
			TotalSeats:   screen.TotalSeats,
			SeatLayout:   layout,
		})
	}

	return api.Theater{
		ID:         theater.ID,
		Name:       theater.Name,
		Address:    theater.Address,
		City:       theater.City,
		State:      theater.State,
		Pincode:    theater.Pincode,
		Screens:    screens,
		Facilities: theater.Facilities,
		IsActive:   theater.IsActive,
	}
}

func theaterFromRequest(input api.CreateTheaterRequest) domain.Theater {
	screens := make([]domain.Screen, 0, len(input.Screens))
	for _, screen := range input.Screens {
		layout := make([]domain.SeatBlock, 0, len(screen.SeatLayout))
		for _, block := range screen.SeatLayout {
			layout = append(layout, domain.SeatBlock{
				Category: block.Category,
				Price:    block.Price,
				Rows:     block.Rows,
			})
		}

		screens = append(screens, domain.Screen{
			ScreenNumber: screen.ScreenNumber,
			ScreenName:   screen.ScreenName,
			TotalSeats:   screen.TotalSeats,
			SeatLayout:   layout,
		})
	}

	return domain.Theater{
		Name:       input.Name,
		Address:    input.Address,
		City:       input.City,
		State:      input.State,
		Pincode:    input.Pincode,
		Screens:    screens,
		Facilities: input.Facilities,
	}
}

func (app *Application) GetTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), id)
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
		Data:    toAPITheater(theater),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheaterRequest

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

	theater := theaterFromRequest(input)

	err = app.theaterRepo.Create(r.Context(), &theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.Response{
		Success: true,
		Message: "Theater created successfully",
		Data:    toAPITheater(&theater),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
