package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/anshika-1705/movieapp/internal/mocks"
	"github.com/shopspring/decimal"
)

func TestCreateTheater(t *testing.T) {
	t.Run("creates a theater with its screen layout", func(t *testing.T) {
		var created *domain.Theater

		app := newTestApplication(t, func(app *Application) {
			app.theaterRepo = &mocks.MockTheaterRepo{
				CreateFunc: func(ctx context.Context, theater *domain.Theater) error {
					theater.ID = 2
					theater.IsActive = true
					created = theater
					return nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/api/theaters", api.CreateTheaterRequest{
			Name:    "Galaxy Cinemas",
			Address: "1 Main St",
			City:    "Pune",
			State:   "MH",
			Pincode: "411001",
			Screens: []api.TheaterScreen{
				{
					ScreenNumber: 1,
					ScreenName:   "Audi 1",
					TotalSeats:   20,
					SeatLayout: []api.TheaterSeatBlock{
						{Category: "premium", Price: decimal.NewFromInt(300), Rows: []string{"A", "B"}},
					},
				},
			},
			Facilities: []string{"Parking"},
		})

		app.CreateTheater(w, withClaims(app, r, 1, domain.RoleAdmin))

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
		}

		if len(created.Screens) != 1 || created.Screens[0].TotalSeats != 20 {
			t.Errorf("unexpected screens: %+v", created.Screens)
		}

		resp := decodeEnvelope(t, w)
		theater := decodeData[api.Theater](t, resp)

		if theater.ID != 2 || !theater.IsActive {
			t.Errorf("theater = %+v, want id 2 and active", theater)
		}
	})

	t.Run("rejects a theater without screens", func(t *testing.T) {
		app := newTestApplication(t)

		w, r := executeRequest(t, http.MethodPost, "/api/theaters", api.CreateTheaterRequest{
			Name:    "Galaxy Cinemas",
			Address: "1 Main St",
			City:    "Pune",
			State:   "MH",
			Pincode: "411001",
		})

		app.CreateTheater(w, withClaims(app, r, 1, domain.RoleAdmin))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestGetTheater(t *testing.T) {
	app := newTestApplication(t, func(app *Application) {
		app.theaterRepo = &mocks.MockTheaterRepo{
			GetByIdFunc: func(ctx context.Context, id int) (*domain.Theater, error) {
				if id != 2 {
					return nil, domain.ErrRecordNotFound
				}
				return &domain.Theater{ID: 2, Name: "Galaxy Cinemas", City: "Pune", IsActive: true}, nil
			},
		}
	})

	t.Run("found", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodGet, "/api/theaters/2", nil)
		r = withURLParam(r, "id", "2")

		app.GetTheater(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		resp := decodeEnvelope(t, w)
		theater := decodeData[api.Theater](t, resp)

		if theater.Name != "Galaxy Cinemas" {
			t.Errorf("name = %q, want Galaxy Cinemas", theater.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodGet, "/api/theaters/99", nil)
		r = withURLParam(r, "id", "99")

		app.GetTheater(w, r)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}
