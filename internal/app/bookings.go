package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/domain"
)

func toAPIBooking(details *domain.BookingDetails) api.Booking {
	seats := make([]api.BookingSeat, 0, len(details.Seats))
	for _, seat := range details.Seats {
		seats = append(seats, api.BookingSeat{
			SeatNumber: seat.SeatNumber,
			Category:   seat.Category,
			Price:      seat.Price,
		})
	}

	return api.Booking{
		ID:     details.ID,
		UserID: details.UserID,
		Show: api.BookingShow{
			ID:           details.ShowID,
			Date:         details.ShowDate,
			StartTime:    details.ShowStartTime,
			EndTime:      details.ShowEndTime,
			ScreenNumber: details.ScreenNumber,
			MovieTitle:   details.MovieTitle,
			MoviePoster:  details.MoviePosterUrl,
			TheaterName:  details.TheaterName,
			TheaterCity:  details.TheaterCity,
		},
		Seats:         seats,
		TotalAmount:   details.TotalAmount,
		PaymentMethod: details.PaymentMethod,
		PaymentStatus: string(details.PaymentStatus),
		BookingStatus: string(details.Status),
		TransactionID: details.TransactionID,
		CreatedAt:     details.CreatedAt,
	}
}

func toAPIBookings(bookings []*domain.BookingDetails) []api.Booking {
	out := make([]api.Booking, 0, len(bookings))
	for _, details := range bookings {
		out = append(out, toAPIBooking(details))
	}

	return out
}

func bookingMailData(user *domain.User, details *domain.BookingDetails) map[string]any {
	return map[string]any{
		"Name":        user.Name,
		"BookingID":   details.ID,
		"MovieTitle":  details.MovieTitle,
		"TheaterName": details.TheaterName,
		"TheaterCity": details.TheaterCity,
		"ShowDate":    details.ShowDate.Format("Monday, Jan 2 2006"),
		"ShowTime":    details.ShowStartTime,
		"Seats":       strings.Join(details.SeatNumbers(), ", "),
		"TotalAmount": details.TotalAmount.String(),
	}
}

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims := app.contextGetClaims(r)

	var input api.CreateBookingRequest

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

	show, err := app.showRepo.GetById(r.Context(), input.ShowID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if !show.IsActive {
		app.notFoundResponse(w, r)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), claims.UserID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	selections := make([]domain.SeatSelection, 0, len(input.Seats))
	for _, seat := range input.Seats {
		selections = append(selections, domain.SeatSelection{
			SeatNumber: seat.SeatNumber,
			Category:   seat.Category,
		})
	}

	booking := domain.NewBooking(claims.UserID, show, selections, input.PaymentMethod)

	transactionID, err := app.payments.Charge(r.Context(), booking, user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booking.TransactionID = transactionID
	booking.PaymentStatus = domain.PaymentStatusCompleted

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		// The charge already went through; without a booking behind it the
		// money has to go back.
		refundErr := app.payments.Refund(r.Context(), booking)
		if refundErr != nil {
			app.logger.Error("failed to refund charge for failed booking",
				"error", refundErr, "transaction_id", booking.TransactionID)
		}

		var conflictErr *domain.SeatConflictError

		switch {
		case errors.As(err, &conflictErr):
			app.conflictResponse(w, r, conflictErr.Error())
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.bookingsCreated.Add(r.Context(), 1)

	details, err := app.bookingRepo.GetById(r.Context(), booking.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.background(r, func() {
		err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", bookingMailData(user, details))
		if err != nil {
			app.logger.Error("failed to send booking confirmation email", "error", err, "booking_id", details.ID)
		}
	})

	resp := api.Response{
		Success: true,
		Message: "Booking created successfully",
		Data:    toAPIBooking(details),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	claims := app.contextGetClaims(r)

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	details, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if details.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		app.forbiddenResponse(w, r, "Not authorized to view this booking")
		return
	}

	resp := api.Response{
		Success: true,
		Data:    toAPIBooking(details),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	claims := app.contextGetClaims(r)

	bookings, err := app.bookingRepo.GetAllByUser(r.Context(), claims.UserID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	count := len(bookings)
	resp := api.Response{
		Success: true,
		Count:   &count,
		Data:    toAPIBookings(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	status := domain.BookingStatus(app.readString(qs, "status", ""))
	pagination := domain.Pagination{
		Page:     app.readInt(qs, "page", 1),
		PageSize: app.readInt(qs, "limit", 10),
	}

	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), status, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	count := len(bookings)
	resp := api.Response{
		Success: true,
		Count:   &count,
		Total:   &metadata.TotalRecords,
		Data:    toAPIBookings(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBooking is owner-only; admins can read any booking but cannot cancel
// on a user's behalf.
func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	claims := app.contextGetClaims(r)

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	details, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if details.UserID != claims.UserID {
		app.forbiddenResponse(w, r, "Not authorized to cancel this booking")
		return
	}

	show := &domain.Show{
		Date:      details.ShowDate,
		StartTime: details.ShowStartTime,
	}

	err = details.Cancellable(show, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingAlreadyCancelled),
			errors.Is(err, domain.ErrCancellationWindow):
			app.conflictResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.bookingRepo.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.conflictResponse(w, r, domain.ErrBookingAlreadyCancelled.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.bookingsCancelled.Add(r.Context(), 1)

	err = app.payments.Refund(r.Context(), &details.Booking)
	if err != nil {
		// The booking is already cancelled; a failed refund needs operator
		// attention, not a rolled-back cancellation.
		app.logger.Error("failed to refund payment", "error", err, "booking_id", details.ID)
	}

	details.Status = domain.BookingStatusCancelled
	details.PaymentStatus = domain.PaymentStatusRefunded

	app.background(r, func() {
		user, err := app.userRepo.GetById(context.Background(), details.UserID)
		if err != nil {
			app.logger.Error("failed to load user for cancellation email", "error", err, "booking_id", details.ID)
			return
		}

		err = app.mailer.Send(user.Email, "booking_cancelled.tmpl", bookingMailData(user, details))
		if err != nil {
			app.logger.Error("failed to send booking cancellation email", "error", err, "booking_id", details.ID)
		}
	})

	resp := api.Response{
		Success: true,
		Message: "Booking cancelled successfully",
		Data:    toAPIBooking(details),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
