package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cinetix/theater-booking-api/api"
	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) BookSeats(w http.ResponseWriter, r *http.Request) {
	occurrenceID, err := app.readIntParam(r, "occurrenceId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	identity := app.contextGetIdentity(r)

	var input api.CreateBookingRequest

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

	booking, err := app.bookingRepo.Book(r.Context(), domain.BookingRequest{
		UserID:       identity.UserID,
		OccurrenceID: occurrenceID,
		SeatIDs:      input.SeatIdList,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrUnknownSeat):
			app.unprocessableEntityResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatAlreadyBooked):
			app.editConflictResponse(w, r, err)
		case errors.Is(err, domain.ErrShowDateRequired),
			errors.Is(err, domain.ErrShowDateInvalid),
			errors.Is(err, domain.ErrNoSeatsAvailable),
			errors.Is(err, domain.ErrShowUnavailable):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// Booked seats changed, so the cached seat map for this show is stale.
	if err := app.redis.Del(context.WithoutCancel(r.Context()), showSeatsKey(booking.ShowID)).Err(); err != nil {
		app.logger.Warn("failed to invalidate seat map cache", "showId", booking.ShowID, "error", err)
	}

	if identity.Email != "" {
		app.sendBookingConfirmation(identity.Email, booking)
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(*booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	params := api.GetUserBookingsParams{
		Page:     app.readOptionalIntQuery(r, "page"),
		PageSize: app.readOptionalIntQuery(r, "pageSize"),
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := toPagination(params.Page, params.PageSize, nil, nil)

	summaries, metadata, err := app.bookingRepo.GetSummariesByUserId(r.Context(), identity.UserID, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: make([]api.BookingSummary, len(summaries)),
		Metadata: toApiMetadata(metadata),
	}

	for i, summary := range summaries {
		resp.Bookings[i] = api.BookingSummary{
			Id:           summary.BookingID,
			MovieTitle:   summary.MovieTitle,
			ScreenNumber: summary.ScreenNumber,
			ShowDate:     types.Date{Time: summary.ShowDate},
			StartTime:    formatTimeOfDay(summary.StartTime),
			SeatNumbers:  summary.SeatNumbers,
			CreatedAt:    summary.CreatedAt.Format(time.RFC3339),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendBookingConfirmation(recipient string, booking *domain.Booking) {
	seatNumbers := make([]string, len(booking.Seats))
	for i, seat := range booking.Seats {
		seatNumbers[i] = seat.SeatNumber
	}

	data := map[string]any{
		"BookingID":    booking.ID,
		"MovieTitle":   booking.MovieTitle,
		"ScreenNumber": booking.ScreenNumber,
		"ShowDate":     booking.ShowDate.Format("2006-01-02"),
		"Seats":        seatNumbers,
	}

	app.background(func() {
		err := app.mailer.Send(recipient, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation", "error", err)
		}
	})
}

func toBookingResponse(booking domain.Booking) api.BookingResponse {
	resp := api.BookingResponse{
		Id:           booking.ID,
		ShowId:       booking.ShowID,
		OccurrenceId: booking.OccurrenceID,
		ShowDate:     types.Date{Time: booking.ShowDate},
		Seats:        make([]api.BookedSeat, len(booking.Seats)),
	}

	for i, seat := range booking.Seats {
		resp.Seats[i] = api.BookedSeat{
			Id:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Row:        seat.Row,
			Column:     seat.Col,
		}
	}

	return resp
}
