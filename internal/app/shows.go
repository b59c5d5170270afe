package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cinetix/theater-booking-api/api"
	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

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

	startTime := parseTimeOfDay(input.StartTime)
	endTime := parseTimeOfDay(input.EndTime)

	if endTime.Microseconds <= startTime.Microseconds {
		app.badRequestResponse(w, r, errors.New("endTime must be after startTime"))
		return
	}

	if !input.EndDate.After(input.StartDate.Time) {
		app.badRequestResponse(w, r, errors.New("endDate must be after startDate"))
		return
	}

	show := domain.ShowDetail{
		MovieID:   input.MovieId,
		ScreenID:  input.ScreenId,
		StartTime: startTime,
		EndTime:   endTime,
		StartDate: input.StartDate.Time,
		EndDate:   input.EndDate.Time,
	}

	prices := make([]domain.NewShowPrice, len(input.Prices))
	for i, price := range input.Prices {
		if price.Price.IsNegative() {
			app.badRequestResponse(w, r, errors.New("price must not be negative"))
			return
		}

		prices[i] = domain.NewShowPrice{
			SeatTypeID: price.SeatTypeId,
			Price:      price.Price.InexactFloat64(),
		}
	}

	err = app.showRepo.Create(r.Context(), &show, prices)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrShowOverlap):
			app.unprocessableEntityResponse(w, r, err)
		case errors.Is(err, domain.ErrUnknownSeatType):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowResponse(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := app.showRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{Shows: make([]api.ShowResponse, len(shows))}
	for i, show := range shows {
		resp.Shows[i] = toShowResponse(show)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShow(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIntParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowResponse(*show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShow(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIntParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateShowRequest

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

	update := domain.ShowUpdate{
		MovieID:        input.MovieId,
		ScreenID:       input.ScreenId,
		AvailableSeats: input.AvailableSeats,
	}

	if input.StartTime != nil {
		t := parseTimeOfDay(*input.StartTime)
		update.StartTime = &t
	}
	if input.EndTime != nil {
		t := parseTimeOfDay(*input.EndTime)
		update.EndTime = &t
	}
	if input.StartDate != nil {
		update.StartDate = &input.StartDate.Time
	}
	if input.EndDate != nil {
		update.EndDate = &input.EndDate.Time
	}

	show, err := app.showRepo.Update(r.Context(), showID, update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowResponse(*show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowPrice(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIntParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	priceID, err := app.readIntParam(r, "priceId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdatePriceRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Price.IsNegative() {
		app.badRequestResponse(w, r, errors.New("price must not be negative"))
		return
	}

	price, err := app.showRepo.UpdatePrice(r.Context(), showID, priceID, input.Price.InexactFloat64())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.UpdatedPriceResponse{
		Message: "Price updated successfully",
		Price:   decimal.NewFromFloat(price.Price),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShow(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIntParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.showRepo.Delete(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTimeOfDay converts an HH:MM string into a pgtype.Time. Callers must
// have run the hhmm validation first; malformed input yields midnight.
func parseTimeOfDay(s string) pgtype.Time {
	var hour, minute int
	fmt.Sscanf(s, "%d:%d", &hour, &minute)

	return domain.TimeOfDay(hour, minute)
}

func formatTimeOfDay(t pgtype.Time) string {
	seconds := t.Microseconds / 1e6

	return fmt.Sprintf("%02d:%02d", seconds/3600, (seconds%3600)/60)
}

func toShowResponse(show domain.ShowDetail) api.ShowResponse {
	resp := api.ShowResponse{
		Id:             show.ID,
		MovieId:        show.MovieID,
		Title:          show.MovieTitle,
		ScreenId:       show.ScreenID,
		ScreenNumber:   show.ScreenNumber,
		StartTime:      formatTimeOfDay(show.StartTime),
		EndTime:        formatTimeOfDay(show.EndTime),
		StartDate:      types.Date{Time: show.StartDate},
		EndDate:        types.Date{Time: show.EndDate},
		AvailableSeats: show.AvailableSeats,
		Prices:         make([]api.ShowPriceResponse, len(show.Prices)),
	}

	for i, price := range show.Prices {
		resp.Prices[i] = api.ShowPriceResponse{
			Id:         price.ID,
			SeatTypeId: price.SeatTypeID,
			SeatType:   string(price.SeatType),
			Price:      decimal.NewFromFloat(price.Price),
		}
	}

	for _, occurrence := range show.Occurrences {
		resp.Occurrences = append(resp.Occurrences, api.OccurrenceResponse{
			Id:             occurrence.ID,
			ShowDate:       types.Date{Time: occurrence.ShowDate},
			AvailableSeats: occurrence.AvailableSeats,
		})
	}

	return resp
}
