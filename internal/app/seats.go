package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinetix/theater-booking-api/api"
	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/shopspring/decimal"
)

const seatMapCacheTTL = 30 * time.Second

func showSeatsKey(showID int) string {
	return fmt.Sprintf("show_seats:%d", showID)
}

func (app *Application) GetShowSeats(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIntParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cached, err := app.redis.Get(r.Context(), showSeatsKey(showID)).Result()
	if err == nil {
		var resp api.SeatMapResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			if err := app.writeJSON(w, http.StatusOK, resp, nil); err != nil {
				app.serverErrorResponse(w, r, err)
			}
			return
		}
	}

	seatMap, err := app.seatRepo.GetSeatMapByShow(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	bookedSeatIDs, err := app.bookingRepo.GetSeatIdsByShowId(r.Context(), showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booked := make(map[int]bool, len(bookedSeatIDs))
	for _, id := range bookedSeatIDs {
		booked[id] = true
	}

	for i := range seatMap.Seats {
		if booked[seatMap.Seats[i].ID] {
			seatMap.Seats[i].Available = false
		}
	}

	resp := api.SeatMapResponse{
		ShowId:       seatMap.ShowID,
		ScreenId:     seatMap.ScreenID,
		ScreenNumber: seatMap.ScreenNumber,
		MovieTitle:   seatMap.MovieTitle,
		SeatRows:     toSeatRows(seatMap.Seats),
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := app.redis.Set(r.Context(), showSeatsKey(showID), payload, seatMapCacheTTL).Err(); err != nil {
			app.logger.Warn("failed to cache seat map", "showId", showID, "error", err)
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toSeatRows groups a row-major ordered seat list into per-row slices.
func toSeatRows(seats []domain.SeatAvailability) []api.SeatRow {
	seatRows := make([]api.SeatRow, 0)

	for _, seat := range seats {
		apiSeat := api.Seat{
			Id:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Row:        seat.Row,
			Column:     seat.Col,
			Type:       api.SeatType(seat.SeatType),
			Price:      decimal.NewFromFloat(seat.Price),
			Available:  seat.Available,
		}

		if len(seatRows) == 0 || seatRows[len(seatRows)-1].Row != seat.Row {
			seatRows = append(seatRows, api.SeatRow{Row: seat.Row})
		}

		last := len(seatRows) - 1
		seatRows[last].Seats = append(seatRows[last].Seats, apiSeat)
	}

	return seatRows
}
