package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/theater-booking-api/api"
	"github.com/cinetix/theater-booking-api/internal/domain"
)

func (app *Application) CreateScreen(w http.ResponseWriter, r *http.Request) {
	var input api.CreateScreenRequest

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

	blocks := make([]domain.SeatBlock, len(input.SeatTypes))
	for i, block := range input.SeatTypes {
		blocks[i] = domain.SeatBlock{
			SeatType: domain.SeatType(block.SeatType),
			Rows:     block.Rows,
			Columns:  block.Columns,
			Order:    block.Order,
		}
	}

	screen, err := app.screenRepo.CreateWithSeats(r.Context(), input.ScreenNumber, blocks)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBlockOrder), errors.Is(err, domain.ErrUnknownSeatType):
			app.unprocessableEntityResponse(w, r, err)
		case errors.Is(err, domain.ErrScreenNumberTaken):
			app.editConflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toScreenResponse(*screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListScreens(w http.ResponseWriter, r *http.Request) {
	screens, err := app.screenRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ScreenListResponse{
		Screens: make([]api.ScreenResponse, len(screens)),
	}

	for i, screen := range screens {
		resp.Screens[i] = toScreenResponse(screen)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreen(w http.ResponseWriter, r *http.Request) {
	screenID, err := app.readIntParam(r, "screenId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.screenRepo.Delete(r.Context(), screenID)
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

func toScreenResponse(screen domain.Screen) api.ScreenResponse {
	resp := api.ScreenResponse{
		Id:           screen.ID,
		ScreenNumber: screen.ScreenNumber,
		TotalSeat:    screen.TotalSeat,
		SeatTypes:    make([]api.SeatTypeInfo, len(screen.SeatTypes)),
	}

	for i, seatType := range screen.SeatTypes {
		resp.SeatTypes[i] = api.SeatTypeInfo{
			Id:       seatType.ID,
			SeatType: string(seatType.SeatType),
		}
	}

	return resp
}
