package api

import (
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type ShowPriceRequest struct {
	SeatTypeId int             `json:"seatTypeId" validate:"required,min=1"`
	Price      decimal.Decimal `json:"price"`
}

type CreateShowRequest struct {
	MovieId   uuid.UUID          `json:"movieId" validate:"required"`
	ScreenId  int                `json:"screenId" validate:"required,min=1"`
	StartTime string             `json:"startTime" validate:"required,hhmm"`
	EndTime   string             `json:"endTime" validate:"required,hhmm"`
	StartDate types.Date         `json:"startDate" validate:"required"`
	EndDate   types.Date         `json:"endDate" validate:"required"`
	Prices    []ShowPriceRequest `json:"prices" validate:"required,min=1,dive"`
}

type UpdateShowRequest struct {
	MovieId        *uuid.UUID  `json:"movieId"`
	ScreenId       *int        `json:"screenId" validate:"omitempty,min=1"`
	StartTime      *string     `json:"startTime" validate:"omitempty,hhmm"`
	EndTime        *string     `json:"endTime" validate:"omitempty,hhmm"`
	StartDate      *types.Date `json:"startDate"`
	EndDate        *types.Date `json:"endDate"`
	AvailableSeats *int        `json:"availableSeats" validate:"omitempty,min=0"`
}

type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

type ShowPriceResponse struct {
	Id         int             `json:"id"`
	SeatTypeId int             `json:"seatTypeId"`
	SeatType   string          `json:"seatType"`
	Price      decimal.Decimal `json:"price"`
}

type OccurrenceResponse struct {
	Id             int        `json:"id"`
	ShowDate       types.Date `json:"showDate"`
	AvailableSeats int        `json:"availableSeats"`
}

type ShowResponse struct {
	Id             int                  `json:"id"`
	MovieId        uuid.UUID            `json:"movieId"`
	Title          string               `json:"title"`
	ScreenId       int                  `json:"screenId"`
	ScreenNumber   int                  `json:"screenNumber"`
	StartTime      string               `json:"startTime"`
	EndTime        string               `json:"endTime"`
	StartDate      types.Date           `json:"startDate"`
	EndDate        types.Date           `json:"endDate"`
	AvailableSeats int                  `json:"availableSeats"`
	Prices         []ShowPriceResponse  `json:"prices"`
	Occurrences    []OccurrenceResponse `json:"occurrences,omitempty"`
}

type ShowListResponse struct {
	Shows []ShowResponse `json:"shows"`
}

type UpdatedPriceResponse struct {
	Message string          `json:"message"`
	Price   decimal.Decimal `json:"price"`
}

type SeatType string

const (
	PLATINUM SeatType = "PLATINUM"
	GOLD     SeatType = "GOLD"
	SILVER   SeatType = "SILVER"
	UNKNOWN  SeatType = "UNKNOWN"
)

type Seat struct {
	Id         int             `json:"id"`
	SeatNumber string          `json:"seatNumber"`
	Row        int             `json:"row"`
	Column     int             `json:"column"`
	Type       SeatType        `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Available  bool            `json:"available"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowId       int       `json:"showId"`
	ScreenId     int       `json:"screenId"`
	ScreenNumber int       `json:"screenNumber"`
	MovieTitle   string    `json:"movieTitle"`
	SeatRows     []SeatRow `json:"seatRows"`
}
