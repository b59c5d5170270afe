package api

import "github.com/oapi-codegen/runtime/types"

type CreateBookingRequest struct {
	SeatIdList []int `json:"seatIdList" validate:"required,min=1,dive,min=1"`
}

type BookedSeat struct {
	Id         int    `json:"id"`
	SeatNumber string `json:"seatNumber"`
	Row        int    `json:"row"`
	Column     int    `json:"column"`
}

type BookingResponse struct {
	Id           int          `json:"id"`
	ShowId       int          `json:"showId"`
	OccurrenceId int          `json:"occurrenceId"`
	ShowDate     types.Date   `json:"showDate"`
	Seats        []BookedSeat `json:"seats"`
}

type BookingSummary struct {
	Id           int        `json:"id"`
	MovieTitle   string     `json:"movieTitle"`
	ScreenNumber int        `json:"screenNumber"`
	ShowDate     types.Date `json:"showDate"`
	StartTime    string     `json:"startTime"`
	SeatNumbers  []string   `json:"seatNumbers"`
	CreatedAt    string     `json:"createdAt"`
}

type UserBookingsResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}

type GetUserBookingsParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}
