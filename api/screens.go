package api

type SeatBlockRequest struct {
	SeatType string `json:"seatType" validate:"required,seat_type"`
	Rows     int    `json:"rows" validate:"required,min=1"`
	Columns  int    `json:"columns" validate:"required,min=1"`
	Order    int    `json:"order" validate:"required,min=1"`
}

type CreateScreenRequest struct {
	ScreenNumber int                `json:"screenNumber" validate:"required,min=1"`
	SeatTypes    []SeatBlockRequest `json:"seatTypes" validate:"required,min=1,dive"`
}

type SeatTypeInfo struct {
	Id       int    `json:"id"`
	SeatType string `json:"seatType"`
}

type ScreenResponse struct {
	Id           int            `json:"id"`
	ScreenNumber int            `json:"screenNumber"`
	TotalSeat    int            `json:"totalSeat"`
	SeatTypes    []SeatTypeInfo `json:"seatTypes"`
}

type ScreenListResponse struct {
	Screens []ScreenResponse `json:"screens"`
}
