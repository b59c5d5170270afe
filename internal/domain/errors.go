package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrEditConflict      = errors.New("edit conflict")
	ErrScreenNumberTaken = errors.New("a screen with this number already exists")
	ErrInvalidBlockOrder = errors.New("seat block orders must form a dense 1..N sequence")
	ErrUnknownSeatType   = errors.New("unknown seat type")
	ErrShowOverlap       = errors.New("another show is ongoing in the same time on the same screen")
	ErrSeatAlreadyBooked = errors.New("seat is already booked")
	ErrUnknownSeat       = errors.New("one or more seats do not exist")
	ErrShowDateRequired  = errors.New("show date is required")
	ErrShowDateInvalid   = errors.New("show date is invalid")
	ErrNoSeatsAvailable  = errors.New("no seats available")
	ErrShowUnavailable   = errors.New("no show available")
)
