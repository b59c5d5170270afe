package domain

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Booking is a confirmed purchase of a seat set for one show occurrence.
// Bookings are immutable once created.
type Booking struct {
	ID           int
	UserID       int
	ShowID       int
	OccurrenceID int
	ShowDate     time.Time
	CreatedAt    time.Time
	Seats        []Seat

	MovieTitle   string
	ScreenNumber int
}

// BookingRequest is the input of the booking engine.
type BookingRequest struct {
	UserID       int
	OccurrenceID int
	SeatIDs      []int
}

type BookingSummary struct {
	BookingID    int
	MovieTitle   string
	ScreenNumber int
	ShowDate     time.Time
	StartTime    pgtype.Time
	SeatNumbers  []string
	CreatedAt    time.Time
}

// ShowSeatMap is the showtime-wide seat availability projection: every seat
// of the show's screen, with Available cleared for seats referenced by any
// booking of the show regardless of occurrence date. The per-date capacity
// counter on ShowOccurrence is deliberately not consulted here; the two
// views disagree by construction.
type ShowSeatMap struct {
	ShowID       int
	ScreenID     int
	ScreenNumber int
	MovieTitle   string
	Seats        []SeatAvailability
}

type SeatAvailability struct {
	ID         int
	SeatNumber string
	Row        int
	Col        int
	SeatType   SeatType
	Price      float64
	Available  bool
}

type BookingRepository interface {
	Book(ctx context.Context, req BookingRequest) (*Booking, error)
	GetSeatIdsByShowId(ctx context.Context, showID int) ([]int, error)
	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
}

type SeatRepository interface {
	GetSeatMapByShow(ctx context.Context, showID int) (*ShowSeatMap, error)
}
