package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ShowDetail is a recurring showtime: a time-of-day window repeated every
// calendar day of [StartDate, EndDate] for one movie on one screen.
// AvailableSeats is a snapshot of the screen's capacity taken at creation;
// per-date capacity lives on the ShowOccurrence rows.
type ShowDetail struct {
	ID             int
	MovieID        uuid.UUID
	ScreenID       int
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	StartDate      time.Time
	EndDate        time.Time
	AvailableSeats int

	MovieTitle   string
	ScreenNumber int

	Prices      []ShowSeatPrice
	Occurrences []ShowOccurrence
}

type ShowSeatPrice struct {
	ID         int
	ShowID     int
	SeatTypeID int
	SeatType   SeatType
	Price      float64
}

// ShowOccurrence is the bookable capacity record for one concrete calendar
// date of a show. One row per day in the show's inclusive date range,
// created with the show and never regenerated afterwards.
type ShowOccurrence struct {
	ID             int
	ShowID         int
	ShowDate       time.Time
	AvailableSeats int
}

// NewShowPrice is the creation input for one per-seat-type price row.
type NewShowPrice struct {
	SeatTypeID int
	Price      float64
}

// ShowUpdate carries a partial update; nil fields are left untouched.
type ShowUpdate struct {
	MovieID        *uuid.UUID
	ScreenID       *int
	StartTime      *pgtype.Time
	EndTime        *pgtype.Time
	StartDate      *time.Time
	EndDate        *time.Time
	AvailableSeats *int
}

// TimeOfDay builds a pgtype.Time for a wall-clock hour and minute.
func TimeOfDay(hour, minute int) pgtype.Time {
	return pgtype.Time{
		Microseconds: (int64(hour)*3600 + int64(minute)*60) * 1e6,
		Valid:        true,
	}
}

// OccurrenceDates lists every calendar day of the inclusive [start, end]
// range. Callers must have validated start < end already.
func OccurrenceDates(start, end time.Time) []time.Time {
	days := int(end.Sub(start).Hours()/24) + 1

	dates := make([]time.Time, 0, days)
	for day := 0; day < days; day++ {
		dates = append(dates, start.AddDate(0, 0, day))
	}

	return dates
}

type ShowRepository interface {
	Create(ctx context.Context, show *ShowDetail, prices []NewShowPrice) error
	GetAll(ctx context.Context) ([]ShowDetail, error)
	GetById(ctx context.Context, id int) (*ShowDetail, error)
	Update(ctx context.Context, id int, update ShowUpdate) (*ShowDetail, error)
	UpdatePrice(ctx context.Context, showID, priceID int, price float64) (*ShowSeatPrice, error)
	Delete(ctx context.Context, id int) error
}
