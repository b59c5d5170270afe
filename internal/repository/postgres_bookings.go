package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Book runs the whole booking algorithm in one transaction. The occurrence
// row is locked with FOR UPDATE first, so every booking attempt for the same
// occurrence serializes behind that lock: the already-booked seat set and the
// capacity counter cannot change between the checks and the writes. Any
// failure rolls the whole transaction back.
func (p *PostgresBookingRepository) Book(
	ctx context.Context,
	req domain.BookingRequest) (*domain.Booking, error) {

	booking := domain.Booking{
		UserID:       req.UserID,
		OccurrenceID: req.OccurrenceID,
	}

	// A seat listed twice is one seat; collapse duplicates before the
	// resolved-seat count check, which would otherwise mistake them for
	// unknown seats.
	seatIDs := dedupeSeatIDs(req.SeatIDs)

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `SELECT id, show_detail_id, show_date, available_seats
			FROM booked_show_details
			WHERE id = $1
			FOR UPDATE`

		var occurrence domain.ShowOccurrence

		err := tx.QueryRow(ctx, query, req.OccurrenceID).Scan(
			&occurrence.ID,
			&occurrence.ShowID,
			&occurrence.ShowDate,
			&occurrence.AvailableSeats,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		booking.ShowID = occurrence.ShowID
		booking.ShowDate = occurrence.ShowDate

		query = `SELECT sd.start_date, sd.end_date, m.title, s.screen_number
			FROM show_details sd
			JOIN movies m ON m.id = sd.movie_id
			JOIN screens s ON s.id = sd.screen_id
			WHERE sd.id = $1`

		var startDate, endDate time.Time

		err = tx.QueryRow(ctx, query, occurrence.ShowID).Scan(
			&startDate,
			&endDate,
			&booking.MovieTitle,
			&booking.ScreenNumber,
		)
		if err != nil {
			return err
		}

		seats, err := resolveSeats(ctx, tx, seatIDs)
		if err != nil {
			return err
		}

		if len(seats) != len(seatIDs) {
			return domain.ErrUnknownSeat
		}

		bookedSeatIds, err := bookedSeatIdsForOccurrence(ctx, tx, occurrence.ID, occurrence.ShowID)
		if err != nil {
			return err
		}

		for _, id := range seatIDs {
			if bookedSeatIds[id] {
				return domain.ErrSeatAlreadyBooked
			}
		}

		// show_date is required at creation, so this is normally unreachable.
		if occurrence.ShowDate.IsZero() {
			return domain.ErrShowDateRequired
		}

		if occurrence.ShowDate.Before(startDate) || occurrence.ShowDate.After(endDate) {
			return domain.ErrShowDateInvalid
		}

		if len(seatIDs) > occurrence.AvailableSeats {
			return domain.ErrNoSeatsAvailable
		}

		query = `SELECT EXISTS (
			SELECT 1 FROM booked_show_details WHERE show_detail_id = $1 AND show_date = $2
		)`

		var showAvailable bool

		err = tx.QueryRow(ctx, query, occurrence.ShowID, occurrence.ShowDate).Scan(&showAvailable)
		if err != nil {
			return err
		}

		if !showAvailable {
			return domain.ErrShowUnavailable
		}

		query = `UPDATE booked_show_details SET available_seats = available_seats - $1 WHERE id = $2`

		_, err = tx.Exec(ctx, query, len(seatIDs), occurrence.ID)
		if err != nil {
			return err
		}

		query = `INSERT INTO bookings (user_id, show_detail_id, booked_show_detail_id)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`

		err = tx.QueryRow(ctx, query,
			req.UserID,
			occurrence.ShowID,
			occurrence.ID).Scan(&booking.ID, &booking.CreatedAt)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(seats))
		for _, seat := range seats {
			rows = append(rows, []any{booking.ID, seat.ID})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "seat_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}

		booking.Seats = seats

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func dedupeSeatIDs(seatIDs []int) []int {
	seen := make(map[int]bool, len(seatIDs))
	deduped := make([]int, 0, len(seatIDs))

	for _, id := range seatIDs {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}

	return deduped
}

func resolveSeats(ctx context.Context, tx pgx.Tx, seatIDs []int) ([]domain.Seat, error) {
	query := `SELECT id, seat_type_id, screen_id, seat_number, seat_row, seat_col
		FROM seats
		WHERE id = ANY($1)
		ORDER BY seat_row, seat_col`

	rows, err := tx.Query(ctx, query, seatIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0, len(seatIDs))

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(&seat.ID, &seat.SeatTypeID, &seat.ScreenID, &seat.SeatNumber, &seat.Row, &seat.Col)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func bookedSeatIdsForOccurrence(
	ctx context.Context,
	tx pgx.Tx,
	occurrenceID, showID int) (map[int]bool, error) {

	query := `SELECT DISTINCT bs.seat_id
		FROM booking_seats bs
		JOIN bookings b ON b.id = bs.booking_id
		WHERE b.booked_show_detail_id = $1 AND b.show_detail_id = $2`

	rows, err := tx.Query(ctx, query, occurrenceID, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make(map[int]bool)

	for rows.Next() {
		var seatID int

		if err = rows.Scan(&seatID); err != nil {
			return nil, err
		}

		booked[seatID] = true
	}

	return booked, rows.Err()
}

// GetSeatIdsByShowId returns every seat referenced by any booking of the
// show, across all occurrence dates.
func (p *PostgresBookingRepository) GetSeatIdsByShowId(ctx context.Context, showID int) ([]int, error) {
	query := `SELECT DISTINCT bs.seat_id
		FROM booking_seats bs
		JOIN bookings b ON b.id = bs.booking_id
		WHERE b.show_detail_id = $1`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatIds := make([]int, 0)

	for rows.Next() {
		var seatID int

		if err = rows.Scan(&seatID); err != nil {
			return nil, err
		}

		seatIds = append(seatIds, seatID)
	}

	return seatIds, rows.Err()
}

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			count(*) OVER(),
			b.id,
			m.title,
			s.screen_number,
			bsd.show_date,
			sd.start_time,
			array_agg(st.seat_number ORDER BY st.seat_row, st.seat_col),
			b.created_at
		FROM bookings b
		JOIN show_details sd ON b.show_detail_id = sd.id
		JOIN movies m ON sd.movie_id = m.id
		JOIN screens s ON sd.screen_id = s.id
		JOIN booked_show_details bsd ON b.booked_show_detail_id = bsd.id
		JOIN booking_seats bs ON bs.booking_id = b.id
		JOIN seats st ON st.id = bs.seat_id
		WHERE b.user_id = $1
		GROUP BY b.id, m.title, s.screen_number, bsd.show_date, sd.start_time, b.created_at
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var summary domain.BookingSummary

		err = rows.Scan(
			&totalRecords,
			&summary.BookingID,
			&summary.MovieTitle,
			&summary.ScreenNumber,
			&summary.ShowDate,
			&summary.StartTime,
			&summary.SeatNumbers,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return summaries, metadata, nil
}
