package repository

import (
	"context"

	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// GetSeatMapByShow returns every seat of the show's screen with its seat
// type and that type's price for the show. Availability is filled in by the
// caller; all seats start out available.
func (p *PostgresSeatRepository) GetSeatMapByShow(
	ctx context.Context,
	showID int) (*domain.ShowSeatMap, error) {

	query := `
		SELECT
			s.id AS screen_id,
			s.screen_number,
			m.title,
			se.id AS seat_id,
			se.seat_number,
			se.seat_row,
			se.seat_col,
			st.seat_type,
			COALESCE(sp.price, 0)
		FROM show_details sd
		JOIN screens s ON sd.screen_id = s.id
		JOIN movies m ON sd.movie_id = m.id
		JOIN seats se ON se.screen_id = s.id
		JOIN screen_seat_types st ON se.seat_type_id = st.id
		LEFT JOIN show_seat_prices sp ON sp.show_detail_id = sd.id AND sp.seat_type_id = st.id
		WHERE sd.id = $1
		ORDER BY se.seat_row, se.seat_col
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatMap := domain.ShowSeatMap{ShowID: showID}

	for rows.Next() {
		var seat domain.SeatAvailability

		err = rows.Scan(
			&seatMap.ScreenID,
			&seatMap.ScreenNumber,
			&seatMap.MovieTitle,
			&seat.ID,
			&seat.SeatNumber,
			&seat.Row,
			&seat.Col,
			&seat.SeatType,
			&seat.Price,
		)
		if err != nil {
			return nil, err
		}

		seat.Available = true
		seatMap.Seats = append(seatMap.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(seatMap.Seats) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return &seatMap, nil
}
