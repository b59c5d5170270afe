package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

// Create inserts the show, its per-seat-type prices, and one occurrence row
// per calendar day of the show's date range, all in one transaction.
// available_seats is snapshotted from the screen's capacity on both the show
// and every occurrence row.
//
// The overlap check rejects a candidate only when an existing show on the
// same screen has all four of its bounds inside the candidate's windows
// (mutually nested ranges). Partial overlaps pass; occurrence rows are never
// regenerated after creation.
func (p *PostgresShowRepository) Create(
	ctx context.Context,
	show *domain.ShowDetail,
	prices []domain.NewShowPrice) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `SELECT screen_number, COALESCE(total_seat, 0) FROM screens WHERE id = $1`

		err := tx.QueryRow(ctx, query, show.ScreenID).Scan(&show.ScreenNumber, &show.AvailableSeats)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query = `
			SELECT EXISTS (
				SELECT 1 FROM show_details
				WHERE screen_id = $1
					AND start_time BETWEEN $2 AND $3
					AND end_time BETWEEN $2 AND $3
					AND start_date BETWEEN $4 AND $5
					AND end_date BETWEEN $4 AND $5
			)
		`

		var overlaps bool

		err = tx.QueryRow(ctx, query,
			show.ScreenID,
			show.StartTime, show.EndTime,
			show.StartDate, show.EndDate).Scan(&overlaps)
		if err != nil {
			return err
		}

		if overlaps {
			return domain.ErrShowOverlap
		}

		seatTypeIDs := make([]int, 0, len(prices))
		for _, price := range prices {
			seatTypeIDs = append(seatTypeIDs, price.SeatTypeID)
		}

		var known int

		query = `SELECT count(*) FROM screen_seat_types WHERE id = ANY($1) AND screen_id = $2`

		err = tx.QueryRow(ctx, query, seatTypeIDs, show.ScreenID).Scan(&known)
		if err != nil {
			return err
		}

		if known != len(prices) {
			return fmt.Errorf("%w: price list references seat types not on screen %d",
				domain.ErrUnknownSeatType, show.ScreenID)
		}

		query = `INSERT INTO show_details (movie_id, screen_id, start_time, end_time, start_date, end_date, available_seats)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, (SELECT title FROM movies WHERE id = $1)`

		err = tx.QueryRow(ctx, query,
			show.MovieID,
			show.ScreenID,
			show.StartTime,
			show.EndTime,
			show.StartDate,
			show.EndDate,
			show.AvailableSeats).Scan(&show.ID, &show.MovieTitle)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query = `INSERT INTO show_seat_prices (show_detail_id, seat_type_id, price)
			VALUES ($1, $2, $3)
			RETURNING id, (SELECT seat_type FROM screen_seat_types WHERE id = $2)`

		for _, price := range prices {
			row := domain.ShowSeatPrice{
				ShowID:     show.ID,
				SeatTypeID: price.SeatTypeID,
				Price:      price.Price,
			}

			err = tx.QueryRow(ctx, query, show.ID, price.SeatTypeID, price.Price).Scan(&row.ID, &row.SeatType)
			if err != nil {
				return err
			}

			show.Prices = append(show.Prices, row)
		}

		ledgerRows := make([][]any, 0)
		for _, date := range domain.OccurrenceDates(show.StartDate, show.EndDate) {
			ledgerRows = append(ledgerRows, []any{show.ID, date, show.AvailableSeats})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booked_show_details"},
			[]string{"show_detail_id", "show_date", "available_seats"},
			pgx.CopyFromRows(ledgerRows),
		)
		if err != nil {
			return err
		}

		show.Occurrences, err = retrieveOccurrences(ctx, tx, show.ID)
		return err
	})
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func retrieveOccurrences(ctx context.Context, q queryer, showID int) ([]domain.ShowOccurrence, error) {
	query := `SELECT id, show_detail_id, show_date, available_seats
		FROM booked_show_details
		WHERE show_detail_id = $1
		ORDER BY show_date`

	rows, err := q.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occurrences := make([]domain.ShowOccurrence, 0)

	for rows.Next() {
		var occurrence domain.ShowOccurrence

		err = rows.Scan(
			&occurrence.ID,
			&occurrence.ShowID,
			&occurrence.ShowDate,
			&occurrence.AvailableSeats,
		)
		if err != nil {
			return nil, err
		}

		occurrences = append(occurrences, occurrence)
	}

	return occurrences, rows.Err()
}

func retrievePrices(ctx context.Context, q queryer, showID int) ([]domain.ShowSeatPrice, error) {
	query := `SELECT sp.id, sp.show_detail_id, sp.seat_type_id, st.seat_type, sp.price
		FROM show_seat_prices sp
		JOIN screen_seat_types st ON st.id = sp.seat_type_id
		WHERE sp.show_detail_id = $1
		ORDER BY sp.id`

	rows, err := q.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]domain.ShowSeatPrice, 0)

	for rows.Next() {
		var price domain.ShowSeatPrice

		err = rows.Scan(&price.ID, &price.ShowID, &price.SeatTypeID, &price.SeatType, &price.Price)
		if err != nil {
			return nil, err
		}

		prices = append(prices, price)
	}

	return prices, rows.Err()
}

const showBaseQuery = `
	SELECT sd.id, sd.movie_id, m.title, sd.screen_id, s.screen_number,
		sd.start_time, sd.end_time, sd.start_date, sd.end_date, sd.available_seats
	FROM show_details sd
	JOIN movies m ON sd.movie_id = m.id
	JOIN screens s ON sd.screen_id = s.id
`

func scanShow(row pgx.Row, show *domain.ShowDetail) error {
	return row.Scan(
		&show.ID,
		&show.MovieID,
		&show.MovieTitle,
		&show.ScreenID,
		&show.ScreenNumber,
		&show.StartTime,
		&show.EndTime,
		&show.StartDate,
		&show.EndDate,
		&show.AvailableSeats,
	)
}

func (p *PostgresShowRepository) GetAll(ctx context.Context) ([]domain.ShowDetail, error) {
	rows, err := p.db.Query(ctx, showBaseQuery+` ORDER BY sd.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.ShowDetail, 0)

	for rows.Next() {
		var show domain.ShowDetail

		if err = scanShow(rows, &show); err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range shows {
		shows[i].Prices, err = retrievePrices(ctx, p.db, shows[i].ID)
		if err != nil {
			return nil, err
		}

		shows[i].Occurrences, err = retrieveOccurrences(ctx, p.db, shows[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return shows, nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.ShowDetail, error) {
	var show domain.ShowDetail

	err := scanShow(p.db.QueryRow(ctx, showBaseQuery+` WHERE sd.id = $1`, id), &show)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	show.Prices, err = retrievePrices(ctx, p.db, id)
	if err != nil {
		return nil, err
	}

	show.Occurrences, err = retrieveOccurrences(ctx, p.db, id)
	if err != nil {
		return nil, err
	}

	return &show, nil
}

// Update applies a partial update. Overlap validation is not re-run and
// occurrence rows are not regenerated: a date-range change leaves the
// existing ledger rows in place.
func (p *PostgresShowRepository) Update(
	ctx context.Context,
	id int,
	update domain.ShowUpdate) (*domain.ShowDetail, error) {

	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.MovieID != nil {
		set("movie_id", *update.MovieID)
	}
	if update.ScreenID != nil {
		set("screen_id", *update.ScreenID)
	}
	if update.StartTime != nil {
		set("start_time", *update.StartTime)
	}
	if update.EndTime != nil {
		set("end_time", *update.EndTime)
	}
	if update.StartDate != nil {
		set("start_date", *update.StartDate)
	}
	if update.EndDate != nil {
		set("end_date", *update.EndDate)
	}
	if update.AvailableSeats != nil {
		set("available_seats", *update.AvailableSeats)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf(`UPDATE show_details SET %s WHERE id = $%d`,
			strings.Join(sets, ", "), len(args))

		result, err := p.db.Exec(ctx, query, args...)
		if err != nil {
			return nil, err
		}

		if result.RowsAffected() == 0 {
			return nil, domain.ErrRecordNotFound
		}
	}

	return p.GetById(ctx, id)
}

func (p *PostgresShowRepository) UpdatePrice(
	ctx context.Context,
	showID, priceID int,
	price float64) (*domain.ShowSeatPrice, error) {

	query := `
		UPDATE show_seat_prices sp
		SET price = $1
		FROM screen_seat_types st
		WHERE sp.id = $2 AND sp.show_detail_id = $3 AND st.id = sp.seat_type_id
		RETURNING sp.id, sp.show_detail_id, sp.seat_type_id, st.seat_type, sp.price
	`

	var updated domain.ShowSeatPrice

	err := p.db.QueryRow(ctx, query, price, priceID, showID).Scan(
		&updated.ID,
		&updated.ShowID,
		&updated.SeatTypeID,
		&updated.SeatType,
		&updated.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &updated, nil
}

func (p *PostgresShowRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM show_details WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
