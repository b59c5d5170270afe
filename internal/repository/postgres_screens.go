package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresScreenRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreenRepository(db *pgxpool.Pool) *PostgresScreenRepository {
	return &PostgresScreenRepository{
		db: db,
	}
}

// CreateWithSeats builds a screen and its full seat grid in one transaction.
// Blocks are laid out by their order field: block N's rows follow block N-1's,
// columns run 1..C within each row. A failure at any point commits nothing.
func (p *PostgresScreenRepository) CreateWithSeats(
	ctx context.Context,
	screenNumber int,
	blocks []domain.SeatBlock) (*domain.Screen, error) {

	ordered, err := domain.OrderSeatBlocks(blocks)
	if err != nil {
		return nil, err
	}

	var screen domain.Screen

	err = runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO screens (screen_number) VALUES ($1) RETURNING id`

		err := tx.QueryRow(ctx, query, screenNumber).Scan(&screen.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrScreenNumberTaken
			}

			return err
		}

		screen.ScreenNumber = screenNumber

		seatRows := make([][]any, 0, domain.TotalSeats(ordered))
		rowOffset := 0

		for _, block := range ordered {
			if !block.SeatType.Valid() {
				return fmt.Errorf("%w: %s", domain.ErrUnknownSeatType, block.SeatType)
			}

			var seatTypeID int

			query = `INSERT INTO screen_seat_types (screen_id, seat_type) VALUES ($1, $2) RETURNING id`

			err = tx.QueryRow(ctx, query, screen.ID, block.SeatType).Scan(&seatTypeID)
			if err != nil {
				return err
			}

			screen.SeatTypes = append(screen.SeatTypes, domain.SeatTypeClass{
				ID:       seatTypeID,
				ScreenID: screen.ID,
				SeatType: block.SeatType,
			})

			for r := 1; r <= block.Rows; r++ {
				row := rowOffset + r
				for col := 1; col <= block.Columns; col++ {
					seatRows = append(seatRows, []any{
						seatTypeID,
						screen.ID,
						fmt.Sprintf("%d-%d", row, col),
						row,
						col,
					})
				}
			}

			rowOffset += block.Rows
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seats"},
			[]string{"seat_type_id", "screen_id", "seat_number", "seat_row", "seat_col"},
			pgx.CopyFromRows(seatRows),
		)
		if err != nil {
			return err
		}

		screen.TotalSeat = len(seatRows)

		query = `UPDATE screens SET total_seat = $1 WHERE id = $2`

		_, err = tx.Exec(ctx, query, screen.TotalSeat, screen.ID)
		return err
	})

	if err != nil {
		return nil, err
	}

	return &screen, nil
}

func (p *PostgresScreenRepository) GetAll(ctx context.Context) ([]domain.Screen, error) {
	query := `
		SELECT s.id, s.screen_number, COALESCE(s.total_seat, 0), st.id, st.seat_type
		FROM screens s
		LEFT JOIN screen_seat_types st ON st.screen_id = s.id
		ORDER BY s.id, st.id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screens := make([]domain.Screen, 0)

	for rows.Next() {
		var (
			screen     domain.Screen
			seatTypeID *int
			seatType   *domain.SeatType
		)

		err = rows.Scan(&screen.ID, &screen.ScreenNumber, &screen.TotalSeat, &seatTypeID, &seatType)
		if err != nil {
			return nil, err
		}

		if len(screens) == 0 || screens[len(screens)-1].ID != screen.ID {
			screens = append(screens, screen)
		}

		if seatTypeID != nil {
			last := &screens[len(screens)-1]
			last.SeatTypes = append(last.SeatTypes, domain.SeatTypeClass{
				ID:       *seatTypeID,
				ScreenID: screen.ID,
				SeatType: *seatType,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screens, nil
}

func (p *PostgresScreenRepository) GetById(ctx context.Context, id int) (*domain.Screen, error) {
	query := `SELECT id, screen_number, COALESCE(total_seat, 0) FROM screens WHERE id = $1`

	var screen domain.Screen

	err := p.db.QueryRow(ctx, query, id).Scan(&screen.ID, &screen.ScreenNumber, &screen.TotalSeat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = `SELECT id, seat_type FROM screen_seat_types WHERE screen_id = $1 ORDER BY id`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		seatType := domain.SeatTypeClass{ScreenID: id}

		err = rows.Scan(&seatType.ID, &seatType.SeatType)
		if err != nil {
			return nil, err
		}

		screen.SeatTypes = append(screen.SeatTypes, seatType)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &screen, nil
}

func (p *PostgresScreenRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM screens WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
