package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/cinetix/theater-booking-api/internal/app"
	"github.com/cinetix/theater-booking-api/internal/mailer"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mockMailer := mailer.NewMockMailer()

	application, err := app.New(cfg, logger, app.WithMailer(mockMailer))
	if err != nil {
		return nil, err
	}

	// A second pool for direct state checks from the tests themselves.
	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}
