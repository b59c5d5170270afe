package mocks

import (
	"context"

	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockScreenRepo struct {
	mock.Mock
	domain.ScreenRepository
}

func (m *MockScreenRepo) CreateWithSeats(
	ctx context.Context,
	screenNumber int,
	blocks []domain.SeatBlock) (*domain.Screen, error) {

	args := m.Called(ctx, screenNumber, blocks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) GetAll(ctx context.Context) ([]domain.Screen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) GetById(ctx context.Context, id int) (*domain.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
