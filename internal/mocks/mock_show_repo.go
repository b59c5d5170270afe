package mocks

import (
	"context"

	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockShowRepo struct {
	mock.Mock
	domain.ShowRepository
}

func (m *MockShowRepo) Create(
	ctx context.Context,
	show *domain.ShowDetail,
	prices []domain.NewShowPrice) error {

	args := m.Called(ctx, show, prices)
	return args.Error(0)
}

func (m *MockShowRepo) GetAll(ctx context.Context) ([]domain.ShowDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowDetail), args.Error(1)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.ShowDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShowDetail), args.Error(1)
}

func (m *MockShowRepo) Update(
	ctx context.Context,
	id int,
	update domain.ShowUpdate) (*domain.ShowDetail, error) {

	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShowDetail), args.Error(1)
}

func (m *MockShowRepo) UpdatePrice(
	ctx context.Context,
	showID, priceID int,
	price float64) (*domain.ShowSeatPrice, error) {

	args := m.Called(ctx, showID, priceID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShowSeatPrice), args.Error(1)
}

func (m *MockShowRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
