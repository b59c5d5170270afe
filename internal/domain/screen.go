package domain

import (
	"context"
	"fmt"
)

type SeatType string

const (
	SeatTypePlatinum SeatType = "PLATINUM"
	SeatTypeGold     SeatType = "GOLD"
	SeatTypeSilver   SeatType = "SILVER"
	SeatTypeUnknown  SeatType = "UNKNOWN"
)

func (t SeatType) Valid() bool {
	switch t {
	case SeatTypePlatinum, SeatTypeGold, SeatTypeSilver, SeatTypeUnknown:
		return true
	}

	return false
}

type Screen struct {
	ID           int
	ScreenNumber int
	TotalSeat    int
	SeatTypes    []SeatTypeClass
}

// SeatTypeClass is one pricing tier of a screen, covering a contiguous
// block of rows.
type SeatTypeClass struct {
	ID       int
	ScreenID int
	SeatType SeatType
}

type Seat struct {
	ID         int
	SeatTypeID int
	ScreenID   int
	SeatNumber string
	Row        int
	Col        int
}

// SeatBlock is the builder input for one seat-type block of a new screen.
type SeatBlock struct {
	SeatType SeatType
	Rows     int
	Columns  int
	Order    int
}

// OrderSeatBlocks arranges blocks by their 1-based Order field. The orders
// must form a dense permutation of 1..len(blocks); gaps or duplicates would
// otherwise drop blocks silently during layout.
func OrderSeatBlocks(blocks []SeatBlock) ([]SeatBlock, error) {
	ordered := make([]SeatBlock, len(blocks))
	seen := make([]bool, len(blocks))

	for _, block := range blocks {
		if block.Order < 1 || block.Order > len(blocks) {
			return nil, fmt.Errorf("%w: order %d out of range 1..%d", ErrInvalidBlockOrder, block.Order, len(blocks))
		}
		if seen[block.Order-1] {
			return nil, fmt.Errorf("%w: duplicate order %d", ErrInvalidBlockOrder, block.Order)
		}

		seen[block.Order-1] = true
		ordered[block.Order-1] = block
	}

	return ordered, nil
}

// TotalSeats returns the seat count a screen built from blocks will have.
func TotalSeats(blocks []SeatBlock) int {
	total := 0
	for _, block := range blocks {
		total += block.Rows * block.Columns
	}

	return total
}

type ScreenRepository interface {
	CreateWithSeats(ctx context.Context, screenNumber int, blocks []SeatBlock) (*Screen, error)
	GetAll(ctx context.Context) ([]Screen, error)
	GetById(ctx context.Context, id int) (*Screen, error)
	Delete(ctx context.Context, id int) error
}
