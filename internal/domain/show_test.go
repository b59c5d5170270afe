package domain

import (
	"testing"
	"time"
)

func TestOccurrenceDates(t *testing.T) {
	start := time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	dates := OccurrenceDates(start, end)

	if len(dates) != 31 {
		t.Fatalf("len(dates) = %d, want 31", len(dates))
	}

	if !dates[0].Equal(start) {
		t.Errorf("first date = %v, want %v", dates[0], start)
	}
	if !dates[len(dates)-1].Equal(end) {
		t.Errorf("last date = %v, want %v", dates[len(dates)-1], end)
	}
}

func TestOccurrenceDatesSingleNight(t *testing.T) {
	start := time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	dates := OccurrenceDates(start, end)

	if len(dates) != 2 {
		t.Fatalf("len(dates) = %d, want 2", len(dates))
	}
}

func TestTimeOfDay(t *testing.T) {
	got := TimeOfDay(9, 30)

	if !got.Valid {
		t.Fatal("TimeOfDay() not valid")
	}

	want := int64(9*3600+30*60) * 1e6
	if got.Microseconds != want {
		t.Errorf("Microseconds = %d, want %d", got.Microseconds, want)
	}
}
