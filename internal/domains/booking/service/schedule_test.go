package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lend/internal/domains/booking/model"
)

func approvedAt(id int64, start, end time.Time) model.Booking {
	return model.Booking{
		ID:      id,
		ItemID:  1,
		StartAt: start,
		EndAt:   end,
		Status:  model.StatusApproved,
	}
}

func TestLastBooking(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		bookings []model.Booking
		wantID   int64
	}{
		{
			name:   "no bookings",
			wantID: 0,
		},
		{
			name: "only future bookings",
			bookings: []model.Booking{
				approvedAt(1, now.Add(time.Hour), now.Add(2*time.Hour)),
			},
			wantID: 0,
		},
		{
			name: "greatest start not after now wins",
			bookings: []model.Booking{
				approvedAt(1, now.Add(-3*time.Hour), now.Add(-2*time.Hour)),
				approvedAt(2, now.Add(-time.Hour), now.Add(-30*time.Minute)),
				approvedAt(3, now.Add(time.Hour), now.Add(2*time.Hour)),
			},
			wantID: 2,
		},
		{
			name: "booking starting exactly now is included",
			bookings: []model.Booking{
				approvedAt(1, now.Add(-2*time.Hour), now.Add(-time.Hour)),
				approvedAt(2, now, now.Add(time.Hour)),
			},
			wantID: 2,
		},
		{
			name: "an ongoing booking counts as last",
			bookings: []model.Booking{
				approvedAt(1, now.Add(-time.Hour), now.Add(time.Hour)),
			},
			wantID: 1,
		},
		{
			name: "equal starts resolve to the later end",
			bookings: []model.Booking{
				approvedAt(1, now.Add(-time.Hour), now.Add(-30*time.Minute)),
				approvedAt(2, now.Add(-time.Hour), now.Add(-10*time.Minute)),
			},
			wantID: 2,
		},
		{
			name: "non-approved bookings never appear",
			bookings: []model.Booking{
				{ID: 1, StartAt: now.Add(-time.Hour), EndAt: now.Add(-30 * time.Minute), Status: model.StatusWaiting},
				{ID: 2, StartAt: now.Add(-time.Hour), EndAt: now.Add(-30 * time.Minute), Status: model.StatusRejected},
				approvedAt(3, now.Add(-3*time.Hour), now.Add(-2*time.Hour)),
			},
			wantID: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := lastBooking(tt.bookings, now)

			if tt.wantID == 0 {
				assert.Nil(t, last)

				return
			}

			require.NotNil(t, last)
			assert.Equal(t, tt.wantID, last.ID)
		})
	}
}

func TestNextBooking(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		bookings []model.Booking
		wantID   int64
	}{
		{
			name:   "no bookings",
			wantID: 0,
		},
		{
			name: "only past bookings",
			bookings: []model.Booking{
				approvedAt(1, now.Add(-2*time.Hour), now.Add(-time.Hour)),
			},
			wantID: 0,
		},
		{
			name: "smallest start after now wins",
			bookings: []model.Booking{
				approvedAt(1, now.Add(3*time.Hour), now.Add(4*time.Hour)),
				approvedAt(2, now.Add(time.Hour), now.Add(2*time.Hour)),
			},
			wantID: 2,
		},
		{
			name: "booking starting exactly now is not next",
			bookings: []model.Booking{
				approvedAt(1, now, now.Add(time.Hour)),
				approvedAt(2, now.Add(2*time.Hour), now.Add(3*time.Hour)),
			},
			wantID: 2,
		},
		{
			name: "non-approved bookings never appear",
			bookings: []model.Booking{
				{ID: 1, StartAt: now.Add(time.Hour), EndAt: now.Add(2 * time.Hour), Status: model.StatusWaiting},
				approvedAt(2, now.Add(3*time.Hour), now.Add(4*time.Hour)),
			},
			wantID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := nextBooking(tt.bookings, now)

			if tt.wantID == 0 {
				assert.Nil(t, next)

				return
			}

			require.NotNil(t, next)
			assert.Equal(t, tt.wantID, next.ID)
		})
	}
}

func TestLastAndNextBracketAnOngoingBooking(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	bookings := []model.Booking{
		approvedAt(1, now.Add(-time.Hour), now.Add(time.Hour)),
		approvedAt(2, now.Add(2*time.Hour), now.Add(3*time.Hour)),
	}

	last := lastBooking(bookings, now)
	next := nextBooking(bookings, now)

	require.NotNil(t, last)
	require.NotNil(t, next)
	assert.Equal(t, int64(1), last.ID)
	assert.Equal(t, int64(2), next.ID)
}
