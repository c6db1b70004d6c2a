package dto

import "lend/internal/domains/booking/model"

// BookingSlim is the reduced shape embedded in item views.
type BookingSlim struct {
	ID          int64 `json:"id"`
	RequesterID int64 `json:"bookerId"`
}

// ItemSchedule carries an item's closest approved bookings around the query
// instant. Either side is nil when no approved booking falls on it.
type ItemSchedule struct {
	Last *BookingSlim `json:"lastBooking"`
	Next *BookingSlim `json:"nextBooking"`
}

func SlimFromModel(booking *model.Booking) *BookingSlim {
	if booking == nil {
		return nil
	}

	return &BookingSlim{
		ID:          booking.ID,
		RequesterID: booking.RequesterID,
	}
}
