package service

import (
	"time"

	"lend/internal/domains/booking/model"
)

// lastBooking picks the approved booking with the greatest start not after
// now, or nil. Two bookings with the same start resolve to the one ending
// later. Bookings that are not APPROVED never appear in an item's schedule.
func lastBooking(bookings []model.Booking, now time.Time) *model.Booking {
	var last *model.Booking

	for i := range bookings {
		booking := &bookings[i]
		if booking.Status != model.StatusApproved || booking.StartAt.After(now) {
			continue
		}

		if last == nil ||
			booking.StartAt.After(last.StartAt) ||
			(booking.StartAt.Equal(last.StartAt) && booking.EndAt.After(last.EndAt)) {
			last = booking
		}
	}

	return last
}

// nextBooking picks the approved booking with the smallest start strictly
// after now, or nil.
func nextBooking(bookings []model.Booking, now time.Time) *model.Booking {
	var next *model.Booking

	for i := range bookings {
		booking := &bookings[i]
		if booking.Status != model.StatusApproved || !booking.StartAt.After(now) {
			continue
		}

		if next == nil || booking.StartAt.Before(next.StartAt) {
			next = booking
		}
	}

	return next
}
