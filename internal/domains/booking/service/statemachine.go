package service

import (
	"lend/internal/domains/booking/model"
	"lend/shared/failure"
)

// accessPolicy names who may act on a booking.
type accessPolicy int

const (
	// policyOwnerOnly admits only the owner of the booked item; it guards
	// status transitions.
	policyOwnerOnly accessPolicy = iota

	// policyRequesterOrOwner admits either party to a booking; it guards
	// reads.
	policyRequesterOrOwner
)

// authorize checks the acting user against a policy. Denials surface as not
// found so the booking's existence is not confirmed to outsiders.
func authorize(policy accessPolicy, actingUserID int64, booking model.Booking) error {
	switch policy {
	case policyOwnerOnly:
		if booking.OwnerID != actingUserID {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}
	case policyRequesterOrOwner:
		if booking.RequesterID != actingUserID && booking.OwnerID != actingUserID {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}
	}

	return nil
}

// transition applies the approval decision to a booking and returns the next
// status. WAITING is the only state that admits a transition; APPROVED and
// REJECTED are terminal.
func transition(actingUserID int64, booking model.Booking, approve bool) (string, error) {
	if booking.ID == 0 {
		return "", failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err := authorize(policyOwnerOnly, actingUserID, booking); err != nil {
		return "", err
	}

	if booking.Status != model.StatusWaiting {
		return "", failure.BadRequestFromString("booking is not waiting for approval") //nolint:wrapcheck
	}

	if approve {
		return model.StatusApproved, nil
	}

	return model.StatusRejected, nil
}
