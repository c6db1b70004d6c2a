package service

import (
	"time"

	itemModel "lend/internal/domains/item/model"
	"lend/shared/failure"
)

// validateNew decides whether a proposed booking may be created. It never
// consults the current time: future-dated and already-started windows are
// both admissible, only the ordering of start and end is checked. The
// self-booking denial surfaces as not found so a requester cannot probe who
// owns an item.
func validateNew(requesterID int64, item itemModel.Item, start, end time.Time) error {
	if !item.Available {
		return failure.BadRequestFromString("item is not available for booking") //nolint:wrapcheck
	}

	if requesterID == item.OwnerID {
		return failure.NotFound("item not found") //nolint:wrapcheck
	}

	if !start.Before(end) {
		return failure.BadRequestFromString("booking must end after it starts") //nolint:wrapcheck
	}

	return nil
}
