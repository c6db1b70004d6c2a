package dto

import (
	"time"

	"lend/internal/domains/booking/model"
	"lend/shared/timezone"
)

// TimeLayout is the wire format for booking windows.
const TimeLayout = "2006-01-02T15:04:05"

type AddBookingRequest struct {
	ItemID int64  `json:"itemId" validate:"required"`
	Start  string `json:"start"  validate:"required"`
	End    string `json:"end"    validate:"required"`
}

func (r *AddBookingRequest) Window() (start, end time.Time, err error) {
	start, err = timezone.Parse(TimeLayout, r.Start)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(TimeLayout, r.End)

	return start, end, err
}

type BookingResponse struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"itemId"`
	RequesterID int64  `json:"bookerId"`
	OwnerID     int64  `json:"ownerId"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Status      string `json:"status"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ItemID = model.ItemID
	r.RequesterID = model.RequesterID
	r.OwnerID = model.OwnerID
	r.Start = timezone.Format(model.StartAt, TimeLayout)
	r.End = timezone.Format(model.EndAt, TimeLayout)
	r.Status = model.Status
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
