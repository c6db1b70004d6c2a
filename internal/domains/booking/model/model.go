package model

import (
	"time"

	"lend/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	ItemsTableName = "items"

	FieldID          = "id"
	FieldItemID      = "item_id"
	FieldRequesterID = "requester_id"
	FieldOwnerID     = "owner_id"
	FieldStartAt     = "start_at"
	FieldEndAt       = "end_at"
	FieldStatus      = "status"
)

// Booking statuses. A booking starts as WAITING and moves exactly once to
// APPROVED or REJECTED; both are terminal.
const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Booking struct {
	ID          int64     `db:"id"`
	ItemID      int64     `db:"item_id"`
	RequesterID int64     `db:"requester_id"`
	OwnerID     int64     `db:"owner_id" table:"items"`
	StartAt     time.Time `db:"start_at"`
	EndAt       time.Time `db:"end_at"`
	Status      string    `db:"status"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN items ON items.id = bookings.item_id"
}
