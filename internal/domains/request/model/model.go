package model

import "lend/shared/model"

const (
	TableName  = "requests"
	EntityName = "request"

	FieldID          = "id"
	FieldDescription = "description"
	FieldRequesterID = "requester_id"
)

// ItemRequest is a free-text ask for an item nobody has listed yet. Items
// added in response carry the request id.
type ItemRequest struct {
	ID          int64  `db:"id"`
	Description string `db:"description"`
	RequesterID int64  `db:"requester_id"`
	model.Metadata
}
