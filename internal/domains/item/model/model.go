package model

import "lend/shared/model"

const (
	TableName  = "items"
	EntityName = "item"

	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldAvailable   = "available"
	FieldRequestID   = "request_id"
)

type Item struct {
	ID          int64  `db:"id"`
	OwnerID     int64  `db:"owner_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Available   bool   `db:"available"`
	RequestID   *int64 `db:"request_id"`
	model.Metadata
}
