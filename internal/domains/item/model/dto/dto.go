package dto

import (
	bookingDto "lend/internal/domains/booking/model/dto"
	"lend/internal/domains/item/model"
	"lend/shared/timezone"
)

type AddItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available"   validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

func (r *AddItemRequest) ToModel(ownerID int64) model.Item {
	return model.Item{
		OwnerID:     ownerID,
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

// UpdateItemRequest carries a partial update; nil fields keep their current
// value.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Available = model.Available
	r.RequestID = model.RequestID
}

func FromModels(models []model.Item) []ItemResponse {
	responses := make([]ItemResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

// ItemDetailResponse is the item view with its comments and, for the owner,
// the closest approved bookings around now.
type ItemDetailResponse struct {
	ItemResponse
	Last     *bookingDto.BookingSlim `json:"lastBooking"`
	Next     *bookingDto.BookingSlim `json:"nextBooking"`
	Comments []CommentResponse       `json:"comments"`
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.Text = model.Text
	r.AuthorName = model.AuthorName
	r.Created = timezone.Format(model.CreatedAt, bookingDto.TimeLayout)
}

func CommentsFromModels(models []model.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
