package dto

import (
	bookingDto "lend/internal/domains/booking/model/dto"
	itemDto "lend/internal/domains/item/model/dto"
	"lend/internal/domains/request/model"
	"lend/shared/timezone"
)

type CreateRequestRequest struct {
	Description string `json:"description" validate:"required"`
}

type RequestResponse struct {
	ID          int64                  `json:"id"`
	Description string                 `json:"description"`
	Created     string                 `json:"created"`
	Items       []itemDto.ItemResponse `json:"items"`
}

func (r *RequestResponse) FromModel(model model.ItemRequest) {
	r.ID = model.ID
	r.Description = model.Description
	r.Created = timezone.Format(model.CreatedAt, bookingDto.TimeLayout)
	r.Items = []itemDto.ItemResponse{}
}

func FromModels(models []model.ItemRequest) []RequestResponse {
	responses := make([]RequestResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
