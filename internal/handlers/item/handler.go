package item

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lend/infras/otel"
	"lend/internal/domains/item/model/dto"
	"lend/internal/domains/item/service"
	"lend/shared/constant"
	"lend/shared/failure"
	"lend/shared/validator"
	"lend/transport/http/middleware"
	"lend/transport/http/response"
)

type Handler struct {
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Use(middleware.Sharer)
		routerGroup.Post("/", handler.AddItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/search", handler.SearchItems)
		routerGroup.Get("/{id}", handler.GetItem)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Post("/{id}/comment", handler.AddComment)
	})
}

// AddItem lists a new item owned by the calling user.
func (handler *Handler) AddItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	req := dto.AddItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Add(ctx, middleware.UserID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateItem applies a partial edit; only the owner may edit.
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	itemID, err := pathID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, middleware.UserID(ctx), itemID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetItem returns one item with its comments; the owner also sees the
// booking schedule.
func (handler *Handler) GetItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItem")
	defer scope.End()

	itemID, err := pathID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, middleware.UserID(ctx), itemID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetItems pages through the calling user's items.
func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	offset, limit := pageParams(request)

	res, err := handler.service.ListForOwner(ctx, middleware.UserID(ctx), offset, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SearchItems finds available items matching the text.
func (handler *Handler) SearchItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchItems")
	defer scope.End()

	offset, limit := pageParams(request)
	text := request.URL.Query().Get(constant.RequestParamText)

	res, err := handler.service.Search(ctx, text, offset, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddComment posts a review by a user who finished a booking of the item.
func (handler *Handler) AddComment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddComment")
	defer scope.End()

	itemID, err := pathID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.AddCommentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AddComment(ctx, middleware.UserID(ctx), itemID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add comment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func pathID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid item id") //nolint:wrapcheck
	}

	return id, nil
}

func pageParams(request *http.Request) (offset, limit int) {
	query := request.URL.Query()

	offset = 0
	if from := query.Get(constant.RequestParamFrom); from != "" {
		if fromInt, err := strconv.Atoi(from); err == nil {
			offset = fromInt
		}
	}

	limit = constant.DefaultValueLimit
	if size := query.Get(constant.RequestParamSize); size != "" {
		if sizeInt, err := strconv.Atoi(size); err == nil {
			limit = sizeInt
		}
	}

	return offset, limit
}
