package dto

import (
	"net/http"
	"strconv"
	"strings"

	"lend/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page        int    `json:"page"          validate:"omitempty"`
	Offset      int    `json:"offset"        validate:"omitempty"`
	Limit       int    `json:"limit"         validate:"omitempty"`
	SortBy      string `json:"sort_by"       validate:"omitempty"`
	SortDir     string `json:"sort_dir"      validate:"omitempty,oneof=ASC DESC"`
	ThenSortBy  string `json:"then_sort_by"  validate:"omitempty"`
	ThenSortDir string `json:"then_sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. Both page/limit and
// the from/size offset form are recognized; from/size wins when present.
// If `defaultRequest` is true, missing values fall back to the defaults.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if from := queryParams.Get(constant.RequestParamFrom); from != "" {
		if fromInt, err := strconv.Atoi(from); err == nil {
			q.Page = 0
			q.Offset = fromInt
		}
	}

	if size := queryParams.Get(constant.RequestParamSize); size != "" {
		if sizeInt, err := strconv.Atoi(size); err == nil {
			q.Limit = sizeInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 && q.Offset == 0 && q.Limit == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
