package service

import (
	"time"

	"lend/internal/domains/booking/model"
	gDto "lend/shared/dto"
	"lend/shared/failure"
)

// stateFilter translates a listing state keyword into the repository
// predicate for one subject column, evaluated against now. CURRENT, PAST and
// FUTURE partition the subject's bookings by the query instant; WAITING and
// REJECTED select on status alone; ALL adds nothing beyond the subject.
func stateFilter(state model.State, subject gDto.Filter, now time.Time) gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{subject},
	}

	switch state {
	case model.StateAll:
	case model.StateCurrent:
		group.Filters = append(group.Filters,
			gDto.Filter{
				Field:    model.FieldStartAt,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    now,
				Table:    model.TableName,
			},
		)
	case model.StatePast:
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldEndAt,
			Operator: gDto.FilterOperatorLess,
			Value:    now,
			Table:    model.TableName,
		})
	case model.StateFuture:
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStartAt,
			Operator: gDto.FilterOperatorGreater,
			Value:    now,
			Table:    model.TableName,
		})
	case model.StateWaiting:
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    model.StatusWaiting,
			Table:    model.TableName,
		})
	case model.StateRejected:
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    model.StatusRejected,
			Table:    model.TableName,
		})
	}

	return group
}

func requesterSubject(requesterID int64) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldRequesterID,
		Operator: gDto.FilterOperatorEq,
		Value:    requesterID,
		Table:    model.TableName,
	}
}

func ownerSubject(ownerID int64) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldOwnerID,
		Operator: gDto.FilterOperatorEq,
		Value:    ownerID,
		Table:    model.ItemsTableName,
	}
}

// listQuery validates the page window and fixes the listing order: start
// descending, ties by id ascending.
func listQuery(offset, limit int) (gDto.QueryParams, error) {
	if offset < 0 || limit <= 0 {
		return gDto.QueryParams{}, failure.InvalidPageParam
	}

	return gDto.QueryParams{
		Offset:      offset,
		Limit:       limit,
		SortBy:      model.TableName + "." + model.FieldStartAt,
		SortDir:     gDto.SortDirDesc,
		ThenSortBy:  model.TableName + "." + model.FieldID,
		ThenSortDir: gDto.SortDirAsc,
	}, nil
}

func parseState(raw string) (model.State, error) {
	state, ok := model.StateFrom(raw)
	if !ok {
		return "", failure.BadRequestFromString("Unknown state: " + raw) //nolint:wrapcheck
	}

	return state, nil
}
