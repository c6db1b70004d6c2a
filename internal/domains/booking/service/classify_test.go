package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lend/internal/domains/booking/model"
	gDto "lend/shared/dto"
	"lend/shared/failure"
)

func TestStateFilter(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	subject := requesterSubject(7)

	tests := []struct {
		name          string
		state         model.State
		wantFragments []string
	}{
		{
			name:          "ALL keeps only the subject",
			state:         model.StateAll,
			wantFragments: []string{"bookings.requester_id = :requester_id"},
		},
		{
			name:  "CURRENT bounds both ends",
			state: model.StateCurrent,
			wantFragments: []string{
				"bookings.requester_id = :requester_id",
				"bookings.start_at <= :start_at",
				"bookings.end_at >= :end_at",
			},
		},
		{
			name:  "PAST is strictly before now",
			state: model.StatePast,
			wantFragments: []string{
				"bookings.requester_id = :requester_id",
				"bookings.end_at < :end_at",
			},
		},
		{
			name:  "FUTURE is strictly after now",
			state: model.StateFuture,
			wantFragments: []string{
				"bookings.requester_id = :requester_id",
				"bookings.start_at > :start_at",
			},
		},
		{
			name:  "WAITING selects on status",
			state: model.StateWaiting,
			wantFragments: []string{
				"bookings.requester_id = :requester_id",
				"bookings.status = :status",
			},
		},
		{
			name:  "REJECTED selects on status",
			state: model.StateRejected,
			wantFragments: []string{
				"bookings.requester_id = :requester_id",
				"bookings.status = :status",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := stateFilter(tt.state, subject, now)

			where, args := group.GetWhereClause()

			for _, fragment := range tt.wantFragments {
				assert.Contains(t, where, fragment)
			}

			assert.Equal(t, int64(7), args["requester_id"])
		})
	}
}

func TestStateFilter_StatusValues(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	waiting := stateFilter(model.StateWaiting, requesterSubject(1), now)
	_, args := waiting.GetWhereClause()
	assert.Equal(t, model.StatusWaiting, args["status"])

	rejected := stateFilter(model.StateRejected, requesterSubject(1), now)
	_, args = rejected.GetWhereClause()
	assert.Equal(t, model.StatusRejected, args["status"])
}

func TestOwnerSubject(t *testing.T) {
	group := stateFilter(model.StateAll, ownerSubject(42), time.Now())

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "items.owner_id = :owner_id")
	assert.Equal(t, int64(42), args["owner_id"])
}

func TestListQuery(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		limit   int
		wantErr bool
	}{
		{name: "valid window", offset: 0, limit: 10},
		{name: "offset into the listing", offset: 20, limit: 5},
		{name: "negative offset", offset: -1, limit: 10, wantErr: true},
		{name: "zero limit", offset: 0, limit: 0, wantErr: true},
		{name: "negative limit", offset: 0, limit: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := listQuery(tt.offset, tt.limit)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.InvalidPageParam, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.offset, params.Offset)
			assert.Equal(t, tt.limit, params.Limit)
			assert.Equal(t, "bookings.start_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Equal(t, "bookings.id", params.ThenSortBy)
			assert.Equal(t, gDto.SortDirAsc, params.ThenSortDir)
		})
	}
}

func TestParseState(t *testing.T) {
	for _, known := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		state, err := parseState(known)

		require.NoError(t, err)
		assert.Equal(t, known, string(state))
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown keyword", raw: "FINISHED"},
		{name: "lowercase is not accepted", raw: "current"},
		{name: "mixed case is not accepted", raw: "Past"},
		{name: "empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseState(tt.raw)

			require.Error(t, err)
			assert.True(t, failure.IsValidation(err))
			assert.Equal(t, "Unknown state: "+tt.raw, err.Error())
		})
	}
}
