package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lend/internal/domains/booking/model"
	"lend/shared/failure"
)

func TestAuthorize(t *testing.T) {
	booking := model.Booking{
		ID:          10,
		RequesterID: 1,
		OwnerID:     2,
	}

	tests := []struct {
		name    string
		policy  accessPolicy
		userID  int64
		wantErr bool
	}{
		{name: "owner may transition", policy: policyOwnerOnly, userID: 2},
		{name: "requester may not transition", policy: policyOwnerOnly, userID: 1, wantErr: true},
		{name: "stranger may not transition", policy: policyOwnerOnly, userID: 99, wantErr: true},
		{name: "requester may read", policy: policyRequesterOrOwner, userID: 1},
		{name: "owner may read", policy: policyRequesterOrOwner, userID: 2},
		{name: "stranger may not read", policy: policyRequesterOrOwner, userID: 99, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorize(tt.policy, tt.userID, booking)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			// Denial must be indistinguishable from absence.
			require.Error(t, err)
			assert.True(t, failure.IsNotFound(err))
		})
	}
}

func TestTransition(t *testing.T) {
	waiting := model.Booking{
		ID:          10,
		RequesterID: 1,
		OwnerID:     2,
		Status:      model.StatusWaiting,
	}

	tests := []struct {
		name       string
		userID     int64
		booking    model.Booking
		approve    bool
		wantStatus string
		wantErr    func(error) bool
	}{
		{
			name:       "owner approves",
			userID:     2,
			booking:    waiting,
			approve:    true,
			wantStatus: model.StatusApproved,
		},
		{
			name:       "owner rejects",
			userID:     2,
			booking:    waiting,
			approve:    false,
			wantStatus: model.StatusRejected,
		},
		{
			name:    "missing booking",
			userID:  2,
			booking: model.Booking{},
			approve: true,
			wantErr: failure.IsNotFound,
		},
		{
			name:    "requester cannot decide",
			userID:  1,
			booking: waiting,
			approve: true,
			wantErr: failure.IsNotFound,
		},
		{
			name:    "approved is terminal",
			userID:  2,
			booking: model.Booking{ID: 10, RequesterID: 1, OwnerID: 2, Status: model.StatusApproved},
			approve: false,
			wantErr: failure.IsValidation,
		},
		{
			name:    "rejected is terminal",
			userID:  2,
			booking: model.Booking{ID: 10, RequesterID: 1, OwnerID: 2, Status: model.StatusRejected},
			approve: true,
			wantErr: failure.IsValidation,
		},
		{
			name:    "re-approving an approved booking is rejected",
			userID:  2,
			booking: model.Booking{ID: 10, RequesterID: 1, OwnerID: 2, Status: model.StatusApproved},
			approve: true,
			wantErr: failure.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := transition(tt.userID, tt.booking, tt.approve)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, status)

				return
			}

			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
		})
	}
}
