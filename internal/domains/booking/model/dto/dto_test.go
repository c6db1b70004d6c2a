package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"lend/internal/domains/booking/model"
	"lend/internal/domains/booking/model/dto"
)

func TestAddBookingRequest_Window(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		expectError bool
	}{
		{
			name:  "valid window",
			start: "2026-04-01T10:00:00",
			end:   "2026-04-01T12:00:00",
		},
		{
			name:        "unparseable start",
			start:       "tomorrow",
			end:         "2026-04-01T12:00:00",
			expectError: true,
		},
		{
			name:        "unparseable end",
			start:       "2026-04-01T10:00:00",
			end:         "noon",
			expectError: true,
		},
		{
			name:        "date only is rejected",
			start:       "2026-04-01",
			end:         "2026-04-01T12:00:00",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.AddBookingRequest{ItemID: 4, Start: tt.start, End: tt.end}

			start, end, err := req.Window()

			if tt.expectError {
				if err == nil {
					t.Error("expected a parse error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !end.After(start) {
				t.Errorf("expected end %v to be after start %v", end, start)
			}
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:          10,
		ItemID:      4,
		RequesterID: 1,
		OwnerID:     2,
		StartAt:     time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
		Status:      model.StatusWaiting,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	if res.ID != 10 || res.ItemID != 4 || res.OwnerID != 2 {
		t.Errorf("unexpected identifiers in %+v", res)
	}

	if res.Status != model.StatusWaiting {
		t.Errorf("expected status %s, got %s", model.StatusWaiting, res.Status)
	}

	if res.Start != "2026-04-01T10:00:00" {
		t.Errorf("expected wire-format start, got %s", res.Start)
	}
}

func TestBookingResponse_JSONFieldNames(t *testing.T) {
	var res dto.BookingResponse
	res.FromModel(model.Booking{ID: 10, RequesterID: 1})

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded := string(raw)

	if !strings.Contains(encoded, `"bookerId":1`) {
		t.Errorf("expected the requester to be exposed as bookerId, got %s", encoded)
	}

	if strings.Contains(encoded, "requester") {
		t.Errorf("internal field name leaked into the wire format: %s", encoded)
	}
}

func TestSlimFromModel(t *testing.T) {
	if got := dto.SlimFromModel(nil); got != nil {
		t.Errorf("expected nil for a nil booking, got %+v", got)
	}

	slim := dto.SlimFromModel(&model.Booking{ID: 10, RequesterID: 1})
	if slim.ID != 10 || slim.RequesterID != 1 {
		t.Errorf("unexpected slim booking %+v", slim)
	}
}

func TestItemSchedule_JSONFieldNames(t *testing.T) {
	schedule := dto.ItemSchedule{
		Last: &dto.BookingSlim{ID: 1, RequesterID: 7},
	}

	raw, err := json.Marshal(schedule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded := string(raw)

	if !strings.Contains(encoded, `"lastBooking"`) || !strings.Contains(encoded, `"nextBooking":null`) {
		t.Errorf("unexpected schedule encoding %s", encoded)
	}
}
