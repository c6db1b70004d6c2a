package shared_test

import (
	"strings"
	"testing"

	"lend/shared"
	"lend/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns one page",
			total:    25,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "partial last page",
			total:    25,
			limit:    10,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(7, "id", "bookings")

	clause, args := group.GetWhereClause()

	if !strings.Contains(clause, "bookings.id = :id") {
		t.Errorf("unexpected clause %q", clause)
	}

	if args["id"] != int64(7) {
		t.Errorf("expected id arg to be 7, got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "user:gets",
			expected: "user:gets",
		},
		{
			name:     "prefix with one part",
			prefix:   "user:get",
			parts:    []string{"7"},
			expected: "user:get:7",
		},
		{
			name:     "prefix with several parts",
			prefix:   "booking:get",
			parts:    []string{"7", "owner"},
			expected: "booking:get:7:owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Offset: 0, Limit: 10, SortBy: "bookings.start_at", SortDir: dto.SortDirDesc}
	filter := shared.FilterByID(7, "id", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:list", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:list", params, filter)

	if first != second {
		t.Errorf("expected a stable key, got %q and %q", first, second)
	}

	if !strings.HasPrefix(first, "booking:list:") {
		t.Errorf("expected the prefix to survive, got %q", first)
	}

	other := shared.BuildCacheKeyWithQuery("booking:list", dto.QueryParams{Offset: 10, Limit: 10}, filter)
	if first == other {
		t.Errorf("expected different queries to produce different keys")
	}
}
