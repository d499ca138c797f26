package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "abc",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.id = :id",
			wantArgs:  map[string]any{"id": "abc"},
		},
		{
			name: "like is case insensitive",
			filter: dto.Filter{
				Field:    "guest_lastname",
				Value:    "rossi",
				Operator: dto.FilterOperatorLike,
			},
			wantWhere: "LOWER(guest_lastname) LIKE LOWER(:guest_lastname) ",
			wantArgs:  map[string]any{"guest_lastname": "%rossi%"},
		},
		{
			name: "strict less for half-open upper bound",
			filter: dto.Filter{
				ArgName:  "day_end",
				Field:    "check_in",
				Value:    "2024-06-02",
				Operator: dto.FilterOperatorLess,
				Table:    "bookings",
			},
			wantWhere: "bookings.check_in < :day_end",
			wantArgs:  map[string]any{"day_end": "2024-06-02"},
		},
		{
			name: "strict greater for departures",
			filter: dto.Filter{
				Field:    "check_out",
				Value:    "2024-06-01",
				Operator: dto.FilterOperatorGreater,
			},
			wantWhere: "check_out > :check_out",
			wantArgs:  map[string]any{"check_out": "2024-06-01"},
		},
		{
			name: "is null keeps active rows",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
			wantWhere: "bookings.deleted_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "is not null selects trash",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNotNull,
			},
			wantWhere: "deleted_at IS NOT NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{ArgName: "in_from", Field: "check_in", Value: day, Operator: dto.FilterOperatorGreaterEq},
					dto.Filter{ArgName: "in_to", Field: "check_in", Value: next, Operator: dto.FilterOperatorLess},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(deleted_at IS NULL AND (check_in >= :in_from AND check_in < :in_to))", where)
	assert.Equal(t, day, args["in_from"])
	assert.Equal(t, next, args["in_to"])
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?page=2&limit=25&sort_by=check_in&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "check_in", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParams_SortByAllowList(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?sort_by=price", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, false, "check_in", "check_out")

	assert.Empty(t, q.SortBy, "columns outside the allow-list must be ignored")

	r = httptest.NewRequest("GET", "/v1/bookings?sort_by=check_out", nil)

	q = dto.QueryParams{}
	q.FromRequest(r, false, "check_in", "check_out")

	assert.Equal(t, "check_out", q.SortBy)
}

func TestQueryParams_SortByRejectsNonIdentifiers(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?sort_by=check_in%3B+DROP+TABLE+bookings", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, false)

	assert.Empty(t, q.SortBy, "sort_by feeds an ORDER BY and must stay a plain identifier")

	r = httptest.NewRequest("GET", "/v1/bookings?sort_by=rooms.name", nil)

	q = dto.QueryParams{}
	q.FromRequest(r, false)

	assert.Equal(t, "rooms.name", q.SortBy, "qualified column names stay allowed")
}

func TestQueryParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
