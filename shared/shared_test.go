package shared_test

import (
	"testing"

	"frontdesk/shared"
	"frontdesk/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(11, 10))
	assert.Equal(t, 4, shared.CalculateTotalPage(100, 30))
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	v := shared.ConvertStringToBool("true")
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}

	v = shared.ConvertStringToBool("false")
	if assert.NotNil(t, v) {
		assert.False(t, *v)
	}
}

func TestTransformFields(t *testing.T) {
	breakfast := false
	status := "PAID"

	type flagsUpdate struct {
		BreakfastDone *bool   `db:"breakfast_done"`
		PaymentStatus *string `db:"payment_status"`
		Ignored       string
	}

	fields := shared.TransformFields(flagsUpdate{
		BreakfastDone: &breakfast,
		PaymentStatus: &status,
		Ignored:       "untagged",
	})

	assert.Equal(t, map[string]any{
		"breakfast_done": false,
		"payment_status": "PAID",
	}, fields)
}

func TestTransformFields_SkipsUnsetFields(t *testing.T) {
	type update struct {
		GuestFirstname string  `db:"guest_firstname"`
		Price          *string `db:"price"`
	}

	fields := shared.TransformFields(update{GuestFirstname: "Anna"})

	assert.Equal(t, map[string]any{"guest_firstname": "Anna"}, fields)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:abc", shared.BuildCacheKey("booking:get", "abc"))
}

func TestBuildCacheKeyWithQuery_Stable(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter))
}
