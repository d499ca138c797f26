package model

import (
	"frontdesk/shared/model"
)

const (
	TableName  = "conventions"
	EntityName = "convention"

	FieldID       = "id"
	FieldName     = "name"
	FieldRateType = "rate_type"
	FieldPrice    = "price"
	FieldActive   = "active"
)

type Convention struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	RateType string  `db:"rate_type"`
	Price    float64 `db:"price"`
	Active   bool    `db:"active"`
	model.Metadata
}
