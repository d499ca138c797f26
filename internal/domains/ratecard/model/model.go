package model

const (
	TableName  = "rate_cards"
	EntityName = "rate_card"

	FieldRateType = "rate_type"
	FieldPrice    = "price"
)

type RateCard struct {
	RateType string  `db:"rate_type"`
	Price    float64 `db:"price"`
}
