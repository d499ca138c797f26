package model

import (
	"frontdesk/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldKind        = "kind"
	FieldDisplayName = "display_name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldNotes       = "notes"

	KindCompany    = "company"
	KindIndividual = "individual"
)

type Customer struct {
	ID          string `db:"id"`
	Kind        string `db:"kind"`
	DisplayName string `db:"display_name"`
	Phone       string `db:"phone"`
	Email       string `db:"email"`
	Notes       string `db:"notes"`
	model.Metadata
}
