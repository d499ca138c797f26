package model

import (
	"frontdesk/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldAllowedTypes = "allowed_types"
)

type Room struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	AllowedTypes pq.StringArray `db:"allowed_types"`
	model.Metadata
}
