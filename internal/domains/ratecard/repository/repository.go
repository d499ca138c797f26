package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/ratecard/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type RateCard interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RateCard, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RateCard]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RateCard {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RateCard](model.EntityName, model.TableName, model.FieldRateType, db, otel),
		db:         db,
		otel:       otel,
	}
}
