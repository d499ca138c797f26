package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/ratecard/model"
	"frontdesk/internal/domains/ratecard/model/dto"
	"frontdesk/internal/domains/ratecard/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRateCard = "rate_card:gets"
)

type RateCard interface {
	GetAll(ctx context.Context) (dto.GetRateCardsResponse, error)
}

type serviceImpl struct {
	repo  repository.RateCard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RateCard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RateCard {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRateCardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRateCards")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllRateCard)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rate cards")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldRateType, SortDir: gDto.SortDirAsc}

	rateCards, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate cards")

		return res, fmt.Errorf("failed to get rate cards: %w", err)
	}

	res.FromModels(rateCards)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rate cards to cache")
		}
	}()

	return res, nil
}
