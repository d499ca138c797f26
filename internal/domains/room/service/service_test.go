package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
)

func newService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	repo := roomMocks.NewMockRoom(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, cfg, cache, otelMocks.NewOtel())

	return svc, repo, cache
}

func TestGetAllRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newService(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, model.FieldName, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.Room{
				{ID: "room-1", Name: "Camera Azzurra", AllowedTypes: []string{"Singola", "Doppia"}},
				{ID: "room-2", Name: "Camera Verde", AllowedTypes: []string{"Tripla"}},
			}, nil
		})

	res, err := svc.GetAll(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "Camera Azzurra", res.Items[0].Name)
	assert.Equal(t, []string{"Singola", "Doppia"}, res.Items[0].AllowedTypes)
}

func TestGetAllRoomsCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, cache := newService(ctrl)

	cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			res, ok := out.(*dto.GetRoomsResponse)
			assert.True(t, ok)

			res.Items = []dto.RoomResponse{{ID: "room-1", Name: "Camera Azzurra"}}
			res.Total = 1

			return nil
		})

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestGetAllRoomsRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newService(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := svc.GetAll(context.Background())

	assert.Error(t, err)
}
