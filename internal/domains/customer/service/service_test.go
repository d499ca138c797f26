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
	customerMocks "frontdesk/internal/domains/customer/mocks"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/domains/customer/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
)

func newService(ctrl *gomock.Controller) (service.Customer, *customerMocks.MockCustomer, *cacheMocks.MockRedisCache) {
	repo := customerMocks.NewMockCustomer(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, cfg, cache, otelMocks.NewOtel())

	return svc, repo, cache
}

func TestCreateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newService(ctrl)

	var inserted model.Customer

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, customer model.Customer) error {
			inserted = customer

			return nil
		})

	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.CreateCustomerRequest{
		Kind:        model.KindCompany,
		DisplayName: "ACME S.p.A.",
		Email:       "booking@acme.example",
	}

	res, err := svc.Create(context.Background(), req)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.NotEmpty(t, inserted.ID)
	assert.Equal(t, model.KindCompany, inserted.Kind)
	assert.Equal(t, "ACME S.p.A.", inserted.DisplayName)
	assert.Equal(t, inserted.ID, res.ID)
	assert.Equal(t, "ACME S.p.A.", res.DisplayName)
}

func TestCreateCustomerRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newService(ctrl)

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		Kind:        model.KindIndividual,
		DisplayName: "Mario Rossi",
	})

	assert.Error(t, err)
}

func TestGetAllCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newService(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
			assert.Equal(t, model.FieldDisplayName, params.SortBy)
			assert.Empty(t, filter.Filters)

			return []model.Customer{
				{ID: "customer-1", DisplayName: "ACME S.p.A."},
				{ID: "customer-2", DisplayName: "Mario Rossi"},
			}, nil
		})

	res, err := svc.GetAll(context.Background(), "")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "ACME S.p.A.", res.Items[0].DisplayName)
}

func TestGetAllCustomersWithQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cache := newService(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
			assert.Len(t, filter.Filters, 1)

			nameFilter, ok := filter.Filters[0].(gDto.Filter)
			assert.True(t, ok)
			assert.Equal(t, model.FieldDisplayName, nameFilter.Field)
			assert.Equal(t, gDto.FilterOperatorLike, nameFilter.Operator)
			assert.Equal(t, "acme", nameFilter.Value)

			return []model.Customer{{ID: "customer-1", DisplayName: "ACME S.p.A."}}, nil
		})

	res, err := svc.GetAll(context.Background(), "acme")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestGetAllCustomersCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, cache := newService(ctrl)

	cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			res, ok := out.(*dto.GetCustomersResponse)
			assert.True(t, ok)

			res.Items = []dto.CustomerResponse{{ID: "customer-1"}}
			res.Total = 1

			return nil
		})

	res, err := svc.GetAll(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}
