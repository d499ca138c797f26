package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	conventionMocks "frontdesk/internal/domains/convention/mocks"
	conventionModel "frontdesk/internal/domains/convention/model"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	"frontdesk/internal/domains/pricing"
	ratecardMocks "frontdesk/internal/domains/ratecard/mocks"
	ratecardModel "frontdesk/internal/domains/ratecard/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

type serviceMocks struct {
	repo       *bookingMocks.MockBooking
	room       *roomMocks.MockRoom
	customer   *customerMocks.MockCustomer
	convention *conventionMocks.MockConvention
	rateCard   *ratecardMocks.MockRateCard
	cache      *cacheMocks.MockRedisCache
	events     *kafkaMocks.MockClient
	storage    *s3Mocks.MockS3
}

func newService(ctrl *gomock.Controller) (service.Booking, serviceMocks) {
	mocks := serviceMocks{
		repo:       bookingMocks.NewMockBooking(ctrl),
		room:       roomMocks.NewMockRoom(ctrl),
		customer:   customerMocks.NewMockCustomer(ctrl),
		convention: conventionMocks.NewMockConvention(ctrl),
		rateCard:   ratecardMocks.NewMockRateCard(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		events:     kafkaMocks.NewMockClient(ctrl),
		storage:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Frontdesk.TrashRetentionDays = 30
	cfg.Frontdesk.SearchLimit = 50
	cfg.Frontdesk.SearchLimitMax = 100
	cfg.Frontdesk.DashboardLimit = 10
	cfg.Frontdesk.RecentLimit = 8

	svc := service.New(
		mocks.repo,
		mocks.room,
		mocks.customer,
		mocks.convention,
		mocks.rateCard,
		cfg,
		mocks.cache,
		mocks.events,
		mocks.storage,
		otelMocks.NewOtel(),
	)

	return svc, mocks
}

func (m serviceMocks) allowAsync() {
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (m serviceMocks) cacheMiss() {
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
}

func (m serviceMocks) expectRefData() {
	m.room.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "room-1", Name: "Camera Azzurra"},
			{ID: "room-2", Name: "Camera Verde"},
		}, nil)

	m.rateCard.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ratecardModel.RateCard{
			{RateType: pricing.RateTypeSingola, Price: 50},
			{RateType: pricing.RateTypeDoppia, Price: 80},
			{RateType: pricing.RateTypeTripla, Price: 105},
			{RateType: pricing.RateTypeQuadrupla, Price: 120},
		}, nil)

	m.convention.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]conventionModel.Convention{
			{ID: "conv-double", RateType: pricing.RateTypeDoppia, Price: 70, Active: true},
		}, nil)
}

func activeBooking(id string) model.Booking {
	return model.Booking{
		ID:             id,
		RoomID:         "room-1",
		GuestFirstname: "Mario",
		GuestLastname:  "Rossi",
		CheckIn:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Pax:            3,
		RateType:       pricing.RateTypeTripla,
		Price:          105,
		PaymentStatus:  model.PaymentStatusDue,
		BookingGroupID: "group-1",
		RoomsCount:     1,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	req := dto.CreateBookingRequest{
		Kind:           model.KindIndividual,
		GuestFirstname: "Mario",
		GuestLastname:  "Rossi",
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-12",
		Rooms: []dto.RoomLine{
			{RoomID: "room-1", Pax: 3},
		},
	}

	var inserted []model.Booking

	mocks.expectRefData()
	mocks.repo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bookings []model.Booking) error {
			inserted = bookings

			return nil
		})

	res, err := svc.Create(context.Background(), req)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, inserted, 1)
	assert.Equal(t, pricing.RateTypeTripla, inserted[0].RateType)
	assert.Equal(t, 105.0, inserted[0].Price)
	assert.Equal(t, 3, inserted[0].Pax)
	assert.Equal(t, model.PaymentStatusDue, inserted[0].PaymentStatus)
	assert.NotEmpty(t, inserted[0].BookingGroupID)
	assert.Equal(t, 1, inserted[0].RoomsCount)
	assert.True(t, inserted[0].CheckOut.After(inserted[0].CheckIn))
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "Camera Azzurra", res.Items[0].RoomName)
}

func TestBookingService_CreateGroupPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	req := dto.CreateBookingRequest{
		Kind:           model.KindCompany,
		GuestFirstname: "Anna",
		GuestLastname:  "Bianchi",
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-03",
		Rooms: []dto.RoomLine{
			{RoomID: "room-1", Pax: 2, ConventionID: "conv-double"},
			{RoomID: "room-2", Pax: 9, ConventionID: "conv-double", GuestFirstname: "Luca", GuestLastname: "Verdi"},
		},
	}

	var inserted []model.Booking

	mocks.expectRefData()
	mocks.repo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bookings []model.Booking) error {
			inserted = bookings

			return nil
		})

	_, err := svc.Create(context.Background(), req)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, inserted, 2)

	// matching convention overrides the rate card
	assert.Equal(t, pricing.RateTypeDoppia, inserted[0].RateType)
	assert.Equal(t, 70.0, inserted[0].Price)
	assert.Equal(t, "Anna", inserted[0].GuestFirstname)

	// clamped to four guests, convention no longer matches
	assert.Equal(t, 4, inserted[1].Pax)
	assert.Equal(t, pricing.RateTypeQuadrupla, inserted[1].RateType)
	assert.Equal(t, 120.0, inserted[1].Price)
	assert.Equal(t, "Luca", inserted[1].GuestFirstname)

	assert.Equal(t, inserted[0].BookingGroupID, inserted[1].BookingGroupID)
	assert.Equal(t, 2, inserted[0].RoomsCount)
}

func TestBookingService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(req *dto.CreateBookingRequest)
		setupMock func(mocks serviceMocks)
	}{
		{
			name: "unknown room",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Rooms = []dto.RoomLine{{RoomID: "no-such-room", Pax: 1}}
			},
			setupMock: func(mocks serviceMocks) {
				mocks.expectRefData()
			},
		},
		{
			name: "invalid check_in",
			mutate: func(req *dto.CreateBookingRequest) {
				req.CheckIn = "10/03/2025"
			},
			setupMock: func(serviceMocks) {},
		},
		{
			name: "check_out not after check_in",
			mutate: func(req *dto.CreateBookingRequest) {
				req.CheckOut = req.CheckIn
			},
			setupMock: func(serviceMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newService(ctrl)
			mocks.allowAsync()
			tt.setupMock(mocks)

			req := dto.CreateBookingRequest{
				Kind:           model.KindIndividual,
				GuestFirstname: "Mario",
				GuestLastname:  "Rossi",
				CheckIn:        "2025-03-10",
				CheckOut:       "2025-03-12",
				Rooms:          []dto.RoomLine{{RoomID: "room-1", Pax: 1}},
			}
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()
	mocks.cacheMiss()

	t.Run("found", func(t *testing.T) {
		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)

		res, err := svc.Get(context.Background(), "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "b-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	t.Run("empty request", func(t *testing.T) {
		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{}, "b-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		notes := "updated"
		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Notes: &notes}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("normalizes dates and coerced numbers", func(t *testing.T) {
		checkIn := "2025-03-11"
		pax := dto.FlexInt(7)
		price := dto.FlexFloat(99.5)

		req := dto.UpdateBookingRequest{
			CheckIn: &checkIn,
			Pax:     &pax,
			Price:   &price,
		}

		var fields map[string]any

		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)
		mocks.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				fields = req

				return nil
			})
		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)

		_, err := svc.Update(context.Background(), req, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)

		parsedCheckIn, ok := fields[model.FieldCheckIn].(time.Time)
		assert.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), parsedCheckIn.UTC())

		assert.Equal(t, 4, fields[model.FieldPax])
		assert.Equal(t, 99.5, fields[model.FieldPrice])
		assert.NotContains(t, fields, model.FieldNotes)
	})

	t.Run("rejects check_in after current check_out", func(t *testing.T) {
		checkIn := "2025-03-20"

		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{CheckIn: &checkIn}, "b-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects an unknown payment status", func(t *testing.T) {
		status := "SETTLED"

		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{PaymentStatus: &status}, "b-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_UpdateFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	t.Run("empty request", func(t *testing.T) {
		_, err := svc.UpdateFlags(context.Background(), dto.UpdateFlagsRequest{}, "b-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("updates only the supplied flag", func(t *testing.T) {
		done := true

		var fields map[string]any

		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)
		mocks.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				fields = req

				return nil
			})
		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)

		_, err := svc.UpdateFlags(context.Background(), dto.UpdateFlagsRequest{BreakfastDone: &done}, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, map[string]any{model.FieldBreakfastDone: true}, fields)
	})

	t.Run("rejects an unknown payment status", func(t *testing.T) {
		status := "SETTLED"

		_, err := svc.UpdateFlags(context.Background(), dto.UpdateFlagsRequest{PaymentStatus: &status}, "b-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_SoftDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	t.Run("success", func(t *testing.T) {
		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking("b-1"), nil)
		mocks.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, req, model.FieldDeletedAt)

				return nil
			})

		res, err := svc.SoftDelete(context.Background(), "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, "b-1", res.ID)
		assert.False(t, res.DeletedAt.IsZero())
	})

	t.Run("not found", func(t *testing.T) {
		mocks.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.SoftDelete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	mocks.repo.EXPECT().
		PurgeTrashed(gomock.Any(), gomock.Any()).
		Return(int64(3), nil)

	res, err := svc.Purge(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, int64(3), res.Purged)

	// second run has nothing left to remove
	mocks.repo.EXPECT().
		PurgeTrashed(gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	res, err = svc.Purge(context.Background())

	assert.NoError(t, err)
	assert.True(t, res.OK)
	assert.Zero(t, res.Purged)
}

func TestBookingService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	t.Run("empty query", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "", "", 0)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("applies the default cap", func(t *testing.T) {
		mocks.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, 50, params.Limit)
				assert.Equal(t, model.FieldCheckIn, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir, "most recent arrivals first")

				return []model.Booking{activeBooking("b-1")}, nil
			})

		res, err := svc.Search(context.Background(), "ros", "", 0)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
	})

	t.Run("clamps to the hard max", func(t *testing.T) {
		mocks.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, 100, params.Limit)

				return nil, nil
			})

		_, err := svc.Search(context.Background(), "ros", "", 5000)

		assert.NoError(t, err)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "ros", "not-a-date", 0)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()
	mocks.cacheMiss()

	listScope := func(scope, from, to string) (gDto.FilterGroup, error) {
		var captured gDto.FilterGroup

		mocks.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mocks.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				captured = filter

				return []model.Booking{activeBooking("b-1")}, nil
			})

		_, err := svc.List(context.Background(), scope, from, to, gDto.QueryParams{Page: 1, Limit: 10})

		return captured, err
	}

	t.Run("default scope only filters deleted rows", func(t *testing.T) {
		filter, err := listScope("", "", "")
		assert.NoError(t, err)

		where, _ := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.deleted_at IS NULL")
		assert.NotContains(t, where, "check_in")
		assert.NotContains(t, where, "check_out")
	})

	t.Run("today scope is the half-open in-house interval", func(t *testing.T) {
		filter, err := listScope(service.ScopeToday, "", "")
		assert.NoError(t, err)

		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.deleted_at IS NULL")
		assert.Contains(t, where, "bookings.check_in <= :in_house_in")
		assert.Contains(t, where, "bookings.check_out > :in_house_out")

		start, ok := args["in_house_in"].(time.Time)
		assert.True(t, ok)
		assert.Equal(t, start, args["in_house_out"], "both bounds compare against the same instant")
		assert.Equal(t, 0, start.Hour(), "the instant is the start of today")
	})

	t.Run("past scope ends strictly before today", func(t *testing.T) {
		filter, err := listScope(service.ScopePast, "", "")
		assert.NoError(t, err)

		where, _ := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.check_out < :past_before")
		assert.NotContains(t, where, "check_in >")
	})

	t.Run("future scope starts strictly after today", func(t *testing.T) {
		filter, err := listScope(service.ScopeFuture, "", "")
		assert.NoError(t, err)

		where, _ := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.check_in > :future_after")
		assert.NotContains(t, where, "check_out <")
	})

	t.Run("range scope is the [from,to) overlap", func(t *testing.T) {
		filter, err := listScope(service.ScopeRange, "2025-03-10", "2025-03-12")
		assert.NoError(t, err)

		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "bookings.check_out > :range_from")
		assert.Contains(t, where, "bookings.check_in < :range_to")

		fromArg, ok := args["range_from"].(time.Time)
		assert.True(t, ok)
		assert.Equal(t, "2025-03-10", fromArg.Format("2006-01-02"))

		toArg, ok := args["range_to"].(time.Time)
		assert.True(t, ok)
		assert.Equal(t, "2025-03-12", toArg.Format("2006-01-02"))
	})

	t.Run("invalid scope", func(t *testing.T) {
		_, err := svc.List(context.Background(), "lastweek", "", "", gDto.QueryParams{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("range scope needs parseable bounds", func(t *testing.T) {
		_, err := svc.List(context.Background(), service.ScopeRange, "2025-03-10", "soon", gDto.QueryParams{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Trash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	trashed := activeBooking("b-9")
	deletedAt := time.Now().Add(-24 * time.Hour)
	trashed.DeletedAt = &deletedAt

	mocks.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, model.FieldDeletedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			where, _ := filter.GetWhereClause()
			assert.Contains(t, where, "deleted_at IS NOT NULL")

			return []model.Booking{trashed}, nil
		})

	res, err := svc.Trash(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.NotNil(t, res.Items[0].DeletedAt)
}

func TestBookingService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()
	mocks.cacheMiss()

	mocks.room.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
	mocks.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mocks.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{activeBooking("b-1")}, nil).
		Times(5)

	res, err := svc.Dashboard(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 5, res.RoomsCount)
	assert.Equal(t, 2, res.ActiveToday)
	assert.Equal(t, 3, res.AvailableRooms)
	assert.Len(t, res.Arrivals, 1)
	assert.Len(t, res.Recent, 1)
}

func TestBookingService_Calendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()
	mocks.cacheMiss()

	t.Run("half-open stay occupies nights only", func(t *testing.T) {
		mocks.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{activeBooking("b-1")}, nil)

		res, err := svc.Calendar(context.Background(), 2025)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 2025, res.Year)
		assert.Equal(t, 1, res.Days["2025-03-10"])
		assert.Equal(t, 1, res.Days["2025-03-11"])
		assert.NotContains(t, res.Days, "2025-03-12")
	})

	t.Run("invalid year", func(t *testing.T) {
		_, err := svc.Calendar(context.Background(), 123)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	t.Run("renders csv", func(t *testing.T) {
		mocks.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{activeBooking("b-1")}, nil)

		data, filename, err := svc.Export(context.Background(), "", "", "")

		assert.NoError(t, err)
		assert.Equal(t, "prenotazioni_today.csv", filename)

		content := string(data)
		assert.True(t, strings.HasPrefix(content, "\uFEFF"))
		assert.Contains(t, content, `"camera"`)
		assert.Contains(t, content, `"Mario Rossi"`)
	})

	t.Run("invalid scope", func(t *testing.T) {
		_, _, err := svc.Export(context.Background(), "everything", "", "")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("range scope requires dates", func(t *testing.T) {
		_, _, err := svc.Export(context.Background(), "range", "2025-03-01", "bad")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_ArchiveExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)
	mocks.allowAsync()

	mocks.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{activeBooking("b-1")}, nil)
	mocks.storage.EXPECT().
		UploadFileBytes(gomock.Any(), "", "exports", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("exports/prenotazioni_today_2025-03-10.csv", nil)

	res, err := svc.ArchiveExport(context.Background(), "today", "", "")

	assert.NoError(t, err)
	assert.True(t, res.OK)
	assert.Contains(t, res.Key, "exports/")
}
