package service

import (
	"context"
	"fmt"
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	conventionModel "frontdesk/internal/domains/convention/model"
	"frontdesk/internal/domains/pricing"
	ratecardModel "frontdesk/internal/domains/ratecard/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	ScopeToday  = "today"
	ScopePast   = "past"
	ScopeFuture = "future"
	ScopeRange  = "range"
)

// refData is the per-request snapshot of reference rows. Loads are issued
// concurrently and joined before any pricing decision.
type refData struct {
	rooms   map[string]roomModel.Room
	pricing pricing.RefData
}

func (s *serviceImpl) loadRefData(ctx context.Context) (ref refData, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadRefData")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		rooms       []roomModel.Room
		rateCards   []ratecardModel.RateCard
		conventions []conventionModel.Convention
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		rooms, err = s.roomRepo.GetAll(groupCtx, gDto.QueryParams{}, gDto.FilterGroup{})

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		rateCards, err = s.rateCardRepo.GetAll(groupCtx, gDto.QueryParams{}, gDto.FilterGroup{})

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		conventions, err = s.conventionRepo.GetAll(groupCtx, gDto.QueryParams{}, gDto.FilterGroup{})

		return err //nolint:wrapcheck
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load reference data")

		return ref, fmt.Errorf("failed to load reference data: %w", err)
	}

	ref.rooms = make(map[string]roomModel.Room, len(rooms))
	for _, room := range rooms {
		ref.rooms[room.ID] = room
	}

	ref.pricing = pricing.NewRefData(rateCards, conventions)

	return ref, nil
}

func (s *serviceImpl) List(ctx context.Context, scope, from, to string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookings")
	defer span.End()
	defer span.TraceIfError(err)

	filter, err := scopeFilter(scope, from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, shared.CalculateTotalPage(total, params.Limit))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, query, date string, limit int) (res dto.GetBookingsResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchBookings")
	defer span.End()
	defer span.TraceIfError(err)

	if query == "" {
		return res, failure.BadRequestFromString("search query cannot be empty") //nolint:wrapcheck
	}

	if limit <= 0 {
		limit = s.cfg.Frontdesk.SearchLimit
	}

	if limit > s.cfg.Frontdesk.SearchLimitMax {
		limit = s.cfg.Frontdesk.SearchLimitMax
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			notDeletedFilter(),
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "q_firstname",
						Field:    model.FieldGuestFirstname,
						Operator: gDto.FilterOperatorLike,
						Value:    query,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "q_lastname",
						Field:    model.FieldGuestLastname,
						Operator: gDto.FilterOperatorLike,
						Value:    query,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	if date != "" {
		day, parseErr := timezone.Parse(constant.DayFormat, date)
		if parseErr != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %s", date)) //nolint:wrapcheck
		}

		filter.Filters = append(filter.Filters, dayBucketFilter(model.FieldCheckIn, day))
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldCheckIn,
		SortDir: gDto.SortDirDesc,
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search bookings")

		return res, fmt.Errorf("failed to search bookings: %w", err)
	}

	res.FromModels(bookings, len(bookings), 0)

	return res, nil
}

func (s *serviceImpl) Trash(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TrashBookings")
	defer span.End()
	defer span.TraceIfError(err)

	cutoff := timezone.Now().AddDate(0, 0, -s.cfg.Frontdesk.TrashRetentionDays)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDeletedAt,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "trash_cutoff",
				Field:    model.FieldDeletedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    cutoff,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldDeletedAt,
		SortDir: gDto.SortDirDesc,
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trashed bookings")

		return res, fmt.Errorf("failed to get trashed bookings: %w", err)
	}

	res.FromModels(bookings, len(bookings), 0)

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer span.End()
	defer span.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDashboard)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	today := timezone.StartOfDay(timezone.Now())
	tomorrow := timezone.AddDays(today, 1)

	var (
		roomsCount      int
		activeToday     int
		arrivals        []model.Booking
		departures      []model.Booking
		inHouseToday    []model.Booking
		inHouseTomorrow []model.Booking
		recent          []model.Booking
	)

	dayParams := gDto.QueryParams{
		Limit:   s.cfg.Frontdesk.DashboardLimit,
		SortBy:  model.FieldCheckIn,
		SortDir: gDto.SortDirAsc,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		roomsCount, err = s.roomRepo.Count(groupCtx, gDto.FilterGroup{})

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		activeToday, err = s.repo.Count(groupCtx, inHouseFilter(today))

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		arrivals, err = s.repo.GetAll(groupCtx, dayParams, activeWith(dayBucketFilter(model.FieldCheckIn, today)))

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		departures, err = s.repo.GetAll(groupCtx, dayParams, activeWith(dayBucketFilter(model.FieldCheckOut, today)))

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		inHouseToday, err = s.repo.GetAll(groupCtx, gDto.QueryParams{SortBy: model.FieldCheckIn, SortDir: gDto.SortDirAsc}, inHouseFilter(today))

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		inHouseTomorrow, err = s.repo.GetAll(groupCtx, gDto.QueryParams{SortBy: model.FieldCheckIn, SortDir: gDto.SortDirAsc}, inHouseFilter(tomorrow))

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		recentParams := gDto.QueryParams{
			Limit:   s.cfg.Frontdesk.RecentLimit,
			SortBy:  constant.FieldCreatedAt,
			SortDir: gDto.SortDirDesc,
		}

		recent, err = s.repo.GetAll(groupCtx, recentParams, activeWith())

		return err //nolint:wrapcheck
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load dashboard")

		return res, fmt.Errorf("failed to load dashboard: %w", err)
	}

	availableRooms := roomsCount - activeToday
	if availableRooms < 0 {
		availableRooms = 0
	}

	res = dto.DashboardResponse{
		RoomsCount:      roomsCount,
		ActiveToday:     activeToday,
		AvailableRooms:  availableRooms,
		Arrivals:        dto.ToBookingResponses(arrivals),
		Departures:      dto.ToBookingResponses(departures),
		InHouseToday:    dto.ToBookingResponses(inHouseToday),
		InHouseTomorrow: dto.ToBookingResponses(inHouseTomorrow),
		Recent:          dto.ToBookingResponses(recent),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Calendar(ctx context.Context, year int) (res dto.CalendarResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalendarOccupancy")
	defer span.End()
	defer span.TraceIfError(err)

	if year < 2000 || year > 2100 {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid year: %d", year)) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheCalendar, fmt.Sprintf("%d", year))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for calendar")

		return res, nil
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, timezone.GetLocation())
	yearEnd := yearStart.AddDate(1, 0, 0)

	filter := activeWith(
		gDto.Filter{
			ArgName:  "cal_from",
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorGreater,
			Value:    yearStart,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "cal_to",
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorLess,
			Value:    yearEnd,
			Table:    model.TableName,
		},
	)

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load calendar bookings")

		return res, fmt.Errorf("failed to load calendar bookings: %w", err)
	}

	res = dto.CalendarResponse{
		Year: year,
		Days: occupiedDays(bookings, yearStart, yearEnd),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar to cache")
		}
	}()

	return res, nil
}

// occupiedDays counts occupied rooms per day over the half-open stay
// interval, clipped to [start, end).
func occupiedDays(bookings []model.Booking, start, end time.Time) map[string]int {
	days := map[string]int{}

	for _, booking := range bookings {
		day := timezone.StartOfDay(booking.CheckIn)
		if day.Before(start) {
			day = start
		}

		stop := booking.CheckOut
		if stop.After(end) {
			stop = end
		}

		for day.Before(stop) {
			days[timezone.Format(day, constant.DayFormat)]++
			day = timezone.AddDays(day, 1)
		}
	}

	return days
}

// scopeFilter builds the WHERE specification for a list scope. The empty
// scope means every active booking.
func scopeFilter(scope, from, to string) (gDto.FilterGroup, error) {
	today := timezone.StartOfDay(timezone.Now())

	switch scope {
	case "":
		return activeWith(), nil
	case ScopeToday:
		return inHouseFilter(today), nil
	case ScopePast:
		return activeWith(gDto.Filter{
			ArgName:  "past_before",
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorLess,
			Value:    today,
			Table:    model.TableName,
		}), nil
	case ScopeFuture:
		return activeWith(gDto.Filter{
			ArgName:  "future_after",
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorGreater,
			Value:    today,
			Table:    model.TableName,
		}), nil
	case ScopeRange:
		fromDay, err := timezone.Parse(constant.DayFormat, from)
		if err != nil {
			return gDto.FilterGroup{}, failure.BadRequestFromString(fmt.Sprintf("invalid from date: %s", from)) //nolint:wrapcheck
		}

		toDay, err := timezone.Parse(constant.DayFormat, to)
		if err != nil {
			return gDto.FilterGroup{}, failure.BadRequestFromString(fmt.Sprintf("invalid to date: %s", to)) //nolint:wrapcheck
		}

		return activeWith(
			gDto.Filter{
				ArgName:  "range_from",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    fromDay,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_to",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    toDay,
				Table:    model.TableName,
			},
		), nil
	default:
		return gDto.FilterGroup{}, failure.BadRequestFromString(fmt.Sprintf("invalid scope: %s", scope)) //nolint:wrapcheck
	}
}

// activeWith combines the not-deleted guard with extra predicates.
func activeWith(filters ...any) gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{notDeletedFilter()},
	}

	group.Filters = append(group.Filters, filters...)

	return group
}

// inHouseFilter selects stays covering the instant: check_in <= at and
// check_out > at, the half-open stay interval.
func inHouseFilter(at time.Time) gDto.FilterGroup {
	return activeWith(
		gDto.Filter{
			ArgName:  "in_house_in",
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorLessEq,
			Value:    at,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "in_house_out",
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorGreater,
			Value:    at,
			Table:    model.TableName,
		},
	)
}

// dayBucketFilter selects rows whose field falls in [day, day+1).
func dayBucketFilter(field string, day time.Time) gDto.FilterGroup {
	start := timezone.StartOfDay(day)
	end := timezone.AddDays(start, 1)

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  field + "_bucket_start",
				Field:    field,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  field + "_bucket_end",
				Field:    field,
				Operator: gDto.FilterOperatorLess,
				Value:    end,
				Table:    model.TableName,
			},
		},
	}
}
