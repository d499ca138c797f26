package service

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	conventionRepo "frontdesk/internal/domains/convention/repository"
	customerModel "frontdesk/internal/domains/customer/model"
	customerRepo "frontdesk/internal/domains/customer/repository"
	"frontdesk/internal/domains/pricing"
	ratecardRepo "frontdesk/internal/domains/ratecard/repository"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheDashboard     = "booking:dashboard"
	cacheCalendar      = "booking:calendar"

	eventCreated   = "booking.created"
	eventUpdated   = "booking.updated"
	eventCancelled = "booking.cancelled"
	eventPurged    = "booking.purged"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	UpdateFlags(ctx context.Context, req dto.UpdateFlagsRequest, id string) (dto.BookingResponse, error)
	SoftDelete(ctx context.Context, id string) (dto.DeleteBookingResponse, error)
	Purge(ctx context.Context) (dto.PurgeResponse, error)
	List(ctx context.Context, scope, from, to string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Search(ctx context.Context, query, date string, limit int) (dto.GetBookingsResponse, error)
	Trash(ctx context.Context) (dto.GetBookingsResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Calendar(ctx context.Context, year int) (dto.CalendarResponse, error)
	Export(ctx context.Context, scope, from, to string) ([]byte, string, error)
	ArchiveExport(ctx context.Context, scope, from, to string) (dto.ArchiveExportResponse, error)
}

type serviceImpl struct {
	repo           repository.Booking
	roomRepo       roomRepo.Room
	customerRepo   customerRepo.Customer
	conventionRepo conventionRepo.Convention
	rateCardRepo   ratecardRepo.RateCard
	cfg            *config.Config
	cache          cache.RedisCache
	events         kafka.Client
	storage        s3.S3
	otel           otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	customerRepo customerRepo.Customer,
	conventionRepo conventionRepo.Convention,
	rateCardRepo ratecardRepo.RateCard,
	cfg *config.Config,
	cache cache.RedisCache,
	events kafka.Client,
	storage s3.S3,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:           repo,
		roomRepo:       roomRepo,
		customerRepo:   customerRepo,
		conventionRepo: conventionRepo,
		rateCardRepo:   rateCardRepo,
		cfg:            cfg,
		cache:          cache,
		events:         events,
		storage:        storage,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	ref, err := s.loadRefData(ctx)
	if err != nil {
		return res, err
	}

	for _, line := range req.Rooms {
		if _, ok := ref.rooms[line.RoomID]; !ok {
			return res, failure.BadRequestFromString(fmt.Sprintf("room %s does not exist", line.RoomID)) //nolint:wrapcheck
		}
	}

	customerID, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	groupID := uuid.NewString()
	paymentStatus := req.PaymentStatus

	if paymentStatus == "" {
		paymentStatus = model.PaymentStatusDue
	}

	bookings := make([]model.Booking, 0, len(req.Rooms))

	for _, line := range req.Rooms {
		booking := newBookingLine(req, line, ref, customerID, groupID, paymentStatus, checkIn, checkOut, now)
		bookings = append(bookings, booking)
	}

	if err = s.repo.CreateGroup(ctx, bookings); err != nil {
		log.Error().Err(err).Msg("failed to create booking group")

		return res, fmt.Errorf("failed to create booking group: %w", err)
	}

	res.FromModels(bookings, len(bookings), 0)

	for _, booking := range bookings {
		s.publishEvent(ctx, eventCreated, booking.ID, groupID, 0)
	}

	s.invalidateListCaches(ctx)

	return res, nil
}

// newBookingLine builds one row of a booking group. Pricing is resolved per
// line so different pax counts on different rooms price independently.
func newBookingLine(
	req dto.CreateBookingRequest,
	line dto.RoomLine,
	ref refData,
	customerID *string,
	groupID, paymentStatus string,
	checkIn, checkOut, now time.Time,
) model.Booking {
	pax := pricing.ClampPax(int(line.Pax))
	priced := pricing.Resolve(pax, line.ConventionID, ref.pricing)

	firstname := line.GuestFirstname
	lastname := line.GuestLastname

	if firstname == "" && lastname == "" {
		firstname = req.GuestFirstname
		lastname = req.GuestLastname
	}

	booking := model.Booking{
		ID:             uuid.NewString(),
		RoomID:         line.RoomID,
		CustomerID:     customerID,
		Kind:           req.Kind,
		GuestFirstname: firstname,
		GuestLastname:  lastname,
		GuestPhone:     req.GuestPhone,
		GuestEmail:     req.GuestEmail,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Pax:            pax,
		RateType:       priced.RateType,
		Price:          priced.Price,
		PaymentStatus:  paymentStatus,
		BookingGroupID: groupID,
		RoomsCount:     len(req.Rooms),
		Notes:          req.Notes,
	}
	booking.CreatedAt = now

	if room, ok := ref.rooms[line.RoomID]; ok {
		name := room.Name
		booking.RoomName = &name
	}

	return booking
}

func (s *serviceImpl) resolveCustomer(ctx context.Context, req dto.CreateBookingRequest) (*string, error) {
	if req.CustomerID != "" {
		exists, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if customer exists")

			return nil, fmt.Errorf("failed to check if customer exists: %w", err)
		}

		if !exists {
			return nil, failure.BadRequestFromString("customer does not exist") //nolint:wrapcheck
		}

		id := req.CustomerID

		return &id, nil
	}

	if req.Customer == nil {
		return nil, nil
	}

	customer := req.Customer.ToModel(timezone.Now())
	if err := s.customerRepo.Insert(ctx, customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer for booking")

		return nil, fmt.Errorf("failed to create customer for booking: %w", err)
	}

	return &customer.ID, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getActive(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := shared.TransformFields(req)
	if len(fields) == 0 {
		return res, failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	current, err := s.getActive(ctx, id)
	if err != nil {
		return res, err
	}

	if err = normalizeUpdateFields(fields, current); err != nil {
		return res, err
	}

	filter := activeByIDFilter(id)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	res.FromModel(updated)

	s.publishEvent(ctx, eventUpdated, id, updated.BookingGroupID, 0)
	s.invalidateBookingCaches(ctx, id)

	return res, nil
}

func (s *serviceImpl) UpdateFlags(ctx context.Context, req dto.UpdateFlagsRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingFlags")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("flags request cannot be empty") //nolint:wrapcheck
	}

	if req.PaymentStatus != nil && !model.IsValidPaymentStatus(*req.PaymentStatus) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid payment status: %s", *req.PaymentStatus)) //nolint:wrapcheck
	}

	if _, err = s.getActive(ctx, id); err != nil {
		return res, err
	}

	filter := activeByIDFilter(id)

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking flags")

		return res, fmt.Errorf("failed to update booking flags: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	res.FromModel(updated)

	s.publishEvent(ctx, eventUpdated, id, updated.BookingGroupID, 0)
	s.invalidateBookingCaches(ctx, id)

	return res, nil
}

func (s *serviceImpl) SoftDelete(ctx context.Context, id string) (res dto.DeleteBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SoftDeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getActive(ctx, id)
	if err != nil {
		return res, err
	}

	deletedAt := timezone.Now()

	err = s.repo.Update(ctx, map[string]any{model.FieldDeletedAt: deletedAt}, activeByIDFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to soft delete booking")

		return res, fmt.Errorf("failed to soft delete booking: %w", err)
	}

	s.publishEvent(ctx, eventCancelled, id, booking.BookingGroupID, 0)
	s.invalidateBookingCaches(ctx, id)

	return dto.DeleteBookingResponse{OK: true, ID: id, DeletedAt: deletedAt}, nil
}

func (s *serviceImpl) Purge(ctx context.Context) (res dto.PurgeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PurgeBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cutoff := timezone.Now().AddDate(0, 0, -s.cfg.Frontdesk.TrashRetentionDays)

	purged, err := s.repo.PurgeTrashed(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("failed to purge trashed bookings")

		return res, fmt.Errorf("failed to purge trashed bookings: %w", err)
	}

	if purged > 0 {
		s.publishEvent(ctx, eventPurged, "", "", purged)
		s.invalidateListCaches(ctx)
	}

	return dto.PurgeResponse{OK: true, Purged: purged}, nil
}

// getActive loads one non-deleted booking or reports not found.
func (s *serviceImpl) getActive(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, activeByIDFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event, bookingID, groupID string, count int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: bookingID,
			Value: dto.BookingEvent{
				Event:      event,
				BookingID:  bookingID,
				GroupID:    groupID,
				Count:      count,
				OccurredAt: timezone.Now(),
			},
		}

		if err := s.events.SendMessages(c, s.cfg.External.Kafka.Topic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheDashboard)
		shared.InvalidateCaches(c, s.cache, cacheCalendar)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheDashboard)
		shared.InvalidateCaches(c, s.cache, cacheCalendar)
	}()
}

// parseStayDates normalizes the stay boundaries to start-of-day instants in
// the app timezone and enforces checkOut > checkIn.
func parseStayDates(checkInRaw, checkOutRaw string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DayFormat, checkInRaw)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString(fmt.Sprintf("invalid check_in date: %s", checkInRaw)) //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DayFormat, checkOutRaw)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString(fmt.Sprintf("invalid check_out date: %s", checkOutRaw)) //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

// normalizeUpdateFields converts transport representations in a partial
// update to storage types: day strings become instants, coerced numerics
// become plain ints/floats, pax is clamped.
func normalizeUpdateFields(fields map[string]any, current model.Booking) error {
	checkIn := current.CheckIn
	checkOut := current.CheckOut

	if raw, ok := fields[model.FieldCheckIn].(string); ok {
		parsed, err := timezone.Parse(constant.DayFormat, raw)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid check_in date: %s", raw)) //nolint:wrapcheck
		}

		fields[model.FieldCheckIn] = parsed
		checkIn = parsed
	}

	if raw, ok := fields[model.FieldCheckOut].(string); ok {
		parsed, err := timezone.Parse(constant.DayFormat, raw)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid check_out date: %s", raw)) //nolint:wrapcheck
		}

		fields[model.FieldCheckOut] = parsed
		checkOut = parsed
	}

	if !checkOut.After(checkIn) {
		return failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	if pax, ok := fields[model.FieldPax].(dto.FlexInt); ok {
		fields[model.FieldPax] = pricing.ClampPax(int(pax))
	}

	if price, ok := fields[model.FieldPrice].(dto.FlexFloat); ok {
		if price < 0 {
			return failure.BadRequestFromString("price cannot be negative") //nolint:wrapcheck
		}

		fields[model.FieldPrice] = float64(price)
	}

	if status, ok := fields[model.FieldPaymentStatus].(string); ok && !model.IsValidPaymentStatus(status) {
		return failure.BadRequestFromString(fmt.Sprintf("invalid payment status: %s", status)) //nolint:wrapcheck
	}

	return nil
}

func activeByIDFilter(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			notDeletedFilter(),
		},
	}
}

func notDeletedFilter() gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldDeletedAt,
		Operator: gDto.FilterIsNull,
		Table:    model.TableName,
	}
}
