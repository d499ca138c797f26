package service

import (
	"context"
	"fmt"

	"frontdesk/internal/domains/booking/export"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const exportDirectory = "exports"

// Export renders the CSV document for a scope and returns the attachment
// filename alongside it. An empty scope exports today's in-house stays.
func (s *serviceImpl) Export(ctx context.Context, scope, from, to string) (data []byte, filename string, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportBookings")
	defer span.End()
	defer span.TraceIfError(err)

	if scope == "" {
		scope = ScopeToday
	}

	bookings, err := s.exportRows(ctx, scope, from, to)
	if err != nil {
		return nil, "", err
	}

	return export.Render(bookings), export.Filename(scope), nil
}

// ArchiveExport renders the export and stores it in the object store under
// the exports/ prefix.
func (s *serviceImpl) ArchiveExport(ctx context.Context, scope, from, to string) (res dto.ArchiveExportResponse, err error) {
	ctx, span := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ArchiveExport")
	defer span.End()
	defer span.TraceIfError(err)

	if scope == "" {
		scope = ScopeToday
	}

	bookings, err := s.exportRows(ctx, scope, from, to)
	if err != nil {
		return res, err
	}

	day := timezone.Format(timezone.Now(), constant.DayFormat)
	filename := export.ArchiveFilename(scope, day)

	key, err := s.storage.UploadFileBytes(ctx, "", exportDirectory, filename, constant.ContentTypeCSV, export.Render(bookings))
	if err != nil {
		log.Error().Err(err).Msg("failed to archive export")

		return res, fmt.Errorf("failed to archive export: %w", err)
	}

	return dto.ArchiveExportResponse{OK: true, Key: key}, nil
}

func (s *serviceImpl) exportRows(ctx context.Context, scope, from, to string) ([]model.Booking, error) {
	filter, err := scopeFilter(scope, from, to)
	if err != nil {
		return nil, err
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldCheckIn,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for export")

		return nil, fmt.Errorf("failed to load bookings for export: %w", err)
	}

	return bookings, nil
}
