package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mountmix/infras/otel"
	"mountmix/internal/domains/booking/model"
	"mountmix/internal/domains/booking/model/dto"
	"mountmix/internal/domains/booking/repository"
	"mountmix/shared"
	"mountmix/shared/constant"
	gDto "mountmix/shared/dto"
	"mountmix/shared/failure"
	"mountmix/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, status, search string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel(timezone.Now())

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to load created booking")

		return res, fmt.Errorf("failed to load created booking: %w", err)
	}

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, status, search string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if status != "" && !model.ValidStatus(status) {
		return res, failure.BadRequestFromString("invalid booking status filter") //nolint:wrapcheck
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_name",
					Field:    model.FieldClientName,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_email",
					Field:    model.FieldClientEmail,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_venue",
					Field:    model.FieldVenueLocation,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		})
	}

	models, err := s.repo.GetAll(ctx, gDto.NewestFirst(model.FieldCreatedAt), filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Update applies an admin patch. A non-empty response message always restamps
// responded_at; the markResponded flag stamps it only when the record has
// none yet. updated_at moves only when at least one column changes.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if existing.ID == 0 {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	updates := s.buildUpdates(req, existing)
	if len(updates) == 0 {
		res.FromModel(existing)

		return res, nil
	}

	updates[model.FieldUpdatedAt] = timezone.Now()

	if err = s.repo.Update(ctx, updates, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load updated booking")

		return res, fmt.Errorf("failed to load updated booking: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) buildUpdates(req dto.UpdateBookingRequest, existing model.Booking) map[string]any {
	updates := map[string]any{}

	if req.Status != nil {
		updates[model.FieldStatus] = *req.Status
	}

	if req.InternalNotes != nil {
		if *req.InternalNotes == "" {
			updates[model.FieldInternalNotes] = nil
		} else {
			updates[model.FieldInternalNotes] = *req.InternalNotes
		}
	}

	if req.ResponseMessage != nil {
		if *req.ResponseMessage == "" {
			updates[model.FieldResponseMessage] = nil
		} else {
			updates[model.FieldResponseMessage] = *req.ResponseMessage
			updates[model.FieldRespondedAt] = timezone.Now()
		}
	}

	if req.MarkResponded != nil && *req.MarkResponded && existing.RespondedAt == nil {
		if _, stamped := updates[model.FieldRespondedAt]; !stamped {
			updates[model.FieldRespondedAt] = timezone.Now()
		}
	}

	return updates
}
