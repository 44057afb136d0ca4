package service

import (
	"context"
	"time"
	"tzfield/field"
	"tzfield/infras/otel"
	"tzfield/internal/domains/event/model"
	"tzfield/internal/domains/event/model/dto"
	"tzfield/internal/domains/event/repository"
	"tzfield/shared"
	"tzfield/shared/constant"
	gDto "tzfield/shared/dto"
	"tzfield/shared/failure"
	"tzfield/shared/validator"

	"github.com/google/uuid"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (string, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, startsAfter string) (dto.GetEventsResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Event
	otel       otel.Otel
	capability field.StorageCapability
	tzField    *field.TimeZoneField
	startsAt   *field.LocalizedDateTimeField
}

// New builds the event service and its field definitions. Definition-time
// checks (identifier column width, relation wiring) run here, so a
// misconfigured deployment fails before serving anything.
func New(repo repository.Event, otl otel.Otel, lookup field.ZoneLookup, capability field.StorageCapability) (Event, error) {
	tzField, err := field.NewTimeZoneField(field.AllowEmpty())
	if err != nil {
		return nil, err
	}

	startsAt, err := field.NewLocalizedDateTimeField(
		model.FieldStartsAt,
		model.TableName,
		field.RelationZone(model.FieldTimezone),
		field.WithLookup(lookup),
	)
	if err != nil {
		return nil, err
	}

	return &serviceImpl{
		repo:       repo,
		otel:       otl,
		capability: capability,
		tzField:    tzField,
		startsAt:   startsAt,
	}, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return "", err
	}

	tz := s.tzField.Coerce(req.Timezone)
	if err = s.tzField.Validate(tz); err != nil {
		return "", err
	}

	instant, err := parseInstant(req.StartsAt)
	if err != nil {
		return "", err
	}

	stored, err := s.startsAt.ToStorage(instant, s.capability)
	if err != nil {
		return "", err
	}

	event := model.Event{
		ID:       uuid.New(),
		Title:    req.Title,
		Timezone: tz,
		StartsAt: stored.Time,
	}
	event.CreatedAt = time.Now()
	event.ModifiedAt = event.CreatedAt

	if err = s.repo.Insert(ctx, event); err != nil {
		return "", err
	}

	return event.ID.String(), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return res, failure.Validation("invalid event id")
	}

	event, err := s.repo.Get(ctx, byID(eventID))
	if err != nil {
		return res, err
	}

	if event.ID == uuid.Nil {
		return res, failure.Validation("event not found")
	}

	localized := s.startsAt.OnRead(ctx, field.Aware(event.StartsAt), &event)
	res.FromModel(event, localized)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, startsAfter string) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplyDefaults()

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if startsAfter != "" {
		instant, err := parseInstant(startsAfter)
		if err != nil {
			return res, err
		}

		// Filter values are normalized to the storage zone, same as writes,
		// so comparisons stay consistent with what the column holds.
		lookupValue := s.startsAt.ToStorageForLookup(instant)

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStartsAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    lookupValue.Time,
			Table:    model.TableName,
		})
	}

	events, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	res.Events = make([]dto.EventResponse, 0, len(events))

	for i := range events {
		localized := s.startsAt.OnRead(ctx, field.Aware(events[i].StartsAt), &events[i])

		var item dto.EventResponse

		item.FromModel(events[i], localized)
		res.Events = append(res.Events, item)
	}

	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	eventID, err := uuid.Parse(id)
	if err != nil {
		return failure.Validation("invalid event id")
	}

	exist, err := s.repo.Exist(ctx, byID(eventID))
	if err != nil {
		return err
	}

	if !exist {
		return failure.Validation("event not found")
	}

	changes := map[string]any{}

	if req.Title != "" {
		changes[model.FieldTitle] = req.Title
	}

	if req.Timezone != "" {
		tz := s.tzField.Coerce(req.Timezone)
		if err = s.tzField.Validate(tz); err != nil {
			return err
		}

		changes[model.FieldTimezone] = s.tzField.StorageValue(tz)
	}

	if req.StartsAt != "" {
		instant, err := parseInstant(req.StartsAt)
		if err != nil {
			return err
		}

		stored, err := s.startsAt.ToStorage(instant, s.capability)
		if err != nil {
			return err
		}

		changes[model.FieldStartsAt] = stored.Time
	}

	if len(changes) == 0 {
		return nil
	}

	changes[constant.FieldModifiedAt] = time.Now()

	return s.repo.Update(ctx, changes, byID(eventID))
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return failure.Validation("invalid event id")
	}

	exist, err := s.repo.Exist(ctx, byID(eventID))
	if err != nil {
		return err
	}

	if !exist {
		return failure.Validation("event not found")
	}

	return s.repo.Delete(ctx, byID(eventID))
}

func byID(id uuid.UUID) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
		},
	}
}

// parseInstant accepts RFC3339 (aware) or a bare wall-clock reading (naive).
func parseInstant(value string) (field.Instant, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return field.Aware(t), nil
	}

	t, err := time.Parse(time.DateTime, value)
	if err != nil {
		return field.Instant{}, failure.Validation("starts_at must be RFC3339 or 'YYYY-MM-DD HH:MM:SS'")
	}

	return field.Naive(t), nil
}
