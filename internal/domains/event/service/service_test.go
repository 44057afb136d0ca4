package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tzfield/field"
	fieldMocks "tzfield/field/mocks"
	"tzfield/infras/otel/mocks"
	eventMocks "tzfield/internal/domains/event/mocks"
	"tzfield/internal/domains/event/model"
	"tzfield/internal/domains/event/model/dto"
	"tzfield/internal/domains/event/service"
	gDto "tzfield/shared/dto"
)

func acceptAll() field.StorageCapability {
	return field.CapabilityFunc(func(field.Instant) bool { return true })
}

func TestEventService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockLookup := fieldMocks.NewMockZoneLookup(ctrl)
	mockOtel := mocks.NewOtel()

	svc, err := service.New(mockRepo, mockOtel, mockLookup, acceptAll())
	assert.NoError(t, err)

	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation with aware starts_at",
			req: dto.CreateEventRequest{
				Title:    "Launch Review",
				Timezone: "Asia/Tokyo",
				StartsAt: "2021-03-15T10:00:00Z",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful creation with naive starts_at",
			req: dto.CreateEventRequest{
				Title:    "Launch Review",
				StartsAt: "2021-03-15 10:00:00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "missing title",
			req: dto.CreateEventRequest{
				StartsAt: "2021-03-15T10:00:00Z",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "unknown timezone",
			req: dto.CreateEventRequest{
				Title:    "Launch Review",
				Timezone: "Not/A_Zone",
				StartsAt: "2021-03-15T10:00:00Z",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed starts_at",
			req: dto.CreateEventRequest{
				Title:    "Launch Review",
				StartsAt: "15/03/2021 10:00",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateEventRequest{
				Title:    "Launch Review",
				StartsAt: "2021-03-15T10:00:00Z",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Create_StorageRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockLookup := fieldMocks.NewMockZoneLookup(ctrl)

	rejectAll := field.CapabilityFunc(func(field.Instant) bool { return false })

	svc, err := service.New(mockRepo, mocks.NewOtel(), mockLookup, rejectAll)
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateEventRequest{
		Title:    "Launch Review",
		StartsAt: "2021-03-15T10:00:00Z",
	})

	assert.Error(t, err)
}

func TestEventService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockLookup := fieldMocks.NewMockZoneLookup(ctrl)

	svc, err := service.New(mockRepo, mocks.NewOtel(), mockLookup, acceptAll())
	assert.NoError(t, err)

	eventID := uuid.New()
	storedEvent := model.Event{
		ID:       eventID,
		Title:    "Launch Review",
		Timezone: "Asia/Tokyo",
		StartsAt: time.Date(2021, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		id           string
		setupMock    func()
		wantErr      bool
		wantStartsAt string
		wantTimezone string
	}{
		{
			name:      "invalid id",
			id:        "not-a-uuid",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			id:   eventID.String(),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "event not found",
			id:   eventID.String(),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr: true,
		},
		{
			name: "starts_at is localized to the record's timezone",
			id:   eventID.String(),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedEvent, nil)
				mockLookup.EXPECT().
					ZoneName(gomock.Any(), model.TableName, model.FieldID, eventID, model.FieldTimezone).
					Return("Asia/Tokyo", nil)
			},
			wantErr:      false,
			wantStartsAt: "2021-03-15T19:00:00+09:00",
			wantTimezone: "Asia/Tokyo",
		},
		{
			name: "lookup failure falls back to the storage zone",
			id:   eventID.String(),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedEvent, nil)
				mockLookup.EXPECT().
					ZoneName(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("connection refused"))
			},
			wantErr:      false,
			wantStartsAt: "2021-03-15T10:00:00Z",
			wantTimezone: "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, eventID.String(), res.ID)
			assert.Equal(t, tt.wantStartsAt, res.StartsAt)
			assert.Equal(t, tt.wantTimezone, res.Timezone)
		})
	}
}

func TestEventService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockLookup := fieldMocks.NewMockZoneLookup(ctrl)

	svc, err := service.New(mockRepo, mocks.NewOtel(), mockLookup, acceptAll())
	assert.NoError(t, err)

	events := []model.Event{
		{
			ID:       uuid.New(),
			Title:    "Launch Review",
			Timezone: "Asia/Tokyo",
			StartsAt: time.Date(2021, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:       uuid.New(),
			Title:    "Retro",
			StartsAt: time.Date(2021, 3, 16, 10, 0, 0, 0, time.UTC),
		},
	}

	t.Run("successful listing", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(events, nil)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockLookup.EXPECT().
			ZoneName(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("Asia/Tokyo", nil).
			Times(2)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "")

		assert.NoError(t, err)
		assert.Len(t, res.Events, 2)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, "2021-03-15T19:00:00+09:00", res.Events[0].StartsAt)
	})

	t.Run("starts_after filter is normalized to the storage zone", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Event, error) {
				assert.Len(t, filter.Filters, 1)

				f, ok := filter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, model.FieldStartsAt, f.Field)
				assert.Equal(t, gDto.FilterOperatorGreaterEq, f.Operator)

				value, ok := f.Value.(time.Time)
				assert.True(t, ok)
				assert.True(t, value.Equal(time.Date(2021, 3, 15, 10, 0, 0, 0, time.UTC)))

				return nil, nil
			})
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, "2021-03-15 10:00:00")

		assert.NoError(t, err)
		assert.Empty(t, res.Events)
	})

	t.Run("malformed starts_after", func(t *testing.T) {
		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, "yesterday")

		assert.Error(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, "")

		assert.Error(t, err)
	})
}

func TestEventService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockLookup := fieldMocks.NewMockZoneLookup(ctrl)

	svc, err := service.New(mockRepo, mocks.NewOtel(), mockLookup, acceptAll())
	assert.NoError(t, err)

	eventID := uuid.New()

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateEventRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update of all fields",
			id:   eventID.String(),
			req: dto.UpdateEventRequest{
				Title:    "Rescheduled Review",
				Timezone: "Europe/Paris",
				StartsAt: "2021-03-16T10:00:00Z",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, changes map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Rescheduled Review", changes[model.FieldTitle])
						assert.Equal(t, "Europe/Paris", changes[model.FieldTimezone])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "empty request is a no-op",
			id:   eventID.String(),
			req:  dto.UpdateEventRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "event not found",
			id:   eventID.String(),
			req: dto.UpdateEventRequest{
				Title: "Rescheduled Review",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid id",
			id:   "not-a-uuid",
			req: dto.UpdateEventRequest{
				Title: "Rescheduled Review",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "unknown timezone",
			id:   eventID.String(),
			req: dto.UpdateEventRequest{
				Timezone: "Not/A_Zone",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed starts_at",
			id:   eventID.String(),
			req: dto.UpdateEventRequest{
				StartsAt: "tomorrow",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockLookup := fieldMocks.NewMockZoneLookup(ctrl)

	svc, err := service.New(mockRepo, mocks.NewOtel(), mockLookup, acceptAll())
	assert.NoError(t, err)

	eventID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), eventID.String()))
	})

	t.Run("invalid id", func(t *testing.T) {
		assert.Error(t, svc.Delete(context.Background(), "not-a-uuid"))
	})

	t.Run("event not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Delete(context.Background(), eventID.String()))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		assert.Error(t, svc.Delete(context.Background(), eventID.String()))
	})
}
