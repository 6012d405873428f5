package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mountmix/infras/otel/mocks"
	bookingMocks "mountmix/internal/domains/booking/mocks"
	"mountmix/internal/domains/booking/model"
	"mountmix/internal/domains/booking/model/dto"
	"mountmix/internal/domains/booking/service"
	"mountmix/shared/failure"
	"mountmix/shared/timezone"
)

func ptr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	created := model.Booking{
		ID:          1,
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
		Status:      model.StatusNew,
		CreatedAt:   timezone.Now(),
		UpdatedAt:   timezone.Now(),
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateBookingRequest{
				ClientName:  "Ada Lovelace",
				ClientEmail: "ada@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
						assert.Equal(t, model.StatusNew, booking.Status)
						assert.False(t, booking.CreatedAt.IsZero())
						assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)

						return 1, nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(created, nil)
			},
			wantErr: false,
		},
		{
			name: "insert error",
			req: dto.CreateBookingRequest{
				ClientName:  "Ada Lovelace",
				ClientEmail: "ada@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "load after insert error",
			req: dto.CreateBookingRequest{
				ClientName:  "Ada Lovelace",
				ClientEmail: "ada@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), res.ID)
				assert.Equal(t, model.StatusNew, res.Status)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	bookings := []model.Booking{
		{ID: 2, ClientName: "Grace", ClientEmail: "grace@example.com", Status: model.StatusNew},
		{ID: 1, ClientName: "Ada", ClientEmail: "ada@example.com", Status: model.StatusConfirmed},
	}

	tests := []struct {
		name      string
		status    string
		search    string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:   "no filters",
			status: "",
			search: "",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name:   "status and search filters",
			status: model.StatusNew,
			search: "grace",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings[:1], nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:      "invalid status filter",
			status:    "archived",
			search:    "",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:   "repository error",
			status: "",
			search: "",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), tt.status, tt.search)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestBookingService_GetAll_InvalidStatusIsBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(bookingMocks.NewMockBooking(ctrl), mocks.NewOtel())

	_, err := svc.GetAll(context.Background(), "archived", "")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	booking := model.Booking{
		ID:          1,
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
		Status:      model.StatusNew,
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	respondedAt := timezone.Now().Add(-24 * time.Hour)

	existing := model.Booking{
		ID:          1,
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
		Status:      model.StatusNew,
	}

	responded := existing
	responded.RespondedAt = &respondedAt

	tests := []struct {
		name         string
		req          dto.UpdateBookingRequest
		existing     model.Booking
		expectUpdate bool
		checkUpdates func(t *testing.T, updates map[string]any)
		wantErr      bool
	}{
		{
			name:         "status change",
			req:          dto.UpdateBookingRequest{Status: ptr(model.StatusConfirmed)},
			existing:     existing,
			expectUpdate: true,
			checkUpdates: func(t *testing.T, updates map[string]any) {
				assert.Equal(t, model.StatusConfirmed, updates[model.FieldStatus])
				assert.Contains(t, updates, model.FieldUpdatedAt)
				assert.NotContains(t, updates, model.FieldRespondedAt)
			},
		},
		{
			name:         "response message stamps responded_at",
			req:          dto.UpdateBookingRequest{ResponseMessage: ptr("We would love to host you")},
			existing:     existing,
			expectUpdate: true,
			checkUpdates: func(t *testing.T, updates map[string]any) {
				assert.Equal(t, "We would love to host you", updates[model.FieldResponseMessage])
				assert.Contains(t, updates, model.FieldRespondedAt)
			},
		},
		{
			name:         "response message restamps even when already responded",
			req:          dto.UpdateBookingRequest{ResponseMessage: ptr("Updated proposal attached")},
			existing:     responded,
			expectUpdate: true,
			checkUpdates: func(t *testing.T, updates map[string]any) {
				assert.Contains(t, updates, model.FieldRespondedAt)
			},
		},
		{
			name:         "blank notes clear the column",
			req:          dto.UpdateBookingRequest{InternalNotes: ptr("")},
			existing:     existing,
			expectUpdate: true,
			checkUpdates: func(t *testing.T, updates map[string]any) {
				assert.Contains(t, updates, model.FieldInternalNotes)
				assert.Nil(t, updates[model.FieldInternalNotes])
			},
		},
		{
			name:         "blank response clears without stamping",
			req:          dto.UpdateBookingRequest{ResponseMessage: ptr("")},
			existing:     existing,
			expectUpdate: true,
			checkUpdates: func(t *testing.T, updates map[string]any) {
				assert.Nil(t, updates[model.FieldResponseMessage])
				assert.NotContains(t, updates, model.FieldRespondedAt)
			},
		},
		{
			name:         "mark responded stamps when not yet responded",
			req:          dto.UpdateBookingRequest{MarkResponded: boolPtr(true)},
			existing:     existing,
			expectUpdate: true,
			checkUpdates: func(t *testing.T, updates map[string]any) {
				assert.Contains(t, updates, model.FieldRespondedAt)
			},
		},
		{
			name:         "mark responded keeps the existing stamp",
			req:          dto.UpdateBookingRequest{MarkResponded: boolPtr(true)},
			existing:     responded,
			expectUpdate: false,
		},
		{
			name:         "mark responded false is a no-op",
			req:          dto.UpdateBookingRequest{MarkResponded: boolPtr(false)},
			existing:     existing,
			expectUpdate: false,
		},
		{
			name:         "empty patch returns the record unchanged",
			req:          dto.UpdateBookingRequest{},
			existing:     existing,
			expectUpdate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			svc := service.New(mockRepo, mocks.NewOtel())

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.existing, nil)

			if tt.expectUpdate {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updates map[string]any, _ any) error {
						if tt.checkUpdates != nil {
							tt.checkUpdates(t, updates)
						}

						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.existing, nil)
			}

			res, err := svc.Update(context.Background(), tt.req, tt.existing.ID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.existing.ID, res.ID)
			}
		})
	}
}

func TestBookingService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: ptr(model.StatusConfirmed)}, 99)

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBookingService_Update_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{ID: 1, Status: model.StatusNew}, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("database error"))

	_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: ptr(model.StatusConfirmed)}, 1)

	assert.Error(t, err)
}
