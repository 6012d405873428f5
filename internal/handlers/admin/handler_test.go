package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mountmix/infras/otel/mocks"
	bookingDto "mountmix/internal/domains/booking/model/dto"
	bookingServiceMocks "mountmix/internal/domains/booking/service/mocks"
	"mountmix/internal/handlers/admin"
	"mountmix/shared/timezone"
)

type passThroughAuth struct{}

func (passThroughAuth) Auth(next http.Handler) http.Handler {
	return next
}

func newRouter(bookingSvc *bookingServiceMocks.MockBooking) chi.Router {
	handler := admin.New(nil, bookingSvc, passThroughAuth{}, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestUpdateBooking_EmptyBodyLeavesBookingUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := timezone.Now()
	unchanged := bookingDto.BookingResponse{
		ID:          1,
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
		Status:      "new",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mockBookingSvc := bookingServiceMocks.NewMockBooking(ctrl)
	mockBookingSvc.EXPECT().
		Update(gomock.Any(), bookingDto.UpdateBookingRequest{}, int64(1)).
		Return(unchanged, nil)

	req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/1", nil)
	rec := httptest.NewRecorder()

	newRouter(mockBookingSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data bookingDto.BookingResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	assert.Equal(t, int64(1), body.Data.ID)
	assert.Equal(t, "new", body.Data.Status)
	assert.Equal(t, unchanged.UpdatedAt.Unix(), body.Data.UpdatedAt.Unix())
}

func TestUpdateBooking_EmptyObjectLeavesBookingUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unchanged := bookingDto.BookingResponse{ID: 1, Status: "new"}

	mockBookingSvc := bookingServiceMocks.NewMockBooking(ctrl)
	mockBookingSvc.EXPECT().
		Update(gomock.Any(), bookingDto.UpdateBookingRequest{}, int64(1)).
		Return(unchanged, nil)

	req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/1", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	newRouter(mockBookingSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateBooking_NonIntegerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingSvc := bookingServiceMocks.NewMockBooking(ctrl)

	req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/abc", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	newRouter(mockBookingSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid booking id")
}
