package admin

import (
	"mountmix/infras/otel"
	adminDto "mountmix/internal/domains/admin/model/dto"
	authDto "mountmix/internal/domains/auth/model/dto"
	authService "mountmix/internal/domains/auth/service"
	bookingDto "mountmix/internal/domains/booking/model/dto"
	bookingService "mountmix/internal/domains/booking/service"
	"mountmix/shared/constant"
	"mountmix/shared/failure"
	"mountmix/shared/validator"
	"mountmix/transport/http/middleware"
	"mountmix/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	authService    authService.Auth
	bookingService bookingService.Booking
	authMiddleware middleware.Auth
	otel           otel.Otel
}

func New(authSvc authService.Auth, bookingSvc bookingService.Booking, authMw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		authService:    authSvc,
		bookingService: bookingSvc,
		authMiddleware: authMw,
		otel:           otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.authMiddleware.Auth)
			protected.Get("/me", handler.Me)
			protected.Get("/bookings", handler.GetBookings)
			protected.Get("/bookings/{id}", handler.GetBookingByID)
			protected.Patch("/bookings/{id}", handler.UpdateBooking)
		})
	})
}

// Login authenticates an admin and issues a bearer token.
// @Summary Admin login
// @Description Authenticate with email and password, returning a bearer token and the admin summary.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body authDto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[authDto.LoginResponse] "Logged in"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := authDto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.authService.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Me returns the authenticated admin's profile.
// @Summary Current admin
// @Description Fetch the profile of the admin owning the bearer token.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[adminDto.AdminResponse] "Admin profile"
// @Failure 401 {object} response.Error
// @Router /api/admin/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	admin, ok := r.Context().Value(constant.ContextKeyAdmin).(adminDto.AdminResponse)
	if !ok {
		err := failure.Unauthorized("Admin not found")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, admin)
}

// GetBookings lists bookings, optionally filtered by status and free-text search.
// @Summary List bookings
// @Description Retrieve all bookings, newest first, optionally filtered by status and by a case-insensitive search over client name, client email and venue location.
// @Tags Admin
// @Produce json
// @Param status query string false "Filter by status (new, in_review, proposal_sent, confirmed, completed, declined)"
// @Param search query string false "Free-text search"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	status := r.URL.Query().Get(constant.RequestParamStatus)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	bookings, err := handler.bookingService.GetAll(ctx, status, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID fetches one booking.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its identifier.
// @Tags Admin
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.bookingService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking patches a booking's status, notes or response.
// @Summary Update a booking
// @Description Patch any subset of status, internal notes, response message and the mark-responded flag.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body bookingDto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := bookingDto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.bookingService.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

func bookingID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("Invalid booking id") //nolint:wrapcheck
	}

	return id, nil
}
