package middleware

import (
	"context"
	"errors"
	"mountmix/infras/jwt"
	"mountmix/infras/otel"
	adminService "mountmix/internal/domains/admin/service"
	"mountmix/shared/constant"
	"mountmix/shared/failure"
	"mountmix/transport/http/response"
	"net/http"
)

// Auth guards the admin endpoints with bearer-token authentication.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService   jwt.JWT
	adminService adminService.Admin
	otel         otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, adminSvc adminService.Admin, otl otel.Otel) Auth {
	return &authImpl{
		jwtService:   jwtService,
		adminService: adminSvc,
		otel:         otl,
	}
}

// Auth validates the bearer token and re-resolves its subject to a live admin
// row, so a token for a deleted admin is rejected. The resolved identity is
// attached to the request context for downstream handlers.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		ctx, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Malformed authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		adminID, err := claims.AdminID()
		if err != nil {
			err := failure.Unauthorized("Invalid token claims")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		admin, err := m.adminService.GetByID(ctx, adminID)
		if err != nil {
			err := failure.Unauthorized("Admin not found")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyAdminID, admin.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminEmail, admin.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminName, admin.Name)
		ctx = context.WithValue(ctx, constant.ContextKeyAdmin, admin)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
