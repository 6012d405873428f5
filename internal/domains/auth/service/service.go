package service

import (
	"context"
	"fmt"
	"mountmix/infras/jwt"
	"mountmix/infras/otel"
	adminRepo "mountmix/internal/domains/admin/repository"
	adminService "mountmix/internal/domains/admin/service"
	"mountmix/internal/domains/auth/model/dto"
	"mountmix/shared/constant"
	"mountmix/shared/failure"
	"mountmix/shared/password"

	"github.com/rs/zerolog/log"
)

// invalidCredentials deliberately does not distinguish an unknown email from
// a wrong password, to avoid account enumeration.
const invalidCredentials = "Invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	adminRepo    adminRepo.Admin
	adminService adminService.Admin
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(adminRepository adminRepo.Admin, adminSvc adminService.Admin, otl otel.Otel, jwtSvc jwt.JWT) Auth {
	return &serviceImpl{
		adminRepo:    adminRepository,
		adminService: adminSvc,
		otel:         otl,
		jwtService:   jwtSvc,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	// A fresh database must have a login-able account on the first attempt.
	if err = s.adminService.EnsureDefaultAdmin(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ensure default admin")

		return res, fmt.Errorf("failed to ensure default admin: %w", err)
	}

	admin, err := s.adminRepo.Get(ctx, adminRepo.FilterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up admin")

		return res, fmt.Errorf("failed to look up admin: %w", err)
	}

	if admin.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, admin.PasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	token, err := s.jwtService.IssueAdminToken(admin.ID, admin.Email, admin.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")

		return res, fmt.Errorf("failed to issue token: %w", err)
	}

	res.Token = token
	res.Admin.FromModel(admin)

	return res, nil
}
