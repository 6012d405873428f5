package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mountmix/config"
	"mountmix/infras/otel"
	"mountmix/internal/domains/admin/model"
	"mountmix/internal/domains/admin/model/dto"
	"mountmix/internal/domains/admin/repository"
	"mountmix/shared"
	"mountmix/shared/constant"
	"mountmix/shared/failure"
	"mountmix/shared/password"
	"mountmix/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

type Admin interface {
	EnsureDefaultAdmin(ctx context.Context) error
	CreateAdmin(ctx context.Context, name, email, plainPassword string) (dto.AdminResponse, error)
	GetByID(ctx context.Context, id int64) (dto.AdminResponse, error)
}

type serviceImpl struct {
	repo repository.Admin
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Admin, cfg *config.Config, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// EnsureDefaultAdmin creates the configured seed admin if no row with its
// email exists. Idempotent; invoked at process start and again before login
// so a fresh database always has a login-able account.
func (s *serviceImpl) EnsureDefaultAdmin(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureDefaultAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	seed := s.cfg.Seed.Admin

	exists, err := s.repo.Exist(ctx, repository.FilterByEmail(seed.Email))
	if err != nil {
		return fmt.Errorf("failed to check if default admin exists: %w", err)
	}

	if exists {
		return nil
	}

	hash, err := password.Hash(seed.Password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	if _, err = s.repo.Insert(ctx, model.Admin{
		Name:         seed.Name,
		Email:        seed.Email,
		PasswordHash: hash,
		CreatedAt:    timezone.Now(),
	}); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Info().Str("email", seed.Email).Msg("Created default admin account. Please change the password.")

	return nil
}

// CreateAdmin inserts a new administrator, refusing duplicate emails. The
// email is stored trimmed and lower-cased so the case-folded login lookup
// always matches it.
func (s *serviceImpl) CreateAdmin(ctx context.Context, name, email, plainPassword string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.repo.Exist(ctx, repository.FilterByEmail(email))
	if err != nil {
		return res, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already registered") //nolint:wrapcheck
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.Insert(ctx, model.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    timezone.Now(),
	})
	if err != nil {
		return res, fmt.Errorf("failed to create admin: %w", err)
	}

	admin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to load created admin: %w", err)
	}

	res.FromModel(admin)

	return res, nil
}

// GetByID resolves an admin id, as decoded from a token subject, back to a
// live admin record.
func (s *serviceImpl) GetByID(ctx context.Context, id int64) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		return res, failure.NotFound("admin not found") //nolint:wrapcheck
	}

	res.FromModel(admin)

	return res, nil
}
