package bootstrap

import (
	"context"
	"fmt"
	"mountmix/config"
	"mountmix/helper"
	adminService "mountmix/internal/domains/admin/service"
)

// Bootstrap prepares the store before the server starts accepting requests:
// schema migrations, then the idempotent default-admin seed.
type Bootstrap struct {
	cfg          *config.Config
	adminService adminService.Admin
}

func New(cfg *config.Config, adminSvc adminService.Admin) *Bootstrap {
	return &Bootstrap{
		cfg:          cfg,
		adminService: adminSvc,
	}
}

func (b *Bootstrap) Run(ctx context.Context) error {
	if b.cfg.DB.SQLite.AutoMigrate {
		if err := helper.Up(b.cfg); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	if err := b.adminService.EnsureDefaultAdmin(ctx); err != nil {
		return fmt.Errorf("seeding default admin: %w", err)
	}

	return nil
}
