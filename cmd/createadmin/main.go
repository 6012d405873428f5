package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"mountmix/config"
	"mountmix/helper"
	"mountmix/infras/otel"
	"mountmix/infras/sqlite"
	adminRepository "mountmix/internal/domains/admin/repository"
	adminService "mountmix/internal/domains/admin/service"
)

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("all of -name, -email and -password are required")
	}

	cfg := config.Get()

	if err := helper.Up(cfg); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	conn := sqlite.New(cfg)
	otl := otel.New(cfg)

	service := adminService.New(adminRepository.New(conn, otl), cfg, otl)

	admin, err := service.CreateAdmin(context.Background(), *name, *email, *password)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("Admin created: %s <%s> (id %d)\n", admin.Name, admin.Email, admin.ID)
}
