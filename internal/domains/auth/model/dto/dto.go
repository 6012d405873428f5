package dto

import (
	adminDto "mountmix/internal/domains/admin/model/dto"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Normalize trims and lower-cases the login email to match stored admins.
func (l *LoginRequest) Normalize() {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
}

type LoginResponse struct {
	Token string                 `json:"token"`
	Admin adminDto.AdminResponse `json:"admin"`
}
