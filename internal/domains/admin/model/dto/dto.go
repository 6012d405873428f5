package dto

import (
	"mountmix/internal/domains/admin/model"
	"time"
)

// AdminResponse is the public admin summary. It never carries the password hash.
type AdminResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *AdminResponse) FromModel(mod model.Admin) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.CreatedAt = mod.CreatedAt
}
