package model

import (
	"time"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldCreatedAt    = "created_at"
)

// Admin is one administrator row. The password is only ever stored as a
// bcrypt hash.
type Admin struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
