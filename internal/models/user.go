package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a remote API account. Passwords are bcrypt hashes; the plaintext
// demo directory used by the workspace login never reaches this table.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string         `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `gorm:"size:255" json:"name"`
	Role      string         `gorm:"size:20;default:'vente'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
