package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created once at signup and read on every login.
// Userid is the login handle (case-sensitive, immutable); Password holds
// the bcrypt digest and never leaves the server.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Userid    string    `gorm:"column:userid;size:255;not null;uniqueIndex" json:"userid"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:50;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
