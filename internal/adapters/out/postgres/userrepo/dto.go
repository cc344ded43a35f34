package userrepo

import (
	"github.com/google/uuid"
)

// UserDTO is one row of the users table. Emails are stored lower-case.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"size:320;not null;uniqueIndex"`
	Name  string
	Role  string `gorm:"size:32"`
}

func (UserDTO) TableName() string {
	return "users"
}
