package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the login account; professors and students link to it.
type User struct {
	UserID      int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email       string     `gorm:"column:email;unique" json:"email"`
	RoleID      int        `gorm:"column:role_id" json:"role_id"`
	ProfessorID *uuid.UUID `gorm:"column:professor_id;type:char(36)" json:"professor_id,omitempty"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string { return "users" }
