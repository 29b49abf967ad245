package domain

import "time"

type User struct {
	ID                int64      `json:"id" gorm:"primaryKey"`
	Name              string     `json:"name" gorm:"not null"`
	Email             string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash      string     `json:"-" gorm:"column:password_hash;not null"`
	Gender            string     `json:"gender,omitempty"`
	ProfilePicture    string     `json:"profile_picture,omitempty"`
	PasswordUpdatedAt *time.Time `json:"-"`
	AdminID           *int64     `json:"admin_id,omitempty" gorm:"index"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

type Admin struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Admin) TableName() string { return "admins" }
