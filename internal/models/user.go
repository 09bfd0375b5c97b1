package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Name         string `gorm:"size:100" json:"name"`
	Phone        string `gorm:"size:20" json:"phone"`

	// Written at signup/login for display only. Authorization always
	// re-derives the role from the email.
	Role string `gorm:"size:20;default:'customer'" json:"role"`

	Vehicle Vehicle `gorm:"embedded;embeddedPrefix:vehicle_" json:"vehicle"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
