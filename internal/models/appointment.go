package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// "<userID>-<unix ms>", assigned at creation.
	PublicID string `gorm:"size:40;uniqueIndex;not null" json:"public_id"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	// Snapshot of the profile at creation time. Later profile edits do
	// not rewrite history.
	Name    string  `gorm:"size:100" json:"name"`
	Phone   string  `gorm:"size:20" json:"phone"`
	Vehicle Vehicle `gorm:"embedded;embeddedPrefix:vehicle_" json:"vehicle"`

	Date   string `gorm:"size:10;not null" json:"date"`
	Time   string `gorm:"size:5;not null" json:"time"`
	Reason string `gorm:"type:text;not null" json:"reason"`

	Status      string     `gorm:"size:20;default:'pending'" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
