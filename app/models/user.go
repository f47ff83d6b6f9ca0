package models

import "time"

// User is the single persisted entity. Rows are created at signup and
// never updated or deleted afterwards.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:500;not null" json:"username"`
	PasswordHash string    `gorm:"size:96;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
