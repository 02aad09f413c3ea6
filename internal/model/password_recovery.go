package model

import "time"

type PasswordRecovery struct {
	Token          string    `gorm:"type:varchar(64);primaryKey" json:"token"`
	UserID         uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	ExpirationDate time.Time `gorm:"not null" json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
}

func (PasswordRecovery) TableName() string {
	return "password_recoveries"
}
