package model

import (
	"time"
)

type User struct {
	ID       uint64  `gorm:"primaryKey"`
	Name     string  `gorm:"type:varchar(250);not null"`
	Username string  `gorm:"type:varchar(250);not null;uniqueIndex:idx_username"`
	Email    string  `gorm:"type:varchar(250);not null;uniqueIndex:idx_email"`
	Password string  `gorm:"type:varchar(255);not null"`
	Blocked  bool    `gorm:"type:tinyint(1);not null;default:0"`
	IsAdmin  bool    `gorm:"type:tinyint(1);not null;default:0"`
	Status   int8    `gorm:"not null;default:0"` // 0:正常, 1:已注销(匿名化)
	Birthday *time.Time
	Gender   *string `gorm:"type:varchar(255)"`
	Country  *string `gorm:"type:varchar(255)"`
	URL      *string `gorm:"type:varchar(255)"`

	AvatarURL *string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
