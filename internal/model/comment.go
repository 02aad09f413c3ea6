package model

import (
	"time"
)

type Comment struct {
	ID      uint64 `gorm:"primaryKey"`
	PostID  uint64 `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID  uint64 `gorm:"not null" json:"user_id"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Caption string `gorm:"type:varchar(1000);not null" json:"caption"`

	Upvotes     int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes   int       `gorm:"not null;default:0" json:"downvotes"`
	CommentDate time.Time `gorm:"column:commentdate;not null;autoCreateTime" json:"commentdate"`
	UpdatedAt   time.Time `json:"updated_at"`

	User  User          `gorm:"foreignKey:UserID;references:ID"`
	Image *CommentImage `gorm:"foreignKey:CommentID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
