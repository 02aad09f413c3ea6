package model

import (
	"time"
)

type CommentImage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	CommentID uint64    `gorm:"not null;uniqueIndex:idx_comment_id" json:"comment_id"`
	MimeType  string    `gorm:"type:varchar(64);not null" json:"mime_type"`
	ImageURL  string    `gorm:"type:varchar(512);not null" json:"image_url"`
	Width     int       `gorm:"not null;default:0" json:"width"`
	Height    int       `gorm:"not null;default:0" json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentImage) TableName() string {
	return "comment_images"
}
