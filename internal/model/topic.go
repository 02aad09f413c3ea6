package model

import "time"

type Topic struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"type:varchar(255);not null;uniqueIndex:idx_topic_title" json:"title"`
	CreatedAt time.Time
}

func (Topic) TableName() string {
	return "topics"
}
