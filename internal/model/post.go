package model

import (
	"time"
)

type Post struct {
	ID      uint64  `gorm:"primaryKey"`
	UserID  uint64  `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title   string  `gorm:"type:varchar(255);not null" json:"title"`
	Caption string  `gorm:"not null" json:"caption"`
	TopicID *uint64 `gorm:"index:idx_topic_id" json:"topic_id"`

	// 冗余计数列，由同步任务从投票行刷新，仅用于列表排序与筛选
	Upvotes   int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes int       `gorm:"not null;default:0" json:"downvotes"`
	PostDate  time.Time `gorm:"column:postdate;not null;autoCreateTime;index:idx_postdate" json:"postdate"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	User     User        `gorm:"foreignKey:UserID;references:ID"`
	Topic    *Topic      `gorm:"foreignKey:TopicID;references:ID"`
	Images   []PostImage `gorm:"foreignKey:PostID;references:ID"`
	Comments []Comment   `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
