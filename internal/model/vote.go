package model

import (
	"time"
)

// 投票以 (user, target) 存在性行建模：存在即已投，撤销即删除。
// 同一用户对同一目标的同极性投票由复合主键保证至多一行；
// 上下两票分属独立表，互不排斥。

type PostUpvote struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostUpvote) TableName() string {
	return "post_upvotes"
}

type PostDownvote struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostDownvote) TableName() string {
	return "post_downvotes"
}

type CommentUpvote struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	CommentID uint64    `gorm:"primaryKey;index:idx_comment_id" json:"commentId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CommentUpvote) TableName() string {
	return "comment_upvotes"
}

type CommentDownvote struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	CommentID uint64    `gorm:"primaryKey;index:idx_comment_id" json:"commentId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CommentDownvote) TableName() string {
	return "comment_downvotes"
}
