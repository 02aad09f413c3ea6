package dto

import "time"

type InboxQueryDTO struct {
	Limit  int64 `form:"limit"`
	Offset int64 `form:"offset"`
}

type InboxMessageDTO struct {
	ID        string    `json:"id"`
	ActorID   uint64    `json:"actor_id"`
	Type      int       `json:"type"`
	PostID    uint64    `json:"post_id,omitempty"`
	CommentID uint64    `json:"comment_id,omitempty"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
