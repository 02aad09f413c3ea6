package es

import "time"

// PostES 写入 ES 的帖子文档
type PostES struct {
	ID       uint64    `json:"id"`
	UserID   uint64    `json:"user_id"`
	Title    string    `json:"title"`
	Caption  string    `json:"caption"`
	TopicID  uint64    `json:"topic_id,omitempty"`
	PostDate time.Time `json:"postdate"`
}
