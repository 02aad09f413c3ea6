package kafka

import "time"

// 互动事件类型，与通知类型一一对应
const (
	EventPostComment     = 1
	EventPostUpvote      = 2
	EventPostDownvote    = 3
	EventCommentUpvote   = 4
	EventCommentDownvote = 5
	EventNewFollower     = 6
)

// EngagementEvent 用户互动事件，业务提交后投递
type EngagementEvent struct {
	Type       int       `json:"type"`
	ActorID    uint64    `json:"actor_id"`
	ReceiverID uint64    `json:"receiver_id"`
	PostID     uint64    `json:"post_id,omitempty"`
	CommentID  uint64    `json:"comment_id,omitempty"`
	Content    string    `json:"content"`
	OccurredAt time.Time `json:"occurred_at"`
}
