package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 通知类型
const (
	InboxTypePostComment     = 1 // 帖子被评论
	InboxTypePostUpvote      = 2 // 帖子被点赞
	InboxTypePostDownvote    = 3 // 帖子被点踩
	InboxTypeCommentUpvote   = 4 // 评论被点赞
	InboxTypeCommentDownvote = 5 // 评论被点踩
	InboxTypeNewFollower     = 6 // 获得新粉丝
)

// InboxModel 用户站内通知
type InboxModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiver_id"`
	ActorID    uint64             `bson:"actor_id" json:"actor_id"`
	Type       int                `bson:"type" json:"type"`
	PostID     uint64             `bson:"post_id,omitempty" json:"post_id,omitempty"`
	CommentID  uint64             `bson:"comment_id,omitempty" json:"comment_id,omitempty"`
	Content    string             `bson:"content" json:"content"`
	IsRead     bool               `bson:"is_read" json:"is_read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
