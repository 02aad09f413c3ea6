package dto

import "time"

type CreatePostDTO struct {
	Title   string `form:"title" binding:"required" validate:"min=1,max=255"`
	Caption string `form:"caption" binding:"required" validate:"min=1"`
	Topic   string `form:"topic"`
}

type UpdatePostDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=1,max=255"`
	Caption string `json:"caption" binding:"required" validate:"min=1"`
}

type PostImageDTO struct {
	ID       uint64 `json:"id"`
	MimeType string `json:"mime_type"`
	ImageURL string `json:"image_url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// PostListDTO 帖子列表响应，附带调用者已关注的话题 id 集合
type PostListDTO struct {
	Posts            []*PostDTO `json:"posts"`
	FollowedTopicIDs []uint64   `json:"followed_topic_ids"`
}

type PostDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	PostDate  time.Time `json:"postdate"`
	UpdatedAt time.Time `json:"updated_at"`

	User   *UserSimpleDTO  `json:"user,omitempty"`
	Topic  *TopicDTO       `json:"topic,omitempty"`
	Images []*PostImageDTO `json:"images"`

	Comments []*CommentDTO `json:"comments,omitempty"`
}
