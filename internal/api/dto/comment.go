package dto

import "time"

type CreateCommentDTO struct {
	Title   string `form:"title" binding:"required" validate:"min=1,max=255"`
	Caption string `form:"caption" binding:"required" validate:"min=1"`
}

type UpdateCommentDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=1,max=255"`
	Caption string `json:"caption" binding:"required" validate:"min=1"`
}

type CommentDTO struct {
	ID          uint64    `json:"id"`
	PostID      uint64    `json:"post_id"`
	Title       string    `json:"title"`
	Caption     string    `json:"caption"`
	Upvotes     int       `json:"upvotes"`
	Downvotes   int       `json:"downvotes"`
	CommentDate time.Time `json:"commentdate"`

	User  *UserSimpleDTO `json:"user,omitempty"`
	Image *PostImageDTO  `json:"image,omitempty"`
}
