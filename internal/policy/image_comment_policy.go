package policy

import "Ripple/internal/model"

// ImageCommentPolicy 评论配图只允许评论作者本人上传
type ImageCommentPolicy struct{}

func NewImageCommentPolicy() *ImageCommentPolicy {
	return &ImageCommentPolicy{}
}

func (p *ImageCommentPolicy) CanCreate(user *model.User, comment *model.Comment) bool {
	if user == nil || comment == nil {
		return false
	}
	return user.ID == comment.UserID
}
