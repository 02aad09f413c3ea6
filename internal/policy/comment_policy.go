package policy

import "Ripple/internal/model"

type CommentPolicy struct{}

func NewCommentPolicy() *CommentPolicy {
	return &CommentPolicy{}
}

func (p *CommentPolicy) CanView(_ *model.User, _ *model.Comment) bool {
	return true
}

func (p *CommentPolicy) CanList(user *model.User) bool {
	return user != nil
}

func (p *CommentPolicy) CanCreate(user *model.User) bool {
	return user != nil && !user.Blocked
}

func (p *CommentPolicy) CanUpdate(user *model.User, comment *model.Comment) bool {
	if user == nil || comment == nil {
		return false
	}
	return user.ID == comment.UserID
}

func (p *CommentPolicy) CanDelete(user *model.User, comment *model.Comment) bool {
	if user == nil || comment == nil {
		return false
	}
	return user.ID == comment.UserID || user.IsAdmin
}
