// Package policy 资源访问控制判定，纯函数，不触库
package policy

import "Ripple/internal/model"

type PostPolicy struct{}

func NewPostPolicy() *PostPolicy {
	return &PostPolicy{}
}

// CanView 帖子对所有访客可见，包括未登录用户
func (p *PostPolicy) CanView(_ *model.User, _ *model.Post) bool {
	return true
}

func (p *PostPolicy) CanCreate(user *model.User) bool {
	return user != nil && !user.Blocked
}

// CanUpdate 仅作者本人可编辑
func (p *PostPolicy) CanUpdate(user *model.User, post *model.Post) bool {
	if user == nil || post == nil {
		return false
	}
	return user.ID == post.UserID
}

// CanDelete 作者本人或管理员可删除
func (p *PostPolicy) CanDelete(user *model.User, post *model.Post) bool {
	if user == nil || post == nil {
		return false
	}
	return user.ID == post.UserID || user.IsAdmin
}
