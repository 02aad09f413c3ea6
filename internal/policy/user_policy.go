package policy

import "Ripple/internal/model"

type UserPolicy struct{}

func NewUserPolicy() *UserPolicy {
	return &UserPolicy{}
}

// CanView 个人主页公开
func (p *UserPolicy) CanView(_ *model.User, _ *model.User) bool {
	return true
}

// CanUpdate 仅本人可改资料
func (p *UserPolicy) CanUpdate(actor *model.User, target *model.User) bool {
	if actor == nil || target == nil {
		return false
	}
	return actor.ID == target.ID
}

// CanBlock 管理员可封禁他人，不可封禁自己
func (p *UserPolicy) CanBlock(actor *model.User, target *model.User) bool {
	if actor == nil || target == nil {
		return false
	}
	return actor.IsAdmin && actor.ID != target.ID
}

// CanAnonymize 本人或管理员可注销账户
func (p *UserPolicy) CanAnonymize(actor *model.User, target *model.User) bool {
	if actor == nil || target == nil {
		return false
	}
	return actor.ID == target.ID || actor.IsAdmin
}
