package dto

import "time"

type UserDTO struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Blocked   bool       `json:"blocked"`
	IsAdmin   bool       `json:"is_admin"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	Country   *string    `json:"country,omitempty"`
	URL       *string    `json:"url,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	// IsFollowed 当前登录用户是否已关注该用户
	IsFollowed bool `json:"is_followed"`
}

// UpdateUserDTO 资料编辑，仅更新出现的字段
type UpdateUserDTO struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=255"`
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender   *string `json:"gender,omitempty"`
	Country  *string `json:"country,omitempty"`
	URL      *string `json:"url,omitempty" validate:"omitempty,url"`
}

type UserSimpleDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
