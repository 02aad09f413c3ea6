package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserBan           = errors.New("用户已被封禁")
	ErrUserExist         = errors.New("邮箱已注册")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrUsernameReserved  = errors.New("用户名不可用")
	ErrUserAnonymized    = errors.New("账户已注销")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrTopicNotFound     = errors.New("话题不存在")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	ErrFileTooLarge      = errors.New("文件超过大小限制")
	ErrUserFollowSelf    = errors.New("用户不能关注自己")
	ErrRecoveryInvalid   = errors.New("找回密码链接无效或已过期")
	ErrRecoveryThrottled = errors.New("操作过于频繁，请稍后重试")
	ErrInboxNotFound     = errors.New("通知不存在")
	ErrPostHasComments   = errors.New("帖子已有评论，无法删除")
	ErrPostHasVotes      = errors.New("帖子已有投票，无法删除")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserBan:           Unauthorized,
	ErrUserExist:         BadRequest,
	ErrUserUsernameExist: BadRequest,
	ErrUsernameReserved:  BadRequest,
	ErrUserAnonymized:    Unauthorized,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrTopicNotFound:     NotFound,
	ErrFileNotSupported:  BadRequest,
	ErrFileTooLarge:      BadRequest,
	ErrUserFollowSelf:    BadRequest,
	ErrRecoveryInvalid:   BadRequest,
	ErrRecoveryThrottled: BadRequest,
	ErrInboxNotFound:     NotFound,
	ErrPostHasComments:   Conflict,
	ErrPostHasVotes:      Conflict,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
