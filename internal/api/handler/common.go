package handler

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径参数中的数字 ID
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}

// currentUser 加载当前登录用户，要求前置 AuthMiddleware
func currentUser(c *gin.Context, userSvc service.UserService) (*model.User, bool) {
	uid := c.GetUint64("user_id")
	user, err := userSvc.GetUserModel(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if user == nil {
		response.Fail(c, response.Unauthorized, service.ErrUserNotFound.Error())
		return nil, false
	}
	return user, true
}

// optionalUser 加载可选登录用户，未登录返回 nil
func optionalUser(c *gin.Context, userSvc service.UserService) (*model.User, error) {
	uid := c.GetUint64("user_id")
	if uid == 0 {
		return nil, nil
	}
	return userSvc.GetUserModel(c.Request.Context(), uid)
}
