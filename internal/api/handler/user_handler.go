package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/minio"
	"Ripple/internal/pkg/response"
	"Ripple/internal/pkg/util"
	"Ripple/internal/policy"
	"Ripple/internal/service"
	"bytes"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userSvc    service.UserService
	userPolicy *policy.UserPolicy
}

func NewUserHandler(userSvc service.UserService, userPolicy *policy.UserPolicy) *UserHandler {
	return &UserHandler{
		userSvc:    userSvc,
		userPolicy: userPolicy,
	}
}

func (s *UserHandler) GetHome(c *gin.Context) {
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	userDTO, err := s.userSvc.GetUserHome(c.Request.Context(), targetID, c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

func (s *UserHandler) UpdateInfo(c *gin.Context) {
	var updateDTO dto.UpdateUserDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	err = s.userSvc.UpdateUserInfo(c.Request.Context(), c.GetUint64("user_id"), &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	meta, err := util.ValidateImage(fileHeader)
	if err != nil {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	uid := c.GetUint64("user_id")
	objectName := fmt.Sprintf("avatars/%d/%s", uid, uuid.NewString())
	if _, err = minio.UploadFile(c.Request.Context(), objectName, bytes.NewReader(meta.Data), meta.Size, meta.MimeType); err != nil {
		response.Error(c, err)
		return
	}

	avatarURL := minio.GetPublicURL(objectName)
	if err = s.userSvc.UpdateAvatar(c.Request.Context(), uid, avatarURL); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{"avatar_url": avatarURL})
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	var changeDTO dto.ChangePasswordDTO
	err := c.ShouldBind(&changeDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&changeDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	err = s.userSvc.ChangePassword(c.Request.Context(), c.GetUint64("user_id"), &changeDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 改密后当前 Token 立即失效
	if err = s.userSvc.Logout(c.Request.Context(), c.GetString("token")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Block(c *gin.Context) {
	target, ok := s.loadTargetForModeration(c)
	if !ok {
		return
	}
	if err := s.userSvc.BlockUser(c.Request.Context(), target.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Unblock(c *gin.Context) {
	target, ok := s.loadTargetForModeration(c)
	if !ok {
		return
	}
	if err := s.userSvc.UnblockUser(c.Request.Context(), target.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Anonymize(c *gin.Context) {
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	actor, ok := currentUser(c, s.userSvc)
	if !ok {
		return
	}
	target, err := s.userSvc.GetUserModel(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if target == nil {
		response.Error(c, service.ErrUserNotFound)
		return
	}
	if !s.userPolicy.CanAnonymize(actor, target) {
		response.Error(c, service.UnauthorizedError)
		return
	}

	if err = s.userSvc.AnonymizeUser(c.Request.Context(), targetID); err != nil {
		response.Error(c, err)
		return
	}

	// 注销自己的账户后顺带吊销当前 Token
	if actor.ID == targetID {
		_ = s.userSvc.Logout(c.Request.Context(), c.GetString("token"))
	}
	response.Success(c, nil)
}

func (s *UserHandler) loadTargetForModeration(c *gin.Context) (*model.User, bool) {
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return nil, false
	}
	actor, ok := currentUser(c, s.userSvc)
	if !ok {
		return nil, false
	}
	target, err := s.userSvc.GetUserModel(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if target == nil {
		response.Error(c, service.ErrUserNotFound)
		return nil, false
	}
	if !s.userPolicy.CanBlock(actor, target) {
		response.Error(c, service.UnauthorizedError)
		return nil, false
	}
	return target, true
}
