package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type InboxHandler struct {
	inboxSvc service.InboxService
}

func NewInboxHandler(inboxSvc service.InboxService) *InboxHandler {
	return &InboxHandler{
		inboxSvc: inboxSvc,
	}
}

func (s *InboxHandler) List(c *gin.Context) {
	var queryDTO dto.InboxQueryDTO
	err := c.ShouldBindQuery(&queryDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	messages, err := s.inboxSvc.GetNotifications(c.Request.Context(), c.GetUint64("user_id"), &queryDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *InboxHandler) MarkAsRead(c *gin.Context) {
	msgID := c.Param("msg_id")
	if msgID == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err := s.inboxSvc.MarkAsRead(c.Request.Context(), c.GetUint64("user_id"), msgID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InboxHandler) MarkAllAsRead(c *gin.Context) {
	err := s.inboxSvc.MarkAllAsRead(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InboxHandler) UnreadCount(c *gin.Context) {
	count, err := s.inboxSvc.GetUnreadCount(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"unread": count})
}
