package handler

import (
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{
		followSvc: followSvc,
	}
}

func (s *FollowHandler) FollowUser(c *gin.Context) {
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	status, err := s.followSvc.FollowUser(c.Request.Context(), c.GetUint64("user_id"), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

func (s *FollowHandler) UnfollowUser(c *gin.Context) {
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	status, err := s.followSvc.UnfollowUser(c.Request.Context(), c.GetUint64("user_id"), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

func (s *FollowHandler) FollowTopic(c *gin.Context) {
	topicID, ok := pathID(c, "topic_id")
	if !ok {
		return
	}
	topicDTO, err := s.followSvc.FollowTopic(c.Request.Context(), c.GetUint64("user_id"), topicID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, topicDTO)
}

func (s *FollowHandler) UnfollowTopic(c *gin.Context) {
	topicID, ok := pathID(c, "topic_id")
	if !ok {
		return
	}
	err := s.followSvc.UnfollowTopic(c.Request.Context(), c.GetUint64("user_id"), topicID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
