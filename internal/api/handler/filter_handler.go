package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/api/render"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type FilterHandler struct {
	postSvc service.PostService
}

func NewFilterHandler(postSvc service.PostService) *FilterHandler {
	return &FilterHandler{
		postSvc: postSvc,
	}
}

// Apply 筛选帖子并返回渲染好的列表片段
func (s *FilterHandler) Apply(c *gin.Context) {
	var filterDTO dto.FilterDTO
	err := c.ShouldBind(&filterDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ApplyFilter(c.Request.Context(), c.GetUint64("user_id"), &filterDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	html, err := render.PostsHTML(posts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.FilterResultDTO{Success: true, HTML: html})
}

func (s *FilterHandler) GetTopics(c *gin.Context) {
	topics, err := s.postSvc.GetTopics(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, topics)
}
