package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/pkg/util"
	"Ripple/internal/service"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
	userSvc    service.UserService
}

func NewCommentHandler(commentSvc service.CommentService, userSvc service.UserService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		userSvc:    userSvc,
	}
}

func (s *CommentHandler) Get(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	commentDTO, err := s.commentSvc.GetComment(c.Request.Context(), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, commentDTO)
}

// List 返回当前用户自己的帖子列表
func (s *CommentHandler) List(c *gin.Context) {
	user, ok := currentUser(c, s.userSvc)
	if !ok {
		return
	}
	posts, err := s.commentSvc.ListMyPosts(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *CommentHandler) Create(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	var createDTO dto.CreateCommentDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	// 评论最多带一张图
	var file *multipart.FileHeader
	if fileHeader, err := c.FormFile("image"); err == nil {
		file = fileHeader
	}

	user, ok := currentUser(c, s.userSvc)
	if !ok {
		return
	}

	commentDTO, err := s.commentSvc.CreateComment(c.Request.Context(), user, postID, &createDTO, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, commentDTO)
}

func (s *CommentHandler) Update(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	var updateDTO dto.UpdateCommentDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	user, ok := currentUser(c, s.userSvc)
	if !ok {
		return
	}

	if err = s.commentSvc.UpdateComment(c.Request.Context(), user, commentID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	user, ok := currentUser(c, s.userSvc)
	if !ok {
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), user, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
