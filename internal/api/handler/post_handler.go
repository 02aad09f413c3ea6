package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/pkg/util"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
	userSvc service.UserService
}

func NewPostHandler(postSvc service.PostService, userSvc service.UserService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
		userSvc: userSvc,
	}
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	viewer, err := optionalUser(c, s.userSvc)
	if err != nil {
		response.Error(c, err)
		return
	}
	postDTO, err := s.postSvc.GetPost(c.Request.Context(), postID, viewer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, postDTO)
}

func (s *PostHandler) Search(c *gin.Context) {
	posts, err := s.postSvc.SearchPosts(c.Request.Context(), c.GetUint64("user_id"), c.Query("search_term"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) Top(c *gin.Context) {
	posts, err := s.postSvc.ListTop(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) News(c *gin.Context) {
	posts, err := s.postSvc.ListNews(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) Followed(c *gin.Context) {
	posts, err := s.postSvc.ListFollowed(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	posts, err := s.postSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) Create(c *gin.Context) {
	var createDTO dto.CreatePostDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	files := form.File["images"]

	user, ok := currentUser(c, s.userSvc)
	if !ok {
		return
	}

	postDTO, err := s.postSvc.CreatePost(c.Request.Context(), user, &createDTO, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, postDTO)
}

func (s *PostHandler) Update(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	var updateDTO dto.UpdatePostDTO
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

	if err = s.postSvc.UpdatePost(c.Request.Context(), user, postID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	user, ok := currentUser(c, s.userSvc)
	if !ok {
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), user, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
