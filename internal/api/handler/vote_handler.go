package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteSvc service.VoteService
}

func NewVoteHandler(voteSvc service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteSvc: voteSvc,
	}
}

type voteFunc func(ctx context.Context, userID, targetID uint64) (int64, error)

// vote 投票端点的公共骨架，统一返回最新分数
func (s *VoteHandler) vote(c *gin.Context, paramName string, fn voteFunc) {
	targetID, ok := pathID(c, paramName)
	if !ok {
		return
	}
	score, err := fn(c.Request.Context(), c.GetUint64("user_id"), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ScoreDTO{Score: score})
}

func (s *VoteHandler) UpvotePost(c *gin.Context) {
	s.vote(c, "post_id", s.voteSvc.UpvotePost)
}

func (s *VoteHandler) UndoUpvotePost(c *gin.Context) {
	s.vote(c, "post_id", s.voteSvc.UndoUpvotePost)
}

func (s *VoteHandler) DownvotePost(c *gin.Context) {
	s.vote(c, "post_id", s.voteSvc.DownvotePost)
}

func (s *VoteHandler) UndoDownvotePost(c *gin.Context) {
	s.vote(c, "post_id", s.voteSvc.UndoDownvotePost)
}

func (s *VoteHandler) UpvoteComment(c *gin.Context) {
	s.vote(c, "comment_id", s.voteSvc.UpvoteComment)
}

func (s *VoteHandler) UndoUpvoteComment(c *gin.Context) {
	s.vote(c, "comment_id", s.voteSvc.UndoUpvoteComment)
}

func (s *VoteHandler) DownvoteComment(c *gin.Context) {
	s.vote(c, "comment_id", s.voteSvc.DownvoteComment)
}

func (s *VoteHandler) UndoDownvoteComment(c *gin.Context) {
	s.vote(c, "comment_id", s.voteSvc.UndoDownvoteComment)
}
