package repository

import (
	"Ripple/internal/model"
	"context"

	"gorm.io/gorm"
)

// VoteRepo 投票行的增删与计数，赞与踩互不影响
type VoteRepo interface {
	CreatePostUpvote(ctx context.Context, userID, postID uint64) error
	DeletePostUpvote(ctx context.Context, userID, postID uint64) (int64, error)
	CreatePostDownvote(ctx context.Context, userID, postID uint64) error
	DeletePostDownvote(ctx context.Context, userID, postID uint64) (int64, error)
	CreateCommentUpvote(ctx context.Context, userID, commentID uint64) error
	DeleteCommentUpvote(ctx context.Context, userID, commentID uint64) (int64, error)
	CreateCommentDownvote(ctx context.Context, userID, commentID uint64) error
	DeleteCommentDownvote(ctx context.Context, userID, commentID uint64) (int64, error)
	CountPostUpvotes(ctx context.Context, postID uint64) (int64, error)
	CountPostDownvotes(ctx context.Context, postID uint64) (int64, error)
	CountCommentUpvotes(ctx context.Context, commentID uint64) (int64, error)
	CountCommentDownvotes(ctx context.Context, commentID uint64) (int64, error)
}

type VoteRepoImpl struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepo {
	return &VoteRepoImpl{
		db: db,
	}
}

func (s *VoteRepoImpl) CreatePostUpvote(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).Create(&model.PostUpvote{UserID: userID, PostID: postID}).Error
}

func (s *VoteRepoImpl) DeletePostUpvote(ctx context.Context, userID, postID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostUpvote{})
	return result.RowsAffected, result.Error
}

func (s *VoteRepoImpl) CreatePostDownvote(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).Create(&model.PostDownvote{UserID: userID, PostID: postID}).Error
}

func (s *VoteRepoImpl) DeletePostDownvote(ctx context.Context, userID, postID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostDownvote{})
	return result.RowsAffected, result.Error
}

func (s *VoteRepoImpl) CreateCommentUpvote(ctx context.Context, userID, commentID uint64) error {
	return s.db.WithContext(ctx).Create(&model.CommentUpvote{UserID: userID, CommentID: commentID}).Error
}

func (s *VoteRepoImpl) DeleteCommentUpvote(ctx context.Context, userID, commentID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentUpvote{})
	return result.RowsAffected, result.Error
}

func (s *VoteRepoImpl) CreateCommentDownvote(ctx context.Context, userID, commentID uint64) error {
	return s.db.WithContext(ctx).Create(&model.CommentDownvote{UserID: userID, CommentID: commentID}).Error
}

func (s *VoteRepoImpl) DeleteCommentDownvote(ctx context.Context, userID, commentID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentDownvote{})
	return result.RowsAffected, result.Error
}

func (s *VoteRepoImpl) CountPostUpvotes(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.PostUpvote{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *VoteRepoImpl) CountPostDownvotes(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.PostDownvote{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *VoteRepoImpl) CountCommentUpvotes(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.CommentUpvote{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (s *VoteRepoImpl) CountCommentDownvotes(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.CommentDownvote{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
