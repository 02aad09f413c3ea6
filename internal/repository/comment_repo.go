package repository

import (
	"Ripple/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error)
	UpdateComment(ctx context.Context, id uint64, title, caption string) error
	UpdateCommentVoteCounts(ctx context.Context, id uint64, upvotes, downvotes int64) error
	DeleteComment(ctx context.Context, id uint64) error
	CreateCommentImage(ctx context.Context, image *model.CommentImage) error
	DeleteCommentImage(ctx context.Context, commentID uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{
		db: db,
	}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Image").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost 按热度排序，热度 = 赞数 - 踩数
func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Image").
		Where("post_id = ?", postID).
		Order("(upvotes - downvotes) DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentRepoImpl) UpdateComment(ctx context.Context, id uint64, title, caption string) error {
	return s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"caption": caption,
		}).Error
}

func (s *CommentRepoImpl) UpdateCommentVoteCounts(ctx context.Context, id uint64, upvotes, downvotes int64) error {
	return s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"upvotes":   upvotes,
			"downvotes": downvotes,
		}).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentUpvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentDownvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, id).Error
	})
}

func (s *CommentRepoImpl) CreateCommentImage(ctx context.Context, image *model.CommentImage) error {
	return s.db.WithContext(ctx).Create(image).Error
}

func (s *CommentRepoImpl) DeleteCommentImage(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&model.CommentImage{}).Error
}
