package repository

import (
	"Ripple/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PostFilter 筛选器参数，全部条件可选，AND 连接
type PostFilter struct {
	Sort        string // dateUp / dateDown / voteUp / voteDown
	TimeSort    string // last_24_hours / last_week / last_month / last_year / all_time
	TopicID     uint64
	MinDate     *time.Time
	MaxDate     *time.Time
	MinUpvote   *int
	MaxUpvote   *int
	MinDownvote *int
	MaxDownvote *int
	UserID      uint64
	TopicIDs    []uint64 // followedTopics 限定集，nil 表示不限定
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	ListTop(ctx context.Context) ([]*model.Post, error)
	ListByUser(ctx context.Context, userID uint64, orderBy string) ([]*model.Post, error)
	ListByTopicIDs(ctx context.Context, topicIDs []uint64) ([]*model.Post, error)
	SearchLike(ctx context.Context, term string) ([]*model.Post, error)
	ApplyFilter(ctx context.Context, filter *PostFilter) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, title, caption string) error
	UpdatePostVoteCounts(ctx context.Context, id uint64, upvotes, downvotes int64) error
	DeletePost(ctx context.Context, id uint64) error
	CreatePostImages(ctx context.Context, images []*model.PostImage) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Topic").
		Preload("Images").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostWithComments 详情页：评论按 (upvotes - downvotes) 降序并带图片
func (s *PostRepoImpl) GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Topic").
		Preload("Images").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("(upvotes - downvotes) DESC")
		}).
		Preload("Comments.User").
		Preload("Comments.Image").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Topic").
		Preload("Images").
		Where("id IN ?", ids).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListTop(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Topic").
		Preload("Images").
		Order("(upvotes - downvotes) DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListByUser(ctx context.Context, userID uint64, orderBy string) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Topic").
		Preload("Images").
		Where("user_id = ?", userID).
		Order(orderBy).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListByTopicIDs(ctx context.Context, topicIDs []uint64) ([]*model.Post, error) {
	var posts []*model.Post
	if len(topicIDs) == 0 {
		return posts, nil
	}
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Topic").
		Preload("Images").
		Where("topic_id IN ?", topicIDs).
		Order("postdate DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// SearchLike 单词检索：标题或正文的大小写不敏感子串匹配
func (s *PostRepoImpl) SearchLike(ctx context.Context, term string) ([]*model.Post, error) {
	var posts []*model.Post
	pattern := "%" + term + "%"
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Topic").
		Preload("Images").
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(caption) LIKE LOWER(?)", pattern, pattern).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ApplyFilter(ctx context.Context, filter *PostFilter) ([]*model.Post, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Preload("User").
		Preload("Topic").
		Preload("Images")

	switch filter.Sort {
	case "dateDown":
		query = query.Order("postdate DESC")
	case "dateUp":
		query = query.Order("postdate ASC")
	case "voteDown":
		query = query.Order("upvotes DESC")
	case "voteUp":
		query = query.Order("upvotes ASC")
	case "":
		// 无显式排序时默认按赞数降序
		query = query.Order("upvotes DESC")
	default:
		query = query.Order("postdate DESC")
	}

	if filter.TimeSort != "" && filter.TimeSort != "all_time" {
		now := time.Now()
		switch filter.TimeSort {
		case "last_24_hours":
			query = query.Where("postdate >= ?", now.Add(-24*time.Hour))
		case "last_week":
			query = query.Where("postdate >= ?", now.AddDate(0, 0, -7))
		case "last_month":
			query = query.Where("postdate >= ?", now.AddDate(0, -1, 0))
		case "last_year":
			query = query.Where("postdate >= ?", now.AddDate(-1, 0, 0))
		}
	}

	if filter.TopicID != 0 {
		query = query.Where("topic_id = ?", filter.TopicID)
	}
	if filter.MinDate != nil {
		query = query.Where("postdate >= ?", *filter.MinDate)
	}
	if filter.MaxDate != nil {
		query = query.Where("postdate <= ?", *filter.MaxDate)
	}
	if filter.MinUpvote != nil {
		query = query.Where("upvotes >= ?", *filter.MinUpvote)
	}
	if filter.MaxUpvote != nil {
		query = query.Where("upvotes <= ?", *filter.MaxUpvote)
	}
	if filter.MinDownvote != nil {
		query = query.Where("downvotes >= ?", *filter.MinDownvote)
	}
	if filter.MaxDownvote != nil {
		query = query.Where("downvotes <= ?", *filter.MaxDownvote)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.TopicIDs != nil {
		query = query.Where("topic_id IN ?", filter.TopicIDs)
	}

	var posts []*model.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, id uint64, title, caption string) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"caption": caption,
		}).Error
}

func (s *PostRepoImpl) UpdatePostVoteCounts(ctx context.Context, id uint64, upvotes, downvotes int64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"upvotes":   upvotes,
			"downvotes": downvotes,
		}).Error
}

// DeletePost 物理删除帖子及其图片、投票行与评论
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint64
		if err := tx.Model(&model.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.CommentUpvote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.CommentDownvote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.CommentImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("post_id = ?", id).Delete(&model.PostUpvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostDownvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Post{}, id).Error
	})
}

func (s *PostRepoImpl) CreatePostImages(ctx context.Context, images []*model.PostImage) error {
	if len(images) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(images).Error
}
