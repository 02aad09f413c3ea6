package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/kafka"
	"Ripple/internal/pkg/minio"
	"Ripple/internal/pkg/util"
	"Ripple/internal/policy"
	"Ripple/internal/repository"
	"bytes"
	"context"
	"fmt"
	log "log/slog"
	"mime/multipart"

	"github.com/google/uuid"
)

type CommentService interface {
	GetComment(ctx context.Context, commentID uint64) (*dto.CommentDTO, error)
	ListMyPosts(ctx context.Context, user *model.User) ([]*dto.PostDTO, error)
	CreateComment(ctx context.Context, user *model.User, postID uint64, createDTO *dto.CreateCommentDTO, file *multipart.FileHeader) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, user *model.User, commentID uint64, updateDTO *dto.UpdateCommentDTO) error
	DeleteComment(ctx context.Context, user *model.User, commentID uint64) error
}

type CommentServiceImpl struct {
	commentRepo   repository.CommentRepo
	postRepo      repository.PostRepo
	commentPolicy *policy.CommentPolicy
	imagePolicy   *policy.ImageCommentPolicy
	producer      kafka.EventProducer
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	commentPolicy *policy.CommentPolicy,
	imagePolicy *policy.ImageCommentPolicy,
	producer kafka.EventProducer,
) CommentService {
	return &CommentServiceImpl{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		commentPolicy: commentPolicy,
		imagePolicy:   imagePolicy,
		producer:      producer,
	}
}

// ListMyPosts 返回当前用户自己的帖子，按发布时间倒序
func (s *CommentServiceImpl) ListMyPosts(ctx context.Context, user *model.User) ([]*dto.PostDTO, error) {
	if !s.commentPolicy.CanList(user) {
		return nil, UnauthorizedError
	}
	posts, err := s.postRepo.ListByUser(ctx, user.ID, "postdate DESC")
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

func (s *CommentServiceImpl) GetComment(ctx context.Context, commentID uint64) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return toCommentDTO(comment), nil
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, user *model.User, postID uint64, createDTO *dto.CreateCommentDTO, file *multipart.FileHeader) (*dto.CommentDTO, error) {
	if !s.commentPolicy.CanCreate(user) {
		return nil, UnauthorizedError
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	var meta *util.ImageMeta
	if file != nil {
		if meta, err = util.ValidateImage(file); err != nil {
			return nil, ErrFileNotSupported
		}
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  user.ID,
		Title:   createDTO.Title,
		Caption: createDTO.Caption,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if meta != nil {
		if !s.imagePolicy.CanCreate(user, comment) {
			if delErr := s.commentRepo.DeleteComment(ctx, comment.ID); delErr != nil {
				log.Error("failed to roll back comment after image policy denial", "comment_id", comment.ID, "err", delErr)
			}
			return nil, UnauthorizedError
		}
		image, err := s.uploadCommentImage(ctx, comment.ID, meta)
		if err != nil {
			if delErr := s.commentRepo.DeleteComment(ctx, comment.ID); delErr != nil {
				log.Error("failed to roll back comment after upload failure", "comment_id", comment.ID, "err", delErr)
			}
			return nil, err
		}
		comment.Image = image
	}

	comment.User = *user
	s.producer.PublishEngagement(&kafka.EngagementEvent{
		Type:       kafka.EventPostComment,
		ActorID:    user.ID,
		ReceiverID: post.UserID,
		PostID:     postID,
		CommentID:  comment.ID,
		Content:    fmt.Sprintf("%s 评论了你的帖子「%s」", user.Username, post.Title),
	})

	return toCommentDTO(comment), nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, user *model.User, commentID uint64, updateDTO *dto.UpdateCommentDTO) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if !s.commentPolicy.CanUpdate(user, comment) {
		return UnauthorizedError
	}

	return s.commentRepo.UpdateComment(ctx, commentID, updateDTO.Title, updateDTO.Caption)
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, user *model.User, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if !s.commentPolicy.CanDelete(user, comment) {
		return UnauthorizedError
	}

	if comment.Image != nil {
		if err = minio.DeleteFile(ctx, objectNameFromURL(comment.Image.ImageURL)); err != nil {
			log.Error("failed to delete comment image object", "comment_id", commentID, "err", err)
		}
	}

	return s.commentRepo.DeleteComment(ctx, commentID)
}

func (s *CommentServiceImpl) uploadCommentImage(ctx context.Context, commentID uint64, meta *util.ImageMeta) (*model.CommentImage, error) {
	objectName := fmt.Sprintf("comments/%d/%s", commentID, uuid.NewString())
	if _, err := minio.UploadFile(ctx, objectName, bytes.NewReader(meta.Data), meta.Size, meta.MimeType); err != nil {
		return nil, err
	}

	image := &model.CommentImage{
		CommentID: commentID,
		MimeType:  meta.MimeType,
		ImageURL:  minio.GetPublicURL(objectName),
		Width:     meta.Width,
		Height:    meta.Height,
	}
	if err := s.commentRepo.CreateCommentImage(ctx, image); err != nil {
		_ = minio.DeleteFile(ctx, objectName)
		return nil, err
	}
	return image, nil
}
