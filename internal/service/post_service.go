package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/es"
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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PostService interface {
	GetPost(ctx context.Context, postID uint64, viewer *model.User) (*dto.PostDTO, error)
	SearchPosts(ctx context.Context, userID uint64, query string) (*dto.PostListDTO, error)
	ListTop(ctx context.Context, userID uint64) (*dto.PostListDTO, error)
	ListNews(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	ListFollowed(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	ListByUser(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	CreatePost(ctx context.Context, user *model.User, createDTO *dto.CreatePostDTO, files []*multipart.FileHeader) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, user *model.User, postID uint64, updateDTO *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, user *model.User, postID uint64) error
	ApplyFilter(ctx context.Context, userID uint64, filterDTO *dto.FilterDTO) ([]*dto.PostDTO, error)
	GetTopics(ctx context.Context, userID uint64) ([]*dto.TopicDTO, error)
}

type PostServiceImpl struct {
	postRepo   repository.PostRepo
	topicRepo  repository.TopicRepo
	followRepo repository.FollowRepo
	voteRepo   repository.VoteRepo
	esRepo     es.PostRepo
	postPolicy *policy.PostPolicy
	producer   kafka.EventProducer
}

func NewPostService(
	postRepo repository.PostRepo,
	topicRepo repository.TopicRepo,
	followRepo repository.FollowRepo,
	voteRepo repository.VoteRepo,
	esRepo es.PostRepo,
	postPolicy *policy.PostPolicy,
	producer kafka.EventProducer,
) PostService {
	return &PostServiceImpl{
		postRepo:   postRepo,
		topicRepo:  topicRepo,
		followRepo: followRepo,
		voteRepo:   voteRepo,
		esRepo:     esRepo,
		postPolicy: postPolicy,
		producer:   producer,
	}
}

func (s *PostServiceImpl) GetPost(ctx context.Context, postID uint64, viewer *model.User) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostWithComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	postDTO := toPostDTO(post)

	if viewer != nil && post.Topic != nil && postDTO.Topic != nil {
		followed, err := s.followRepo.ExistsTopicFollow(ctx, viewer.ID, post.Topic.ID)
		if err == nil {
			postDTO.Topic.IsFollowed = followed
		}
	}

	postDTO.Comments = make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		postDTO.Comments = append(postDTO.Comments, toCommentDTO(&post.Comments[i]))
	}

	return postDTO, nil
}

// SearchPosts 多词走 ES 前缀检索，单词走数据库模糊匹配
func (s *PostServiceImpl) SearchPosts(ctx context.Context, userID uint64, query string) (*dto.PostListDTO, error) {
	followedIDs, err := s.followedTopicIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	list := &dto.PostListDTO{Posts: []*dto.PostDTO{}, FollowedTopicIDs: followedIDs}

	terms := util.NormalizeSearchTerms(query)
	if len(terms) == 0 {
		return list, nil
	}

	if len(terms) == 1 {
		posts, err := s.postRepo.SearchLike(ctx, terms[0])
		if err != nil {
			return nil, err
		}
		list.Posts = toPostDTOs(posts)
		return list, nil
	}

	ids, err := s.esRepo.SearchPrefix(ctx, terms)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	posts, err := s.postRepo.GetPostByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 按 ES 命中顺序重排
	byID := make(map[uint64]*model.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}
	ordered := make([]*model.Post, 0, len(posts))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}

	list.Posts = toPostDTOs(ordered)
	return list, nil
}

func (s *PostServiceImpl) ListTop(ctx context.Context, userID uint64) (*dto.PostListDTO, error) {
	posts, err := s.postRepo.ListTop(ctx)
	if err != nil {
		return nil, err
	}
	followedIDs, err := s.followedTopicIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.PostListDTO{Posts: toPostDTOs(posts), FollowedTopicIDs: followedIDs}, nil
}

// followedTopicIDs 匿名访问返回空集合
func (s *PostServiceImpl) followedTopicIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	if userID == 0 {
		return []uint64{}, nil
	}
	ids, err := s.followRepo.GetFollowedTopicIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint64{}
	}
	return ids, nil
}

// ListNews 当前用户自己的帖子，按赞数倒序
func (s *PostServiceImpl) ListNews(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	return s.ListByUser(ctx, userID)
}

// ListFollowed 已关注话题下的帖子，按时间倒序
func (s *PostServiceImpl) ListFollowed(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	topicIDs, err := s.followRepo.GetFollowedTopicIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByTopicIDs(ctx, topicIDs)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

func (s *PostServiceImpl) ListByUser(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID, "upvotes DESC")
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, user *model.User, createDTO *dto.CreatePostDTO, files []*multipart.FileHeader) (*dto.PostDTO, error) {
	if !s.postPolicy.CanCreate(user) {
		return nil, UnauthorizedError
	}

	// 先整体校验，避免半途失败留下孤儿对象
	metas := make([]*util.ImageMeta, 0, len(files))
	for _, file := range files {
		meta, err := util.ValidateImage(file)
		if err != nil {
			return nil, ErrFileNotSupported
		}
		metas = append(metas, meta)
	}

	post := &model.Post{
		UserID:  user.ID,
		Title:   createDTO.Title,
		Caption: createDTO.Caption,
	}

	if title := strings.TrimSpace(createDTO.Topic); title != "" {
		// 话题不存在时静默忽略，不为帖子凭空造话题
		topic, err := s.topicRepo.GetTopicByTitle(ctx, title)
		if err != nil {
			return nil, err
		}
		if topic != nil {
			post.TopicID = &topic.ID
			post.Topic = topic
		}
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	images, err := s.uploadPostImages(ctx, post.ID, metas)
	if err != nil {
		// 上传失败整体回退
		if delErr := s.postRepo.DeletePost(ctx, post.ID); delErr != nil {
			log.Error("failed to roll back post after upload failure", "post_id", post.ID, "err", delErr)
		}
		return nil, err
	}
	post.Images = make([]model.PostImage, 0, len(images))
	for _, image := range images {
		post.Images = append(post.Images, *image)
	}

	s.indexPost(ctx, post)

	return toPostDTO(post), nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, user *model.User, postID uint64, updateDTO *dto.UpdatePostDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !s.postPolicy.CanUpdate(user, post) {
		return UnauthorizedError
	}

	if err = s.postRepo.UpdatePost(ctx, postID, updateDTO.Title, updateDTO.Caption); err != nil {
		return err
	}

	post.Title = updateDTO.Title
	post.Caption = updateDTO.Caption
	s.indexPost(ctx, post)

	return nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, user *model.User, postID uint64) error {
	post, err := s.postRepo.GetPostWithComments(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !s.postPolicy.CanDelete(user, post) {
		return UnauthorizedError
	}
	// 有评论或投票记录的帖子只有管理员能删
	if !user.IsAdmin {
		if len(post.Comments) > 0 {
			return ErrPostHasComments
		}
		upvotes, err := s.voteRepo.CountPostUpvotes(ctx, postID)
		if err != nil {
			return err
		}
		downvotes, err := s.voteRepo.CountPostDownvotes(ctx, postID)
		if err != nil {
			return err
		}
		if upvotes+downvotes > 0 {
			return ErrPostHasVotes
		}
	}

	for _, image := range post.Images {
		if err = minio.DeleteFile(ctx, objectNameFromURL(image.ImageURL)); err != nil {
			log.Error("failed to delete post image object", "post_id", postID, "err", err)
		}
	}

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}

	if err = s.esRepo.DeletePost(ctx, postID); err != nil {
		log.Error("failed to delete post from index", "post_id", postID, "err", err)
	}

	return nil
}

func (s *PostServiceImpl) ApplyFilter(ctx context.Context, userID uint64, filterDTO *dto.FilterDTO) ([]*dto.PostDTO, error) {
	filter := &repository.PostFilter{
		Sort:        filterDTO.Sort,
		TimeSort:    filterDTO.TimeSort,
		MinUpvote:   filterDTO.MinUpvote,
		MaxUpvote:   filterDTO.MaxUpvote,
		MinDownvote: filterDTO.MinDownvote,
		MaxDownvote: filterDTO.MaxDownvote,
		UserID:      filterDTO.UserID,
	}

	if topicTitle := strings.TrimSpace(filterDTO.TopicFilter); topicTitle != "" {
		topic, err := s.topicRepo.GetTopicByTitle(ctx, topicTitle)
		if err != nil {
			return nil, err
		}
		if topic == nil {
			return nil, ErrTopicNotFound
		}
		filter.TopicID = topic.ID
	}

	if filterDTO.MinDate != "" {
		minDate, err := time.Parse("2006-01-02", filterDTO.MinDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		filter.MinDate = &minDate
	}
	if filterDTO.MaxDate != "" {
		maxDate, err := time.Parse("2006-01-02", filterDTO.MaxDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		filter.MaxDate = &maxDate
	}

	if filterDTO.FollowedTopics && userID != 0 {
		topicIDs, err := s.followRepo.GetFollowedTopicIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		filter.TopicIDs = topicIDs
	}

	posts, err := s.postRepo.ApplyFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

func (s *PostServiceImpl) GetTopics(ctx context.Context, userID uint64) ([]*dto.TopicDTO, error) {
	topics, err := s.topicRepo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	followedSet := map[uint64]struct{}{}
	if userID != 0 {
		followedIDs, err := s.followRepo.GetFollowedTopicIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, id := range followedIDs {
			followedSet[id] = struct{}{}
		}
	}

	topicDTOs := make([]*dto.TopicDTO, 0, len(topics))
	for _, topic := range topics {
		_, followed := followedSet[topic.ID]
		topicDTOs = append(topicDTOs, &dto.TopicDTO{
			ID:         topic.ID,
			Title:      topic.Title,
			IsFollowed: followed,
		})
	}
	return topicDTOs, nil
}

func (s *PostServiceImpl) uploadPostImages(ctx context.Context, postID uint64, metas []*util.ImageMeta) ([]*model.PostImage, error) {
	images := make([]*model.PostImage, 0, len(metas))
	uploaded := make([]string, 0, len(metas))

	for _, meta := range metas {
		objectName := fmt.Sprintf("posts/%d/%s", postID, uuid.NewString())
		if _, err := minio.UploadFile(ctx, objectName, bytes.NewReader(meta.Data), meta.Size, meta.MimeType); err != nil {
			for _, name := range uploaded {
				_ = minio.DeleteFile(ctx, name)
			}
			return nil, err
		}
		uploaded = append(uploaded, objectName)

		images = append(images, &model.PostImage{
			PostID:   postID,
			MimeType: meta.MimeType,
			ImageURL: minio.GetPublicURL(objectName),
			Width:    meta.Width,
			Height:   meta.Height,
		})
	}

	if err := s.postRepo.CreatePostImages(ctx, images); err != nil {
		for _, name := range uploaded {
			_ = minio.DeleteFile(ctx, name)
		}
		return nil, err
	}
	return images, nil
}

func (s *PostServiceImpl) indexPost(ctx context.Context, post *model.Post) {
	doc := &es.PostES{
		ID:       post.ID,
		UserID:   post.UserID,
		Title:    post.Title,
		Caption:  post.Caption,
		PostDate: post.PostDate,
	}
	if post.TopicID != nil {
		doc.TopicID = *post.TopicID
	}
	if err := s.esRepo.IndexPost(ctx, doc); err != nil {
		log.Error("failed to index post", "post_id", post.ID, "err", err)
	}
}

// objectNameFromURL 从公开 URL 反推对象名
func objectNameFromURL(imageURL string) string {
	marker := "/" + minio.BucketName + "/"
	if idx := strings.Index(imageURL, marker); idx >= 0 {
		return imageURL[idx+len(marker):]
	}
	return imageURL
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	postDTO := &dto.PostDTO{}
	_ = copier.Copy(postDTO, post)
	postDTO.Comments = nil

	if post.User.ID != 0 {
		postDTO.User = &dto.UserSimpleDTO{
			ID:        post.User.ID,
			Name:      post.User.Name,
			Username:  post.User.Username,
			AvatarURL: post.User.AvatarURL,
		}
	}
	if post.Topic != nil {
		postDTO.Topic = &dto.TopicDTO{
			ID:    post.Topic.ID,
			Title: post.Topic.Title,
		}
	}

	postDTO.Images = make([]*dto.PostImageDTO, 0, len(post.Images))
	for _, image := range post.Images {
		postDTO.Images = append(postDTO.Images, &dto.PostImageDTO{
			ID:       image.ID,
			MimeType: image.MimeType,
			ImageURL: image.ImageURL,
			Width:    image.Width,
			Height:   image.Height,
		})
	}
	return postDTO
}

func toPostDTOs(posts []*model.Post) []*dto.PostDTO {
	postDTOs := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTOs = append(postDTOs, toPostDTO(post))
	}
	return postDTOs
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	commentDTO := &dto.CommentDTO{}
	_ = copier.Copy(commentDTO, comment)

	if comment.User.ID != 0 {
		commentDTO.User = &dto.UserSimpleDTO{
			ID:        comment.User.ID,
			Name:      comment.User.Name,
			Username:  comment.User.Username,
			AvatarURL: comment.User.AvatarURL,
		}
	}
	if comment.Image != nil {
		commentDTO.Image = &dto.PostImageDTO{
			ID:       comment.Image.ID,
			MimeType: comment.Image.MimeType,
			ImageURL: comment.Image.ImageURL,
			Width:    comment.Image.Width,
			Height:   comment.Image.Height,
		}
	}
	return commentDTO
}
