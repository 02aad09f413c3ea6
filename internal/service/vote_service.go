package service

import (
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kafka"
	"Ripple/internal/pkg/redis"
	"Ripple/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	voteCountCacheTTL = 7 * 24 * time.Hour
	// MySQL 唯一键冲突
	duplicateEntryCode = 1062
)

// VoteService 投票操作统一返回最新分数，分数 = 赞数 - 踩数
type VoteService interface {
	UpvotePost(ctx context.Context, userID, postID uint64) (int64, error)
	UndoUpvotePost(ctx context.Context, userID, postID uint64) (int64, error)
	DownvotePost(ctx context.Context, userID, postID uint64) (int64, error)
	UndoDownvotePost(ctx context.Context, userID, postID uint64) (int64, error)
	UpvoteComment(ctx context.Context, userID, commentID uint64) (int64, error)
	UndoUpvoteComment(ctx context.Context, userID, commentID uint64) (int64, error)
	DownvoteComment(ctx context.Context, userID, commentID uint64) (int64, error)
	UndoDownvoteComment(ctx context.Context, userID, commentID uint64) (int64, error)
}

type VoteServiceImpl struct {
	voteRepo    repository.VoteRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	userRepo    repository.UserRepo
	producer    kafka.EventProducer
}

func NewVoteService(
	voteRepo repository.VoteRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	userRepo repository.UserRepo,
	producer kafka.EventProducer,
) VoteService {
	return &VoteServiceImpl{
		voteRepo:    voteRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		producer:    producer,
	}
}

func (s *VoteServiceImpl) UpvotePost(ctx context.Context, userID, postID uint64) (int64, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	err = s.voteRepo.CreatePostUpvote(ctx, userID, postID)
	switch {
	case err == nil:
		s.invalidatePostCount(ctx, consts.PostUpvoteKey, postID)
		s.notifyPostVote(ctx, kafka.EventPostUpvote, userID, post.UserID, postID, post.Title)
	case isDuplicateEntry(err):
		// 重复点赞是幂等操作，吞掉冲突照常返回分数
		log.Info("duplicate post upvote", "user_id", userID, "post_id", postID)
	default:
		// 写入失败不阻断响应，照常返回当前分数
		log.Error("failed to save post upvote", "user_id", userID, "post_id", postID, "err", err)
	}

	return s.postScore(ctx, postID)
}

func (s *VoteServiceImpl) UndoUpvotePost(ctx context.Context, userID, postID uint64) (int64, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	rows, err := s.voteRepo.DeletePostUpvote(ctx, userID, postID)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		log.Info("undo post upvote without existing vote", "user_id", userID, "post_id", postID)
	} else {
		s.invalidatePostCount(ctx, consts.PostUpvoteKey, postID)
	}

	return s.postScore(ctx, postID)
}

func (s *VoteServiceImpl) DownvotePost(ctx context.Context, userID, postID uint64) (int64, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	err = s.voteRepo.CreatePostDownvote(ctx, userID, postID)
	switch {
	case err == nil:
		s.invalidatePostCount(ctx, consts.PostDownvoteKey, postID)
		s.notifyPostVote(ctx, kafka.EventPostDownvote, userID, post.UserID, postID, post.Title)
	case isDuplicateEntry(err):
		log.Info("duplicate post downvote", "user_id", userID, "post_id", postID)
	default:
		log.Error("failed to save post downvote", "user_id", userID, "post_id", postID, "err", err)
	}

	return s.postScore(ctx, postID)
}

func (s *VoteServiceImpl) UndoDownvotePost(ctx context.Context, userID, postID uint64) (int64, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	rows, err := s.voteRepo.DeletePostDownvote(ctx, userID, postID)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		log.Info("undo post downvote without existing vote", "user_id", userID, "post_id", postID)
	} else {
		s.invalidatePostCount(ctx, consts.PostDownvoteKey, postID)
	}

	return s.postScore(ctx, postID)
}

func (s *VoteServiceImpl) UpvoteComment(ctx context.Context, userID, commentID uint64) (int64, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}

	err = s.voteRepo.CreateCommentUpvote(ctx, userID, commentID)
	switch {
	case err == nil:
		s.invalidateCommentCount(ctx, consts.CommentUpvoteKey, commentID)
		s.notifyCommentVote(ctx, kafka.EventCommentUpvote, userID, comment.UserID, comment.PostID, commentID)
	case isDuplicateEntry(err):
		log.Info("duplicate comment upvote", "user_id", userID, "comment_id", commentID)
	default:
		log.Error("failed to save comment upvote", "user_id", userID, "comment_id", commentID, "err", err)
	}

	return s.commentScore(ctx, commentID)
}

func (s *VoteServiceImpl) UndoUpvoteComment(ctx context.Context, userID, commentID uint64) (int64, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}

	rows, err := s.voteRepo.DeleteCommentUpvote(ctx, userID, commentID)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		log.Info("undo comment upvote without existing vote", "user_id", userID, "comment_id", commentID)
	} else {
		s.invalidateCommentCount(ctx, consts.CommentUpvoteKey, commentID)
	}

	return s.commentScore(ctx, commentID)
}

func (s *VoteServiceImpl) DownvoteComment(ctx context.Context, userID, commentID uint64) (int64, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}

	err = s.voteRepo.CreateCommentDownvote(ctx, userID, commentID)
	switch {
	case err == nil:
		s.invalidateCommentCount(ctx, consts.CommentDownvoteKey, commentID)
		s.notifyCommentVote(ctx, kafka.EventCommentDownvote, userID, comment.UserID, comment.PostID, commentID)
	case isDuplicateEntry(err):
		log.Info("duplicate comment downvote", "user_id", userID, "comment_id", commentID)
	default:
		log.Error("failed to save comment downvote", "user_id", userID, "comment_id", commentID, "err", err)
	}

	return s.commentScore(ctx, commentID)
}

func (s *VoteServiceImpl) UndoDownvoteComment(ctx context.Context, userID, commentID uint64) (int64, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}

	rows, err := s.voteRepo.DeleteCommentDownvote(ctx, userID, commentID)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		log.Info("undo comment downvote without existing vote", "user_id", userID, "comment_id", commentID)
	} else {
		s.invalidateCommentCount(ctx, consts.CommentDownvoteKey, commentID)
	}

	return s.commentScore(ctx, commentID)
}

// postScore 以投票行计数为准，带 Redis 缓存
func (s *VoteServiceImpl) postScore(ctx context.Context, postID uint64) (int64, error) {
	upvotes, err := s.cachedCount(ctx, consts.PostUpvoteKey+strconv.FormatUint(postID, 10), func() (int64, error) {
		return s.voteRepo.CountPostUpvotes(ctx, postID)
	})
	if err != nil {
		return 0, err
	}
	downvotes, err := s.cachedCount(ctx, consts.PostDownvoteKey+strconv.FormatUint(postID, 10), func() (int64, error) {
		return s.voteRepo.CountPostDownvotes(ctx, postID)
	})
	if err != nil {
		return 0, err
	}
	return upvotes - downvotes, nil
}

func (s *VoteServiceImpl) commentScore(ctx context.Context, commentID uint64) (int64, error) {
	upvotes, err := s.cachedCount(ctx, consts.CommentUpvoteKey+strconv.FormatUint(commentID, 10), func() (int64, error) {
		return s.voteRepo.CountCommentUpvotes(ctx, commentID)
	})
	if err != nil {
		return 0, err
	}
	downvotes, err := s.cachedCount(ctx, consts.CommentDownvoteKey+strconv.FormatUint(commentID, 10), func() (int64, error) {
		return s.voteRepo.CountCommentDownvotes(ctx, commentID)
	})
	if err != nil {
		return 0, err
	}
	return upvotes - downvotes, nil
}

func (s *VoteServiceImpl) cachedCount(ctx context.Context, key string, compute func() (int64, error)) (int64, error) {
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return count, nil
		}
	}

	count, err := compute()
	if err != nil {
		return 0, err
	}
	if err = redis.SetWithExpiration(ctx, key, count, voteCountCacheTTL); err != nil {
		log.Error("failed to cache vote count", "key", key, "err", err)
	}
	return count, nil
}

func (s *VoteServiceImpl) invalidatePostCount(ctx context.Context, prefix string, postID uint64) {
	id := strconv.FormatUint(postID, 10)
	if err := redis.DeleteKey(ctx, prefix+id); err != nil {
		log.Error("failed to invalidate vote count cache", "key", prefix+id, "err", err)
	}
	if err := redis.SAdd(ctx, consts.PostVoteDirtyKey, id); err != nil {
		log.Error("failed to mark post vote dirty", "post_id", postID, "err", err)
	}
}

func (s *VoteServiceImpl) invalidateCommentCount(ctx context.Context, prefix string, commentID uint64) {
	id := strconv.FormatUint(commentID, 10)
	if err := redis.DeleteKey(ctx, prefix+id); err != nil {
		log.Error("failed to invalidate vote count cache", "key", prefix+id, "err", err)
	}
	if err := redis.SAdd(ctx, consts.CommentVoteDirtyKey, id); err != nil {
		log.Error("failed to mark comment vote dirty", "comment_id", commentID, "err", err)
	}
}

func (s *VoteServiceImpl) notifyPostVote(ctx context.Context, eventType int, actorID, receiverID, postID uint64, title string) {
	actor, err := s.userRepo.GetUserById(ctx, actorID)
	if err != nil || actor == nil {
		return
	}

	verb := "赞"
	if eventType == kafka.EventPostDownvote {
		verb = "踩"
	}
	s.producer.PublishEngagement(&kafka.EngagementEvent{
		Type:       eventType,
		ActorID:    actorID,
		ReceiverID: receiverID,
		PostID:     postID,
		Content:    fmt.Sprintf("%s %s了你的帖子「%s」", actor.Username, verb, title),
	})
}

func (s *VoteServiceImpl) notifyCommentVote(ctx context.Context, eventType int, actorID, receiverID, postID, commentID uint64) {
	actor, err := s.userRepo.GetUserById(ctx, actorID)
	if err != nil || actor == nil {
		return
	}

	verb := "赞"
	if eventType == kafka.EventCommentDownvote {
		verb = "踩"
	}
	s.producer.PublishEngagement(&kafka.EngagementEvent{
		Type:       eventType,
		ActorID:    actorID,
		ReceiverID: receiverID,
		PostID:     postID,
		CommentID:  commentID,
		Content:    fmt.Sprintf("%s %s了你的评论", actor.Username, verb),
	})
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryCode
}
