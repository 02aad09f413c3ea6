package job

import (
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/redis"
	"Ripple/internal/repository"
	"context"
	log "log/slog"
	"strconv"
)

// VoteSyncJob 将脏集合中的帖子/评论计票回写到冗余计数列
type VoteSyncJob struct {
	voteRepo    repository.VoteRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
}

func NewVoteSyncJob(voteRepo repository.VoteRepo, postRepo repository.PostRepo, commentRepo repository.CommentRepo) *VoteSyncJob {
	return &VoteSyncJob{
		voteRepo:    voteRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *VoteSyncJob) Run() {
	ctx := context.Background()

	s.syncPosts(ctx)
	s.syncComments(ctx)
}

func (s *VoteSyncJob) syncPosts(ctx context.Context) {
	ids, err := redis.SMembers(ctx, consts.PostVoteDirtyKey)
	if err != nil {
		log.Error("failed to read post vote dirty set", "err", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	if err = redis.DeleteKey(ctx, consts.PostVoteDirtyKey); err != nil {
		log.Error("failed to clear post vote dirty set", "err", err)
	}

	for _, raw := range ids {
		postID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}

		upvotes, err := s.voteRepo.CountPostUpvotes(ctx, postID)
		if err != nil {
			log.Error("failed to count post upvotes", "post_id", postID, "err", err)
			continue
		}
		downvotes, err := s.voteRepo.CountPostDownvotes(ctx, postID)
		if err != nil {
			log.Error("failed to count post downvotes", "post_id", postID, "err", err)
			continue
		}

		if err = s.postRepo.UpdatePostVoteCounts(ctx, postID, upvotes, downvotes); err != nil {
			log.Error("failed to sync post vote counts", "post_id", postID, "err", err)
		}
	}

	log.Info("post vote sync finished", "synced_count", len(ids))
}

func (s *VoteSyncJob) syncComments(ctx context.Context) {
	ids, err := redis.SMembers(ctx, consts.CommentVoteDirtyKey)
	if err != nil {
		log.Error("failed to read comment vote dirty set", "err", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	if err = redis.DeleteKey(ctx, consts.CommentVoteDirtyKey); err != nil {
		log.Error("failed to clear comment vote dirty set", "err", err)
	}

	for _, raw := range ids {
		commentID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}

		upvotes, err := s.voteRepo.CountCommentUpvotes(ctx, commentID)
		if err != nil {
			log.Error("failed to count comment upvotes", "comment_id", commentID, "err", err)
			continue
		}
		downvotes, err := s.voteRepo.CountCommentDownvotes(ctx, commentID)
		if err != nil {
			log.Error("failed to count comment downvotes", "comment_id", commentID, "err", err)
			continue
		}

		if err = s.commentRepo.UpdateCommentVoteCounts(ctx, commentID, upvotes, downvotes); err != nil {
			log.Error("failed to sync comment vote counts", "comment_id", commentID, "err", err)
		}
	}

	log.Info("comment vote sync finished", "synced_count", len(ids))
}
