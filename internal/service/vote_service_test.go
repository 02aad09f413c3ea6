package service

import (
	"Ripple/internal/api/config"
	"Ripple/internal/model"
	"Ripple/internal/pkg/redis"
	"Ripple/internal/repository"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostRepoForVotes 只实现投票流程用到的方法
type fakePostRepoForVotes struct {
	repository.PostRepo
	posts map[uint64]*model.Post
}

func (s *fakePostRepoForVotes) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	return s.posts[id], nil
}

type fakeCommentRepoForVotes struct {
	repository.CommentRepo
	comments map[uint64]*model.Comment
}

func (s *fakeCommentRepoForVotes) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	return s.comments[id], nil
}

// fakeVoteRepo 内存计票，重复投票返回 1062 冲突
type fakeVoteRepo struct {
	postUpvotes     map[[2]uint64]bool
	postDownvotes   map[[2]uint64]bool
	commentUpvotes  map[[2]uint64]bool
	commentDownvote map[[2]uint64]bool
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{
		postUpvotes:     map[[2]uint64]bool{},
		postDownvotes:   map[[2]uint64]bool{},
		commentUpvotes:  map[[2]uint64]bool{},
		commentDownvote: map[[2]uint64]bool{},
	}
}

func duplicateEntryErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func (s *fakeVoteRepo) insert(votes map[[2]uint64]bool, userID, targetID uint64) error {
	key := [2]uint64{userID, targetID}
	if votes[key] {
		return duplicateEntryErr()
	}
	votes[key] = true
	return nil
}

func (s *fakeVoteRepo) remove(votes map[[2]uint64]bool, userID, targetID uint64) (int64, error) {
	key := [2]uint64{userID, targetID}
	if !votes[key] {
		return 0, nil
	}
	delete(votes, key)
	return 1, nil
}

func (s *fakeVoteRepo) count(votes map[[2]uint64]bool, targetID uint64) (int64, error) {
	var count int64
	for key := range votes {
		if key[1] == targetID {
			count++
		}
	}
	return count, nil
}

func (s *fakeVoteRepo) CreatePostUpvote(_ context.Context, userID, postID uint64) error {
	return s.insert(s.postUpvotes, userID, postID)
}

func (s *fakeVoteRepo) DeletePostUpvote(_ context.Context, userID, postID uint64) (int64, error) {
	return s.remove(s.postUpvotes, userID, postID)
}

func (s *fakeVoteRepo) CreatePostDownvote(_ context.Context, userID, postID uint64) error {
	return s.insert(s.postDownvotes, userID, postID)
}

func (s *fakeVoteRepo) DeletePostDownvote(_ context.Context, userID, postID uint64) (int64, error) {
	return s.remove(s.postDownvotes, userID, postID)
}

func (s *fakeVoteRepo) CreateCommentUpvote(_ context.Context, userID, commentID uint64) error {
	return s.insert(s.commentUpvotes, userID, commentID)
}

func (s *fakeVoteRepo) DeleteCommentUpvote(_ context.Context, userID, commentID uint64) (int64, error) {
	return s.remove(s.commentUpvotes, userID, commentID)
}

func (s *fakeVoteRepo) CreateCommentDownvote(_ context.Context, userID, commentID uint64) error {
	return s.insert(s.commentDownvote, userID, commentID)
}

func (s *fakeVoteRepo) DeleteCommentDownvote(_ context.Context, userID, commentID uint64) (int64, error) {
	return s.remove(s.commentDownvote, userID, commentID)
}

func (s *fakeVoteRepo) CountPostUpvotes(_ context.Context, postID uint64) (int64, error) {
	return s.count(s.postUpvotes, postID)
}

func (s *fakeVoteRepo) CountPostDownvotes(_ context.Context, postID uint64) (int64, error) {
	return s.count(s.postDownvotes, postID)
}

func (s *fakeVoteRepo) CountCommentUpvotes(_ context.Context, commentID uint64) (int64, error) {
	return s.count(s.commentUpvotes, commentID)
}

func (s *fakeVoteRepo) CountCommentDownvotes(_ context.Context, commentID uint64) (int64, error) {
	return s.count(s.commentDownvote, commentID)
}

func newVoteServiceForTest() VoteService {
	alice := &model.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	bob := &model.User{ID: 2, Username: "bob", Email: "bob@example.com"}
	postRepo := &fakePostRepoForVotes{posts: map[uint64]*model.Post{
		10: {ID: 10, UserID: 2, Title: "hello"},
	}}
	commentRepo := &fakeCommentRepoForVotes{comments: map[uint64]*model.Comment{
		20: {ID: 20, UserID: 2, PostID: 10},
	}}
	return NewVoteService(newFakeVoteRepo(), postRepo, commentRepo, newFakeUserRepo(alice, bob), &fakeProducer{})
}

// 计分链路依赖 Redis 缓存，无实例时跳过
func setupVoteRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping test - no Redis connection configured")
	}
	require.NoError(t, redis.InitRedis(config.RedisConfig{Addr: addr}))
	require.NoError(t, redis.Rdb.FlushDB(context.Background()).Err())
}

func TestUpvotePost_TargetMissing(t *testing.T) {
	svc := newVoteServiceForTest()
	_, err := svc.UpvotePost(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpvoteComment_TargetMissing(t *testing.T) {
	svc := newVoteServiceForTest()
	_, err := svc.UpvoteComment(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestPostVoteFlow(t *testing.T) {
	setupVoteRedis(t)
	svc := newVoteServiceForTest()
	ctx := context.Background()

	score, err := svc.UpvotePost(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	// 重复点赞幂等，分数不变
	score, err = svc.UpvotePost(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	score, err = svc.DownvotePost(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)

	score, err = svc.UndoUpvotePost(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), score)

	// 没有投过票时撤销是无操作
	score, err = svc.UndoUpvotePost(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), score)

	score, err = svc.UndoDownvotePost(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
}

// failingVoteRepo 模拟投票写库失败
type failingVoteRepo struct {
	*fakeVoteRepo
}

func (s *failingVoteRepo) CreatePostUpvote(_ context.Context, _, _ uint64) error {
	return errors.New("connection reset")
}

func TestUpvotePost_SaveFailure(t *testing.T) {
	setupVoteRedis(t)
	alice := &model.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	postRepo := &fakePostRepoForVotes{posts: map[uint64]*model.Post{
		10: {ID: 10, UserID: 1, Title: "hello"},
	}}
	commentRepo := &fakeCommentRepoForVotes{comments: map[uint64]*model.Comment{}}
	svc := NewVoteService(&failingVoteRepo{newFakeVoteRepo()}, postRepo, commentRepo, newFakeUserRepo(alice), &fakeProducer{})

	// 写库失败只记日志，照常返回当前分数
	score, err := svc.UpvotePost(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
}

func TestCommentVoteFlow(t *testing.T) {
	setupVoteRedis(t)
	svc := newVoteServiceForTest()
	ctx := context.Background()

	score, err := svc.UpvoteComment(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	score, err = svc.DownvoteComment(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)

	score, err = svc.UndoDownvoteComment(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)
}
