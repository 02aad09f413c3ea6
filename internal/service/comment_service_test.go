package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/kafka"
	"Ripple/internal/policy"
	"Ripple/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentRepo struct {
	repository.CommentRepo
	comments map[uint64]*model.Comment
	deleted  []uint64
	updated  map[uint64][2]string
}

func newFakeCommentRepo(comments ...*model.Comment) *fakeCommentRepo {
	repo := &fakeCommentRepo{
		comments: map[uint64]*model.Comment{},
		updated:  map[uint64][2]string{},
	}
	for _, comment := range comments {
		repo.comments[comment.ID] = comment
	}
	return repo
}

func (s *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = uint64(len(s.comments) + 100)
	s.comments[comment.ID] = comment
	return nil
}

func (s *fakeCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	return s.comments[id], nil
}

func (s *fakeCommentRepo) UpdateComment(_ context.Context, id uint64, title, caption string) error {
	s.updated[id] = [2]string{title, caption}
	return nil
}

func (s *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	s.deleted = append(s.deleted, id)
	delete(s.comments, id)
	return nil
}

func newCommentServiceForTest(commentRepo *fakeCommentRepo, postRepo *fakePostRepo, producer *fakeProducer) CommentService {
	return NewCommentService(commentRepo, postRepo, policy.NewCommentPolicy(), policy.NewImageCommentPolicy(), producer)
}

func TestCreateComment(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}
	post := &model.Post{ID: 10, UserID: 2, Title: "hello"}

	t.Run("成功评论并通知作者", func(t *testing.T) {
		commentRepo := newFakeCommentRepo()
		producer := &fakeProducer{}
		svc := newCommentServiceForTest(commentRepo, newFakePostRepo(post), producer)

		commentDTO, err := svc.CreateComment(context.Background(), alice, 10, &dto.CreateCommentDTO{
			Title:   "nice",
			Caption: "great post",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "nice", commentDTO.Title)
		require.NotNil(t, commentDTO.User)
		assert.Equal(t, "alice", commentDTO.User.Username)

		require.Len(t, producer.events, 1)
		event := producer.events[0]
		assert.Equal(t, kafka.EventPostComment, event.Type)
		assert.Equal(t, uint64(2), event.ReceiverID)
		assert.Equal(t, uint64(10), event.PostID)
		assert.Contains(t, event.Content, "hello")
	})

	t.Run("帖子不存在", func(t *testing.T) {
		svc := newCommentServiceForTest(newFakeCommentRepo(), newFakePostRepo(), &fakeProducer{})

		_, err := svc.CreateComment(context.Background(), alice, 99, &dto.CreateCommentDTO{Title: "x", Caption: "y"}, nil)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("封禁用户禁止评论", func(t *testing.T) {
		blocked := &model.User{ID: 3, Username: "mallory", Blocked: true}
		svc := newCommentServiceForTest(newFakeCommentRepo(), newFakePostRepo(post), &fakeProducer{})

		_, err := svc.CreateComment(context.Background(), blocked, 10, &dto.CreateCommentDTO{Title: "x", Caption: "y"}, nil)
		assert.ErrorIs(t, err, UnauthorizedError)
	})
}

func TestUpdateComment(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}
	stranger := &model.User{ID: 3, Username: "mallory"}
	comment := &model.Comment{ID: 100, PostID: 10, UserID: 1, Title: "old", Caption: "old caption"}

	t.Run("作者可改", func(t *testing.T) {
		commentRepo := newFakeCommentRepo(comment)
		svc := newCommentServiceForTest(commentRepo, newFakePostRepo(), &fakeProducer{})

		err := svc.UpdateComment(context.Background(), alice, 100, &dto.UpdateCommentDTO{Title: "new", Caption: "new caption"})
		require.NoError(t, err)
		assert.Equal(t, [2]string{"new", "new caption"}, commentRepo.updated[100])
	})

	t.Run("非作者不可改", func(t *testing.T) {
		svc := newCommentServiceForTest(newFakeCommentRepo(comment), newFakePostRepo(), &fakeProducer{})

		err := svc.UpdateComment(context.Background(), stranger, 100, &dto.UpdateCommentDTO{Title: "new", Caption: "new"})
		assert.ErrorIs(t, err, UnauthorizedError)
	})

	t.Run("评论不存在", func(t *testing.T) {
		svc := newCommentServiceForTest(newFakeCommentRepo(), newFakePostRepo(), &fakeProducer{})

		err := svc.UpdateComment(context.Background(), alice, 42, &dto.UpdateCommentDTO{Title: "new", Caption: "new"})
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}
	admin := &model.User{ID: 2, Username: "root", IsAdmin: true}
	stranger := &model.User{ID: 3, Username: "mallory"}

	newComment := func() *model.Comment {
		return &model.Comment{ID: 100, PostID: 10, UserID: 1}
	}

	t.Run("作者可删", func(t *testing.T) {
		commentRepo := newFakeCommentRepo(newComment())
		svc := newCommentServiceForTest(commentRepo, newFakePostRepo(), &fakeProducer{})

		require.NoError(t, svc.DeleteComment(context.Background(), alice, 100))
		assert.Equal(t, []uint64{100}, commentRepo.deleted)
	})

	t.Run("管理员可删", func(t *testing.T) {
		commentRepo := newFakeCommentRepo(newComment())
		svc := newCommentServiceForTest(commentRepo, newFakePostRepo(), &fakeProducer{})

		require.NoError(t, svc.DeleteComment(context.Background(), admin, 100))
		assert.Equal(t, []uint64{100}, commentRepo.deleted)
	})

	t.Run("非作者非管理员不可删", func(t *testing.T) {
		svc := newCommentServiceForTest(newFakeCommentRepo(newComment()), newFakePostRepo(), &fakeProducer{})

		assert.ErrorIs(t, svc.DeleteComment(context.Background(), stranger, 100), UnauthorizedError)
	})
}

func TestListMyPosts(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}

	t.Run("按时间倒序取自己的帖子", func(t *testing.T) {
		postRepo := newFakePostRepo(
			&model.Post{ID: 10, UserID: 1, Title: "mine"},
			&model.Post{ID: 11, UserID: 2, Title: "theirs"},
		)
		svc := newCommentServiceForTest(newFakeCommentRepo(), postRepo, &fakeProducer{})

		posts, err := svc.ListMyPosts(context.Background(), alice)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "mine", posts[0].Title)
		assert.Equal(t, "postdate DESC", postRepo.lastOrderBy)
	})

	t.Run("未登录拒绝", func(t *testing.T) {
		svc := newCommentServiceForTest(newFakeCommentRepo(), newFakePostRepo(), &fakeProducer{})

		_, err := svc.ListMyPosts(context.Background(), nil)
		assert.ErrorIs(t, err, UnauthorizedError)
	})
}
