package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/es"
	"Ripple/internal/policy"
	"Ripple/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostRepo 实现检索与筛选链路用到的方法，记录最近一次筛选条件
type fakePostRepo struct {
	repository.PostRepo
	posts       map[uint64]*model.Post
	searchTerm  string
	lastOrderBy string
	lastFilter  *repository.PostFilter
	deleted     []uint64
}

func newFakePostRepo(posts ...*model.Post) *fakePostRepo {
	repo := &fakePostRepo{posts: map[uint64]*model.Post{}}
	for _, post := range posts {
		repo.posts[post.ID] = post
	}
	return repo
}

func (s *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	return s.posts[id], nil
}

func (s *fakePostRepo) GetPostWithComments(_ context.Context, id uint64) (*model.Post, error) {
	return s.posts[id], nil
}

func (s *fakePostRepo) GetPostByIds(_ context.Context, ids []uint64) ([]*model.Post, error) {
	// 刻意乱序返回，检验调用方是否按命中顺序重排
	found := make([]*model.Post, 0, len(ids))
	for id := len(ids) - 1; id >= 0; id-- {
		if post, ok := s.posts[ids[id]]; ok {
			found = append(found, post)
		}
	}
	return found, nil
}

func (s *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = uint64(len(s.posts) + 1)
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostRepo) CreatePostImages(_ context.Context, _ []*model.PostImage) error {
	return nil
}

func (s *fakePostRepo) ListTop(_ context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *fakePostRepo) ListByUser(_ context.Context, userID uint64, orderBy string) ([]*model.Post, error) {
	s.lastOrderBy = orderBy
	var posts []*model.Post
	for _, post := range s.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (s *fakePostRepo) SearchLike(_ context.Context, term string) ([]*model.Post, error) {
	s.searchTerm = term
	posts := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *fakePostRepo) ApplyFilter(_ context.Context, filter *repository.PostFilter) ([]*model.Post, error) {
	s.lastFilter = filter
	return nil, nil
}

func (s *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	s.deleted = append(s.deleted, id)
	delete(s.posts, id)
	return nil
}

type fakeESRepo struct {
	hits    []uint64
	deleted []uint64
}

func (s *fakeESRepo) SearchPrefix(_ context.Context, _ []string) ([]uint64, error) {
	return s.hits, nil
}

func (s *fakeESRepo) IndexPost(_ context.Context, _ *es.PostES) error {
	return nil
}

func (s *fakeESRepo) DeletePost(_ context.Context, id uint64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newPostServiceForTest(postRepo *fakePostRepo, topicRepo *fakeTopicRepo, followRepo *fakeFollowRepo, esRepo *fakeESRepo) PostService {
	return newPostServiceWithVotes(postRepo, topicRepo, followRepo, newFakeVoteRepo(), esRepo)
}

func newPostServiceWithVotes(postRepo *fakePostRepo, topicRepo *fakeTopicRepo, followRepo *fakeFollowRepo, voteRepo *fakeVoteRepo, esRepo *fakeESRepo) PostService {
	return NewPostService(postRepo, topicRepo, followRepo, voteRepo, esRepo, policy.NewPostPolicy(), &fakeProducer{})
}

func TestSearchPosts(t *testing.T) {
	posts := []*model.Post{
		{ID: 1, Title: "go concurrency"},
		{ID: 2, Title: "go generics"},
		{ID: 3, Title: "rust borrow checker"},
	}

	t.Run("单词走数据库模糊匹配", func(t *testing.T) {
		postRepo := newFakePostRepo(posts...)
		esRepo := &fakeESRepo{}
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), esRepo)

		results, err := svc.SearchPosts(context.Background(), 0, "  go  ")
		require.NoError(t, err)
		assert.Equal(t, "go", postRepo.searchTerm)
		assert.Len(t, results.Posts, 3)
		assert.Empty(t, results.FollowedTopicIDs)
	})

	t.Run("多词走ES并按命中顺序返回", func(t *testing.T) {
		postRepo := newFakePostRepo(posts...)
		esRepo := &fakeESRepo{hits: []uint64{2, 1}}
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), esRepo)

		results, err := svc.SearchPosts(context.Background(), 0, "go gen")
		require.NoError(t, err)
		require.Len(t, results.Posts, 2)
		assert.Equal(t, uint64(2), results.Posts[0].ID)
		assert.Equal(t, uint64(1), results.Posts[1].ID)
	})

	t.Run("空查询返回空列表", func(t *testing.T) {
		svc := newPostServiceForTest(newFakePostRepo(), newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		results, err := svc.SearchPosts(context.Background(), 0, "   ")
		require.NoError(t, err)
		assert.Empty(t, results.Posts)
	})

	t.Run("ES无命中返回空列表", func(t *testing.T) {
		svc := newPostServiceForTest(newFakePostRepo(posts...), newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		results, err := svc.SearchPosts(context.Background(), 0, "no such post")
		require.NoError(t, err)
		assert.Empty(t, results.Posts)
	})

	t.Run("登录用户响应附带已关注话题", func(t *testing.T) {
		followRepo := newFakeFollowRepo()
		followRepo.topicFollows[[2]uint64{7, 5}] = true
		svc := newPostServiceForTest(newFakePostRepo(posts...), newFakeTopicRepo(), followRepo, &fakeESRepo{})

		results, err := svc.SearchPosts(context.Background(), 7, "go")
		require.NoError(t, err)
		assert.Equal(t, []uint64{5}, results.FollowedTopicIDs)
	})
}

func TestListTop(t *testing.T) {
	followRepo := newFakeFollowRepo()
	followRepo.topicFollows[[2]uint64{7, 5}] = true
	svc := newPostServiceForTest(newFakePostRepo(), newFakeTopicRepo(), followRepo, &fakeESRepo{})

	results, err := svc.ListTop(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5}, results.FollowedTopicIDs)
}

func TestCreatePost(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}
	golang := &model.Topic{ID: 5, Title: "golang"}

	t.Run("已有话题挂到帖子上", func(t *testing.T) {
		svc := newPostServiceForTest(newFakePostRepo(), newFakeTopicRepo(golang), newFakeFollowRepo(), &fakeESRepo{})

		postDTO, err := svc.CreatePost(context.Background(), alice, &dto.CreatePostDTO{
			Title:   "hello",
			Caption: "world",
			Topic:   "golang",
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, postDTO.Topic)
		assert.Equal(t, uint64(5), postDTO.Topic.ID)
	})

	t.Run("不存在的话题静默忽略", func(t *testing.T) {
		topicRepo := newFakeTopicRepo(golang)
		svc := newPostServiceForTest(newFakePostRepo(), topicRepo, newFakeFollowRepo(), &fakeESRepo{})

		postDTO, err := svc.CreatePost(context.Background(), alice, &dto.CreatePostDTO{
			Title:   "hello",
			Caption: "world",
			Topic:   "no-such-topic",
		}, nil)
		require.NoError(t, err)
		assert.Nil(t, postDTO.Topic)
		// 不为帖子凭空造话题
		assert.Len(t, topicRepo.topics, 1)
	})
}

func TestApplyFilter(t *testing.T) {
	golang := &model.Topic{ID: 5, Title: "golang"}

	t.Run("话题名换算为话题ID", func(t *testing.T) {
		postRepo := newFakePostRepo()
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(golang), newFakeFollowRepo(), &fakeESRepo{})

		_, err := svc.ApplyFilter(context.Background(), 0, &dto.FilterDTO{TopicFilter: "golang"})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), postRepo.lastFilter.TopicID)
	})

	t.Run("未知话题", func(t *testing.T) {
		svc := newPostServiceForTest(newFakePostRepo(), newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		_, err := svc.ApplyFilter(context.Background(), 0, &dto.FilterDTO{TopicFilter: "nonexistent"})
		assert.ErrorIs(t, err, ErrTopicNotFound)
	})

	t.Run("日期格式非法", func(t *testing.T) {
		svc := newPostServiceForTest(newFakePostRepo(), newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		_, err := svc.ApplyFilter(context.Background(), 0, &dto.FilterDTO{MinDate: "15/03/2024"})
		assert.ErrorIs(t, err, ErrParamInvalid)
	})

	t.Run("followedTopics注入关注话题集", func(t *testing.T) {
		postRepo := newFakePostRepo()
		followRepo := newFakeFollowRepo()
		require.NoError(t, followRepo.CreateTopicFollow(context.Background(), 7, 5))
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(golang), followRepo, &fakeESRepo{})

		_, err := svc.ApplyFilter(context.Background(), 7, &dto.FilterDTO{FollowedTopics: true})
		require.NoError(t, err)
		assert.Equal(t, []uint64{5}, postRepo.lastFilter.TopicIDs)
	})

	t.Run("匿名用户忽略followedTopics", func(t *testing.T) {
		postRepo := newFakePostRepo()
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		_, err := svc.ApplyFilter(context.Background(), 0, &dto.FilterDTO{FollowedTopics: true})
		require.NoError(t, err)
		assert.Nil(t, postRepo.lastFilter.TopicIDs)
	})

	t.Run("排序与投票区间透传", func(t *testing.T) {
		postRepo := newFakePostRepo()
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		minUpvote := 10
		_, err := svc.ApplyFilter(context.Background(), 0, &dto.FilterDTO{
			Sort:      "voteDown",
			TimeSort:  "last_week",
			MinUpvote: &minUpvote,
		})
		require.NoError(t, err)
		assert.Equal(t, "voteDown", postRepo.lastFilter.Sort)
		assert.Equal(t, "last_week", postRepo.lastFilter.TimeSort)
		require.NotNil(t, postRepo.lastFilter.MinUpvote)
		assert.Equal(t, 10, *postRepo.lastFilter.MinUpvote)
	})
}

func TestDeletePost(t *testing.T) {
	author := &model.User{ID: 1, Username: "alice"}
	admin := &model.User{ID: 2, Username: "root", IsAdmin: true}
	stranger := &model.User{ID: 3, Username: "mallory"}

	newPost := func(comments int) *model.Post {
		post := &model.Post{ID: 10, UserID: 1, Title: "hello"}
		for i := 0; i < comments; i++ {
			post.Comments = append(post.Comments, model.Comment{ID: uint64(100 + i), PostID: 10})
		}
		return post
	}

	t.Run("作者删除无评论帖子", func(t *testing.T) {
		postRepo := newFakePostRepo(newPost(0))
		esRepo := &fakeESRepo{}
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), esRepo)

		require.NoError(t, svc.DeletePost(context.Background(), author, 10))
		assert.Equal(t, []uint64{10}, postRepo.deleted)
		assert.Equal(t, []uint64{10}, esRepo.deleted)
	})

	t.Run("有评论时作者删除被拒", func(t *testing.T) {
		postRepo := newFakePostRepo(newPost(2))
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		err := svc.DeletePost(context.Background(), author, 10)
		assert.ErrorIs(t, err, ErrPostHasComments)
		assert.Empty(t, postRepo.deleted)
	})

	t.Run("有投票时作者删除被拒", func(t *testing.T) {
		postRepo := newFakePostRepo(newPost(0))
		voteRepo := newFakeVoteRepo()
		voteRepo.postUpvotes[[2]uint64{9, 10}] = true
		svc := newPostServiceWithVotes(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), voteRepo, &fakeESRepo{})

		err := svc.DeletePost(context.Background(), author, 10)
		assert.ErrorIs(t, err, ErrPostHasVotes)
		assert.Empty(t, postRepo.deleted)
	})

	t.Run("有投票时管理员可删", func(t *testing.T) {
		postRepo := newFakePostRepo(newPost(0))
		voteRepo := newFakeVoteRepo()
		voteRepo.postDownvotes[[2]uint64{9, 10}] = true
		svc := newPostServiceWithVotes(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), voteRepo, &fakeESRepo{})

		require.NoError(t, svc.DeletePost(context.Background(), admin, 10))
		assert.Equal(t, []uint64{10}, postRepo.deleted)
	})

	t.Run("有评论时管理员可删", func(t *testing.T) {
		postRepo := newFakePostRepo(newPost(2))
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		require.NoError(t, svc.DeletePost(context.Background(), admin, 10))
		assert.Equal(t, []uint64{10}, postRepo.deleted)
	})

	t.Run("非作者非管理员无权删除", func(t *testing.T) {
		postRepo := newFakePostRepo(newPost(0))
		svc := newPostServiceForTest(postRepo, newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})

		err := svc.DeletePost(context.Background(), stranger, 10)
		assert.ErrorIs(t, err, UnauthorizedError)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		svc := newPostServiceForTest(newFakePostRepo(), newFakeTopicRepo(), newFakeFollowRepo(), &fakeESRepo{})
		assert.ErrorIs(t, svc.DeletePost(context.Background(), author, 99), ErrPostNotFound)
	})
}
