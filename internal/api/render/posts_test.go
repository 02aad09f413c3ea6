package render

import (
	"Ripple/internal/api/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsHTML(t *testing.T) {
	postDate := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	posts := []*dto.PostDTO{
		{
			ID:        7,
			Title:     "第一帖",
			Caption:   "hello world",
			Upvotes:   3,
			Downvotes: 1,
			PostDate:  postDate,
			User:      &dto.UserSimpleDTO{ID: 1, Username: "alice"},
			Topic:     &dto.TopicDTO{ID: 2, Title: "golang"},
			Images: []*dto.PostImageDTO{
				{ImageURL: "http://cdn.example.com/a.png", Width: 800, Height: 600},
			},
		},
	}

	html, err := PostsHTML(posts)
	require.NoError(t, err)

	assert.Contains(t, html, `href="/posts/7"`)
	assert.Contains(t, html, "第一帖")
	assert.Contains(t, html, "golang")
	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "2024-03-15 10:30")
	assert.Contains(t, html, `src="http://cdn.example.com/a.png"`)
	assert.NotContains(t, html, "no-posts")
}

func TestPostsHTML_Empty(t *testing.T) {
	html, err := PostsHTML(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "没有符合条件的帖子")
	assert.NotContains(t, html, "<article")
}

func TestPostsHTML_EscapesUserContent(t *testing.T) {
	posts := []*dto.PostDTO{
		{
			ID:      1,
			Title:   `<script>alert("x")</script>`,
			Caption: "plain",
		},
	}

	html, err := PostsHTML(posts)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
