package policy

import (
	"testing"

	"Ripple/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPostPolicy(t *testing.T) {
	p := NewPostPolicy()
	author := &model.User{ID: 1}
	other := &model.User{ID: 2}
	admin := &model.User{ID: 3, IsAdmin: true}
	blocked := &model.User{ID: 4, Blocked: true}
	post := &model.Post{ID: 10, UserID: 1}

	assert.True(t, p.CanView(nil, post))
	assert.True(t, p.CanCreate(author))
	assert.False(t, p.CanCreate(nil))
	assert.False(t, p.CanCreate(blocked))

	assert.True(t, p.CanUpdate(author, post))
	assert.False(t, p.CanUpdate(other, post))
	assert.False(t, p.CanUpdate(admin, post))
	assert.False(t, p.CanUpdate(nil, post))

	assert.True(t, p.CanDelete(author, post))
	assert.True(t, p.CanDelete(admin, post))
	assert.False(t, p.CanDelete(other, post))
}

func TestCommentPolicy(t *testing.T) {
	p := NewCommentPolicy()
	author := &model.User{ID: 1}
	other := &model.User{ID: 2}
	admin := &model.User{ID: 3, IsAdmin: true}
	comment := &model.Comment{ID: 20, UserID: 1}

	assert.True(t, p.CanView(nil, comment))
	assert.True(t, p.CanUpdate(author, comment))
	assert.False(t, p.CanUpdate(admin, comment))
	assert.True(t, p.CanDelete(admin, comment))
	assert.False(t, p.CanDelete(other, comment))
}

func TestImageCommentPolicy(t *testing.T) {
	p := NewImageCommentPolicy()
	author := &model.User{ID: 1}
	other := &model.User{ID: 2}
	comment := &model.Comment{ID: 20, UserID: 1}

	assert.True(t, p.CanCreate(author, comment))
	assert.False(t, p.CanCreate(other, comment))
	assert.False(t, p.CanCreate(nil, comment))
	assert.False(t, p.CanCreate(author, nil))
}

func TestUserPolicy(t *testing.T) {
	p := NewUserPolicy()
	self := &model.User{ID: 1}
	other := &model.User{ID: 2}
	admin := &model.User{ID: 3, IsAdmin: true}

	assert.True(t, p.CanUpdate(self, self))
	assert.False(t, p.CanUpdate(other, self))
	assert.False(t, p.CanUpdate(admin, self))

	assert.True(t, p.CanBlock(admin, self))
	assert.False(t, p.CanBlock(admin, admin))
	assert.False(t, p.CanBlock(self, other))

	assert.True(t, p.CanAnonymize(self, self))
	assert.True(t, p.CanAnonymize(admin, self))
	assert.False(t, p.CanAnonymize(other, self))
}
