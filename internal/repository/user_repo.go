package repository

import (
	"Ripple/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, id uint64, updates map[string]interface{}) error
	UpdateUserPassword(ctx context.Context, id uint64, passwordHash string) error
	UpdateUserBlocked(ctx context.Context, id uint64, blocked bool) (int64, error)
	AnonymizeUser(ctx context.Context, id uint64, username, email, passwordHash string) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where("email = ?", email).First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where("username = ?", username).First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// UpdateUser 局部更新，只改 updates 中出现的列
func (s *UserRepoImpl) UpdateUser(ctx context.Context, id uint64, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *UserRepoImpl) UpdateUserPassword(ctx context.Context, id uint64, passwordHash string) error {
	return s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}

func (s *UserRepoImpl) UpdateUserBlocked(ctx context.Context, id uint64, blocked bool) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("blocked", blocked)

	return result.RowsAffected, result.Error
}

// AnonymizeUser 软删除：覆盖身份字段并清理关注关系，行本身保留
func (s *UserRepoImpl) AnonymizeUser(ctx context.Context, id uint64, username, email, passwordHash string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"username":   username,
			"email":      email,
			"password":   passwordHash,
			"status":     1,
			"name":       "",
			"birthday":   nil,
			"gender":     nil,
			"country":    nil,
			"url":        nil,
			"avatar_url": nil,
		}
		if result := tx.Model(&model.User{}).Where("id = ?", id).Updates(updates); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("follower_id = ?", id).Delete(&model.UserFollow{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("following_id = ?", id).Delete(&model.UserFollow{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("user_id = ?", id).Delete(&model.TopicFollow{}); result.Error != nil {
			return result.Error
		}

		return nil
	})
}
