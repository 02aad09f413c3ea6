package repository

import (
	"Ripple/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type RecoveryRepo interface {
	CreateRecovery(ctx context.Context, recovery *model.PasswordRecovery) error
	GetValidRecovery(ctx context.Context, token string) (*model.PasswordRecovery, error)
	DeleteByUser(ctx context.Context, userID uint64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type RecoveryRepoImpl struct {
	db *gorm.DB
}

func NewRecoveryRepository(db *gorm.DB) RecoveryRepo {
	return &RecoveryRepoImpl{
		db: db,
	}
}

func (s *RecoveryRepoImpl) CreateRecovery(ctx context.Context, recovery *model.PasswordRecovery) error {
	return s.db.WithContext(ctx).Create(recovery).Error
}

// GetValidRecovery 仅返回未过期的令牌
func (s *RecoveryRepoImpl) GetValidRecovery(ctx context.Context, token string) (*model.PasswordRecovery, error) {
	var recovery model.PasswordRecovery
	err := s.db.WithContext(ctx).
		Where("token = ? AND expiration_date > ?", token, time.Now()).
		First(&recovery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recovery, nil
}

func (s *RecoveryRepoImpl) DeleteByUser(ctx context.Context, userID uint64) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PasswordRecovery{}).Error
}

func (s *RecoveryRepoImpl) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expiration_date <= ?", time.Now()).
		Delete(&model.PasswordRecovery{})
	return result.RowsAffected, result.Error
}
