package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/redis"
	"Ripple/internal/pkg/security"
	"Ripple/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const recoveryTokenTTL = 24 * time.Hour

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (string, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserModel(ctx context.Context, id uint64) (*model.User, error)
	GetUserHome(ctx context.Context, targetID, viewerID uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error
	UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error
	ChangePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error
	BlockUser(ctx context.Context, id uint64) error
	UnblockUser(ctx context.Context, id uint64) error
	AnonymizeUser(ctx context.Context, id uint64) error
	ForgotPassword(ctx context.Context, email string) error
	RecoverPassword(ctx context.Context, recoverDTO *dto.RecoverPasswordDTO) error
}

type UserServiceImpl struct {
	userRepo     repository.UserRepo
	followRepo   repository.FollowRepo
	recoveryRepo repository.RecoveryRepo
	mailService  MailService
}

func NewUserService(
	userRepo repository.UserRepo,
	followRepo repository.FollowRepo,
	recoveryRepo repository.RecoveryRepo,
	mailService MailService,
) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		followRepo:   followRepo,
		recoveryRepo: recoveryRepo,
		mailService:  mailService,
	}
}

// Register 注册成功即登录，直接返回可用的 token
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (string, error) {
	// anonymous 前缀保留给注销用户
	if strings.HasPrefix(strings.ToLower(regDTO.Username), consts.ReservedUsernamePrefix) {
		return "", ErrUsernameReserved
	}

	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return "", err
	}
	if findUser != nil {
		return "", ErrUserExist
	}

	findUser, err = s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return "", err
	}
	if findUser != nil {
		return "", ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:     regDTO.Name,
		Username: regDTO.Username,
		Email:    regDTO.Email,
		Password: passwordHash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return security.GenerateToken(user.ID, user.IsAdmin)
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.Status == consts.UserStatusAnonymized {
		return "", ErrUserAnonymized
	}
	if user.Blocked {
		return "", ErrUserBan
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID, user.IsAdmin)
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserModel(ctx context.Context, id uint64) (*model.User, error) {
	return s.userRepo.GetUserById(ctx, id)
}

func (s *UserServiceImpl) GetUserHome(ctx context.Context, targetID, viewerID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	// 已注销账号不对外展示主页
	if user.Status == consts.UserStatusAnonymized {
		return nil, ErrUserAnonymized
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	// 邮箱只给本人看
	if viewerID != user.ID {
		userDTO.Email = ""
	}

	if userDTO.Followers, err = s.followRepo.CountFollowers(ctx, targetID); err != nil {
		return nil, err
	}
	if userDTO.Following, err = s.followRepo.CountFollowing(ctx, targetID); err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID != targetID {
		if userDTO.IsFollowed, err = s.followRepo.ExistsUserFollow(ctx, viewerID, targetID); err != nil {
			return nil, err
		}
	}

	return userDTO, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	updates := map[string]interface{}{}

	if updateDTO.Name != nil {
		updates["name"] = *updateDTO.Name
	}
	if updateDTO.Username != nil && *updateDTO.Username != user.Username {
		if strings.HasPrefix(strings.ToLower(*updateDTO.Username), consts.ReservedUsernamePrefix) {
			return ErrUsernameReserved
		}
		findUser, err := s.userRepo.GetUserByUsername(ctx, *updateDTO.Username)
		if err != nil {
			return err
		}
		if findUser != nil {
			return ErrUserUsernameExist
		}
		updates["username"] = *updateDTO.Username
	}
	if updateDTO.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *updateDTO.Birthday)
		if err != nil {
			return ErrParamInvalid
		}
		updates["birthday"] = birthday
	}
	if updateDTO.Gender != nil {
		updates["gender"] = *updateDTO.Gender
	}
	if updateDTO.Country != nil {
		updates["country"] = *updateDTO.Country
	}
	if updateDTO.URL != nil {
		updates["url"] = *updateDTO.URL
	}

	if len(updates) == 0 {
		return nil
	}
	return s.userRepo.UpdateUser(ctx, id, updates)
}

func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error {
	return s.userRepo.UpdateUser(ctx, id, map[string]interface{}{"avatar_url": avatarURL})
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = security.CheckPasswordHash(changeDTO.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateUserPassword(ctx, id, passwordHash)
}

func (s *UserServiceImpl) BlockUser(ctx context.Context, id uint64) error {
	rows, err := s.userRepo.UpdateUserBlocked(ctx, id, true)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserServiceImpl) UnblockUser(ctx context.Context, id uint64) error {
	rows, err := s.userRepo.UpdateUserBlocked(ctx, id, false)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AnonymizeUser 注销账户：身份字段整体替换为 anonymousN，发帖内容保留
func (s *UserServiceImpl) AnonymizeUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Status == consts.UserStatusAnonymized {
		return ErrUserAnonymized
	}

	// 原子自增保证序号不重复
	seq, err := redis.Incr(ctx, consts.AnonymousCounterKey)
	if err != nil {
		return err
	}
	if seq == 1 {
		_ = redis.Expire(ctx, consts.AnonymousCounterKey, consts.AnonymousCounterTTLYears*365*24*time.Hour)
	}

	username := fmt.Sprintf("%s%d", consts.ReservedUsernamePrefix, seq)
	email := fmt.Sprintf("%s@example.com", username)

	// 随机密码永不下发，账户从此无法登录
	lockedPassword, err := security.HashPassword(uuid.NewString())
	if err != nil {
		return err
	}

	if err = s.userRepo.AnonymizeUser(ctx, id, username, email, lockedPassword); err != nil {
		return err
	}

	if err = s.recoveryRepo.DeleteByUser(ctx, id); err != nil {
		log.Error("failed to delete recovery tokens for anonymized user", "user_id", id, "err", err)
	}

	log.Info("user anonymized", "user_id", id, "alias", username)
	return nil
}

// ForgotPassword 找回密码：邮箱未注册时静默成功，避免探测
func (s *UserServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.Status == consts.UserStatusAnonymized {
		return nil
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ReplaceAll(uuid.NewString(), "-", "")

	recovery := &model.PasswordRecovery{
		Token:          token,
		UserID:         user.ID,
		ExpirationDate: time.Now().Add(recoveryTokenTTL),
	}
	if err = s.recoveryRepo.CreateRecovery(ctx, recovery); err != nil {
		return err
	}

	return s.mailService.SendRecoveryMail(ctx, email, token)
}

func (s *UserServiceImpl) RecoverPassword(ctx context.Context, recoverDTO *dto.RecoverPasswordDTO) error {
	recovery, err := s.recoveryRepo.GetValidRecovery(ctx, recoverDTO.Token)
	if err != nil {
		return err
	}
	if recovery == nil {
		return ErrRecoveryInvalid
	}

	passwordHash, err := security.HashPassword(recoverDTO.Password)
	if err != nil {
		return err
	}
	if err = s.userRepo.UpdateUserPassword(ctx, recovery.UserID, passwordHash); err != nil {
		return err
	}

	// 令牌一次性，成功后同用户全部失效
	return s.recoveryRepo.DeleteByUser(ctx, recovery.UserID)
}
