package service

import (
	"Ripple/internal/api/config"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/redis"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// 同一邮箱的找回密码邮件发送间隔
const recoveryMailInterval = time.Minute

type MailService interface {
	SendRecoveryMail(ctx context.Context, email string, token string) error
}

type MailServiceImpl struct {
	client *resty.Client
}

func NewMailService() MailService {
	client := resty.New().
		SetTimeout(10 * time.Second)

	return &MailServiceImpl{
		client: client,
	}
}

// SendRecoveryMail 通过邮件网关发送找回密码链接
func (s *MailServiceImpl) SendRecoveryMail(ctx context.Context, email string, token string) error {
	ok, err := redis.SetNX(ctx, consts.RecoveryMailLockKey+email, 1, recoveryMailInterval)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecoveryThrottled
	}

	mailCfg := config.Cfg.Mail
	recoveryURL := fmt.Sprintf("%s/password/recover/%s", mailCfg.BaseURL, token)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+mailCfg.ApiKey).
		SetBody(map[string]interface{}{
			"from":    mailCfg.Sender,
			"to":      email,
			"subject": "密码找回",
			"text":    fmt.Sprintf("请在一小时内通过以下链接重置密码: %s", recoveryURL),
		}).
		Post(mailCfg.URL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail send failed: %s", resp.Status())
	}

	log.Info("recovery mail sent", "email", email)
	return nil
}
