package job

import (
	"Ripple/internal/repository"
	"context"
	log "log/slog"
)

// RecoveryCleanJob 清理过期的找回密码令牌
type RecoveryCleanJob struct {
	recoveryRepo repository.RecoveryRepo
}

func NewRecoveryCleanJob(recoveryRepo repository.RecoveryRepo) *RecoveryCleanJob {
	return &RecoveryCleanJob{
		recoveryRepo: recoveryRepo,
	}
}

func (s *RecoveryCleanJob) Run() {
	ctx := context.Background()
	log.Info("start recovery cleanup job")

	deleted, err := s.recoveryRepo.DeleteExpired(ctx)
	if err != nil {
		log.Error("failed to delete expired recovery tokens", "err", err)
		return
	}

	if deleted > 0 {
		log.Info("recovery cleanup job finished", "deleted_count", deleted)
	}
}
