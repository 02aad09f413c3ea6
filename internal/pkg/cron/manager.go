package cron

import (
	"Ripple/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	recoveryCleanJob *job.RecoveryCleanJob
	voteSyncJob      *job.VoteSyncJob
}

func NewCronManager(recoveryCleanJob *job.RecoveryCleanJob, voteSyncJob *job.VoteSyncJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		recoveryCleanJob: recoveryCleanJob,
		voteSyncJob:      voteSyncJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.recoveryCleanJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@every 1m", s.voteSyncJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
