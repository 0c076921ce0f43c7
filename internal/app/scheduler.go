package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher то, что планировщик дёргает по расписанию (DoctorService)
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler периодически обновляет справочник врачей
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	spec      string
	logger    *zap.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewScheduler(refresher Refresher, spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		// медленный справочник не должен копить запуски
		cron: cron.New(
			cron.WithLogger(cronLogger{logger.Sugar()}),
			cron.WithChain(
				cron.Recover(cronLogger{logger.Sugar()}),
				cron.SkipIfStillRunning(cronLogger{logger.Sugar()}),
			),
		),
		refresher: refresher,
		spec:      spec,
		logger:    logger,
	}
}

// Start делает первое обновление сразу и регистрирует cron-задачу
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	if _, err := s.cron.AddFunc(s.spec, s.refresh); err != nil {
		s.cancel()
		return fmt.Errorf("schedule directory refresh: %w", err)
	}

	s.logger.Info("Starting background scheduler", zap.String("cron", s.spec))
	s.refresh()
	s.cron.Start()

	return nil
}

// Stop останавливает cron и ждёт завершения текущего обновления
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	if s.cancel != nil {
		s.cancel()
	}
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refresh() {
	if err := s.refresher.Refresh(s.ctx); err != nil {
		s.logger.Error("Directory refresh failed", zap.Error(err))
		return
	}
	s.logger.Debug("Directory refresh completed")
}

// cronLogger пишет события cron в zap
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
