package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one batch run.
type Job func(ctx context.Context) error

// Scheduler runs a job on a cron schedule. Runs never overlap.
type Scheduler struct {
	Cron *cron.Cron
	Job  Job
	Ctx  context.Context
	log  zerolog.Logger
	// task wraps run in the skip chain; cron firings and RunNow share it.
	task cron.Job
}

// NewScheduler creates a new Scheduler with a seconds-enabled parser.
func NewScheduler(ctx context.Context, job Job, log zerolog.Logger) *Scheduler {
	s := &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Job:  job,
		Ctx:  ctx,
		log:  log,
	}
	s.task = cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(s.run))
	return s
}

// Register adds the job under spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddJob(spec, s.task); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	s.log.Info().Str("cron", spec).Msg("scan task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the job immediately, unless a run is already in progress.
func (s *Scheduler) RunNow() {
	s.task.Run()
}

func (s *Scheduler) run() {
	if s.Ctx.Err() != nil {
		return
	}
	s.log.Info().Msg("running scan task")
	if err := s.Job(s.Ctx); err != nil {
		s.log.Error().Err(err).Msg("scan task failed")
	}
}
