package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/telemetry"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// ErrJobBusy is returned by RunNow while a run is already in progress.
var ErrJobBusy = errors.New("daily quote job already running")

const defaultDailyTimeout = 2 * time.Minute

// DailySource is what the daily job needs from the repository.
type DailySource interface {
	Refresh(ctx context.Context) (RefreshResult, error)
	GetQuoteOfTheDay(ctx context.Context) (domain.Quote, error)
}

// DailyQuoteJobConfig configures the quote of the day job.
type DailyQuoteJobConfig struct {
	Source   DailySource
	Notifier ports.Notifier

	// Schedule is a five-field cron expression.
	Schedule string
	Location *time.Location

	// Timeout bounds one run.
	Timeout time.Duration

	Logger  *slog.Logger
	Metrics *Metrics
}

// DailyQuoteJob warms the cache, picks the quote of the day and hands it to
// the notifier on a cron schedule. Runs never overlap.
type DailyQuoteJob struct {
	source   DailySource
	notifier ports.Notifier
	timeout  time.Duration
	location *time.Location
	logger   *slog.Logger
	metrics  *Metrics

	cron    *cron.Cron
	entryID cron.EntryID

	mu      sync.Mutex
	started bool
	busy    bool
}

// NewDailyQuoteJob validates the schedule and builds a stopped job.
func NewDailyQuoteJob(cfg DailyQuoteJobConfig) (*DailyQuoteJob, error) {
	if cfg.Source == nil {
		return nil, errors.New("daily source is required")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier is required")
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultDailyTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}

	job := &DailyQuoteJob{
		source:   cfg.Source,
		notifier: cfg.Notifier,
		timeout:  timeout,
		location: loc,
		logger:   logger.With(slog.String("component", "app.DailyQuoteJob")),
		metrics:  metrics,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
		),
	}

	entryID, err := job.cron.AddFunc(cfg.Schedule, job.runScheduled)
	if err != nil {
		return nil, fmt.Errorf("invalid daily schedule %q: %w", cfg.Schedule, err)
	}

	job.entryID = entryID

	return job, nil
}

// Start runs the schedule until ctx ends or Stop is called.
func (j *DailyQuoteJob) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.started {
		return
	}

	j.cron.Start()
	j.started = true

	j.logger.InfoContext(ctx, "daily quote job started", slog.Time("next_run", j.next()))

	go func() {
		<-ctx.Done()
		j.Stop()
	}()
}

// Stop halts the schedule and waits for a run in progress to finish.
func (j *DailyQuoteJob) Stop() {
	j.mu.Lock()

	if !j.started {
		j.mu.Unlock()
		return
	}

	j.started = false
	j.mu.Unlock()

	<-j.cron.Stop().Done()

	j.logger.Info("daily quote job stopped")
}

// NextRun returns the next scheduled run, or the zero time when stopped.
func (j *DailyQuoteJob) NextRun() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.started {
		return time.Time{}
	}

	return j.next()
}

func (j *DailyQuoteJob) next() time.Time {
	return j.cron.Entry(j.entryID).Schedule.Next(time.Now().In(j.location))
}

func (j *DailyQuoteJob) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	// Scheduled runs have no inbound request, so they root their own trace.
	ctx, span := telemetry.Tracer().Start(ctx, "daily_quote.run")
	defer span.End()

	if _, err := j.RunNow(ctx); err != nil && !errors.Is(err, ErrJobBusy) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		j.logger.WarnContext(ctx, "daily quote run failed", slog.Any("error", err))
	}
}

// RunNow performs one run immediately and returns the quote handed to the
// notifier. It returns ErrJobBusy if another run is in progress.
func (j *DailyQuoteJob) RunNow(ctx context.Context) (domain.Quote, error) {
	j.mu.Lock()
	if j.busy {
		j.mu.Unlock()
		j.metrics.DailyRuns.WithLabelValues("skipped").Inc()

		return domain.Quote{}, ErrJobBusy
	}

	j.busy = true
	j.mu.Unlock()

	defer func() {
		j.mu.Lock()
		j.busy = false
		j.mu.Unlock()
	}()

	quote, result, err := j.run(ctx)
	j.metrics.DailyRuns.WithLabelValues(result).Inc()

	return quote, err
}

func (j *DailyQuoteJob) run(ctx context.Context) (domain.Quote, string, error) {
	// A failed refresh still leaves an older cache to pick from.
	if _, err := j.source.Refresh(ctx); err != nil {
		j.logger.WarnContext(ctx, "refreshing cache before daily quote", slog.Any("error", err))
	}

	quote, err := j.source.GetQuoteOfTheDay(ctx)
	if domain.IsNotFound(err) {
		j.logger.InfoContext(ctx, "no featured quote for today")
		return domain.Quote{}, "no_quote", err
	}

	if err != nil {
		return domain.Quote{}, "failed", fmt.Errorf("picking quote of the day: %w", err)
	}

	if err := j.notifier.NotifyDailyQuote(ctx, quote); err != nil {
		return domain.Quote{}, "failed", fmt.Errorf("notifying daily quote: %w", err)
	}

	j.logger.InfoContext(ctx, "daily quote delivered", slog.String("quote_id", quote.ID))

	return quote, "success", nil
}
