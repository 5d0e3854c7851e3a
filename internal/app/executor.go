package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

// Write-through runs a state change in four steps:
//
//	validate  check inputs and preconditions; nothing has been written yet
//	perform   write to the remote, the source of truth
//	verify    confirm the remote answer is usable
//	archive   mirror the verified state into the local cache
//
// The cache is touched only after the remote has accepted the change, so a
// remote failure never leaves a cache-only write behind. An archive failure
// is logged and counted but not returned: the remote already holds the
// change and the next read or reconcile repairs the cache.

// ExecutionStep names a step of a write-through operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
)

// ExecutionError records the step a write-through operation failed in.
// It unwraps to the cause, so domain classification survives.
type ExecutionError struct {
	Operation string
	Step      ExecutionStep
	Cause     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Operation, e.Step, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs write-through operations with step logging and metrics.
type Executor struct {
	logger  *slog.Logger
	metrics *Metrics
}

// NewExecutor creates an executor. Both arguments may be nil.
func NewExecutor(logger *slog.Logger, metrics *Metrics) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger, metrics: metrics}
}

// Operation defines the steps of one write-through use case. Only Perform is
// required. V defaults to the zero value when Verify is nil.
type Operation[I, P, V any] struct {
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)

	// Archive runs on a context detached from the caller's cancellation.
	Archive func(ctx context.Context, input I, verified V) error
}

// Execute runs op for input and returns the verified result.
func Execute[I, P, V any](ctx context.Context, exec *Executor, op Operation[I, P, V], input I) (V, error) {
	var zero V

	logger := exec.logger
	if requestLogger, ok := logging.Lookup(ctx); ok {
		logger = requestLogger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step ExecutionStep, err error) (V, error) {
		level := slog.LevelWarn
		if step == StepValidate || errors.Is(err, context.Canceled) {
			level = slog.LevelDebug
		}

		logger.Log(ctx, level, "write-through step failed",
			slog.String("step", string(step)), slog.Any("error", err))

		if step == StepPerform && exec.metrics != nil {
			exec.metrics.RemoteWriteFailures.WithLabelValues(op.Name).Inc()
		}

		return zero, &ExecutionError{Operation: op.Name, Step: step, Cause: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			return fail(StepValidate, err)
		}
	}

	performed, err := op.Perform(ctx, input)
	if err != nil {
		return fail(StepPerform, err)
	}

	verified := zero

	if op.Verify != nil {
		verified, err = op.Verify(ctx, input, performed)
		if err != nil {
			return fail(StepVerify, err)
		}
	} else if v, ok := any(performed).(V); ok {
		verified = v
	}

	if op.Archive != nil {
		if err := op.Archive(context.WithoutCancel(ctx), input, verified); err != nil {
			logger.WarnContext(ctx, "mirroring write into cache",
				slog.String("step", string(StepArchive)), slog.Any("error", err))

			if exec.metrics != nil {
				exec.metrics.MirrorFailures.WithLabelValues(op.Name).Inc()
			}
		}
	}

	logger.DebugContext(ctx, "write-through completed", slog.Duration("duration", time.Since(start)))

	return verified, nil
}

// GetExecutionStep returns the step err failed in, if it came from Execute.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
