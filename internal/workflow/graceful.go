package workflow

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
)

const ErrShutdownTimeout errors.Code = "shutdown timeout"

type GracefulShutdownAction func(ctx context.Context)

// WaitGracefulShutdown blocks until SIGINT/SIGTERM arrives or ctx is done, then runs
// action with a fresh context bounded by timeout. A panic inside action is logged.
func WaitGracefulShutdown(
	ctx context.Context,
	logger *log.Logger,
	action GracefulShutdownAction,
	timeout time.Duration,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	return runWithTimeout(logger, action, timeout)
}

func runWithTimeout(logger *log.Logger, action GracefulShutdownAction, timeout time.Duration) error {
	ctxClean, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic during graceful shutdown", log.Any("error", r))
			}
		}()
		logger.Info("Starting graceful shutdown")
		action(ctxClean)
	}()

	select {
	case <-ctxClean.Done():
		logger.Warn("Shutdown timeout exceeded, forcing exit")
		return errors.Newf(ErrShutdownTimeout, "cleanup did not finish within %s", timeout)
	case <-done:
		logger.Info("Graceful shutdown completed")
		return nil
	}
}
