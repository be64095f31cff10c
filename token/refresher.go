package token

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	intotel "github.com/imtaco/infinity-session/internal/otel"
)

const (
	ErrRefresh errors.Code = "token refresh failed"

	defaultReleaseTimeout = 5 * time.Second
	minRefreshInterval    = time.Second
)

var tracer = intotel.Tracer("token")

type (
	RefreshFunc func(ctx context.Context, current Token) (Token, error)
	ReleaseFunc func(ctx context.Context, current Token) error
)

// Refresher renews the token held by a Store in the background.
type Refresher struct {
	store          *Store
	clock          clockwork.Clock
	releaseTimeout time.Duration
	logger         *log.Logger
}

type Option func(*Refresher)

func WithClock(clock clockwork.Clock) Option {
	return func(r *Refresher) {
		r.clock = clock
	}
}

func WithReleaseTimeout(d time.Duration) Option {
	return func(r *Refresher) {
		if d > 0 {
			r.releaseTimeout = d
		}
	}
}

func NewRefresher(store *Store, logger *log.Logger, opts ...Option) *Refresher {
	if store == nil {
		panic("store is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	r := &Refresher{
		store:          store,
		clock:          clockwork.NewRealClock(),
		releaseTimeout: defaultReleaseTimeout,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle controls a running refresh loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the loop. The token is still released; wait on Done for that.
func (h *Handle) Cancel() {
	h.cancel()
}

// Done is closed after the loop has stopped and the release attempt returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start runs the refresh loop until ctx is done, the handle is cancelled or a
// refresh fails. A failure that is not caused by cancellation is reported to
// onFailure exactly once. Every exit path then releases the current token once.
func (r *Refresher) Start(
	ctx context.Context,
	refresh RefreshFunc,
	release ReleaseFunc,
	onFailure func(error),
) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(h.done)
		defer cancel()
		defer r.release(ctx, release)
		r.loop(ctx, refresh, onFailure)
	}()
	return h
}

func (r *Refresher) loop(ctx context.Context, refresh RefreshFunc, onFailure func(error)) {
	for {
		next, err := r.refreshOnce(ctx, refresh)
		if err != nil {
			if ctx.Err() != nil {
				r.logger.Debug("Token refresh cancelled")
				return
			}
			refreshFailures.Add(ctx, 1)
			err = errors.Wrap(ErrRefresh, err, "refresh token")
			r.logger.Error("Token refresh failed, renewal stopped", log.Error(err))
			if onFailure != nil {
				onFailure(err)
			}
			return
		}

		r.store.Set(next)
		refreshes.Add(ctx, 1)

		wait := max(next.Expires/2, minRefreshInterval)
		r.logger.Debug("Token refreshed", log.Secret("token", next.Value), log.Duration("next", wait))
		select {
		case <-r.clock.After(wait):
		case <-ctx.Done():
			r.logger.Debug("Token refresh cancelled")
			return
		}
	}
}

func (r *Refresher) refreshOnce(ctx context.Context, refresh RefreshFunc) (Token, error) {
	ctx, span := intotel.StartSpan(ctx, tracer, "token.refresh")
	defer span.End()

	next, err := refresh(ctx, r.store.Get())
	intotel.RecordError(span, err)
	return next, err
}

func (r *Refresher) release(ctx context.Context, release ReleaseFunc) {
	if release == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.releaseTimeout)
	defer cancel()

	if err := release(ctx, r.store.Get()); err != nil {
		releaseFailures.Add(ctx, 1)
		r.logger.Warn("Token release failed", log.Error(err))
		return
	}
	r.logger.Debug("Token released")
}
