package eventstream

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	"github.com/imtaco/infinity-session/internal/retry"
	"github.com/imtaco/infinity-session/internal/sync"
)

// Source opens one push subscription. Subscribe blocks while delivering events
// into out; it returns nil when the server closes the stream and an error on
// transport failure.
type Source interface {
	Subscribe(ctx context.Context, token string, out chan<- infinity.Event) error
}

// TokenFunc yields the token to open the next subscription with.
type TokenFunc func() string

// Supervisor keeps one subscription open, reopening it after transport
// failures, and fans every event out to its subscribers in arrival order.
type Supervisor struct {
	source      Source
	token       TokenFunc
	policy      backoff.BackOff
	broadcaster *sync.Broadcaster[infinity.Event]
	logger      *log.Logger
}

type Option func(*Supervisor)

// WithRestartPolicy replaces the default of reopening immediately.
func WithRestartPolicy(policy backoff.BackOff) Option {
	return func(s *Supervisor) {
		if policy != nil {
			s.policy = policy
		}
	}
}

func NewSupervisor(source Source, token TokenFunc, logger *log.Logger, opts ...Option) *Supervisor {
	if source == nil {
		panic("source is required")
	}
	if token == nil {
		panic("token func is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	s := &Supervisor{
		source:      source,
		token:       token,
		policy:      &backoff.ZeroBackOff{},
		broadcaster: sync.NewBroadcaster[infinity.Event](),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe returns a channel of every event published after the call and a
// func to stop receiving. The channel is closed when Run returns.
func (s *Supervisor) Subscribe(buffer int) (<-chan infinity.Event, func()) {
	return s.broadcaster.Subscribe(buffer)
}

// Run supervises the stream until ctx is done, the server closes the stream,
// the server rejects the session, or the restart policy gives up.
func (s *Supervisor) Run(ctx context.Context) error {
	defer s.broadcaster.Close()

	s.policy.Reset()
	for attempt := 1; ; attempt++ {
		delivered, err := s.runOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			s.logger.Info("Event stream closed by server")
			return nil
		}
		if isFatal(err) {
			s.logger.Error("Event stream rejected", log.Error(err))
			return err
		}

		if delivered {
			// the connection was healthy for a while, start the policy over
			s.policy.Reset()
		}
		s.logger.Warn("Event stream failed", log.Int("attempt", attempt), log.Error(err))
		wait, ok := retry.Wait(ctx, s.policy)
		if ctx.Err() != nil {
			return nil
		}
		if !ok {
			s.logger.Error("Event stream restart policy gave up", log.Int("attempt", attempt), log.Error(err))
			return errors.Wrap(ErrGaveUp, err, "event stream")
		}
		streamRestarts.Add(ctx, 1)
		s.logger.Info("Event stream reopening", log.Int("attempt", attempt), log.Duration("waited", wait))
	}
}

func (s *Supervisor) runOnce(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan infinity.Event)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.source.Subscribe(ctx, s.token(), ch)
	}()

	delivered := false
	for {
		select {
		case ev := <-ch:
			delivered = true
			streamEvents.Add(ctx, 1)
			if err := s.broadcaster.Publish(ctx, ev); err != nil {
				cancel()
				<-errCh
				return delivered, err
			}
		case err := <-errCh:
			return delivered, err
		}
	}
}

func isFatal(err error) bool {
	return errors.Is(err, infinity.ErrInvalidToken) ||
		errors.Is(err, infinity.ErrNoSuchConference) ||
		errors.Is(err, infinity.ErrNoSuchNode)
}
