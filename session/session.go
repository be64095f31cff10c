package session

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/imtaco/infinity-session/eventstream"
	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	"github.com/imtaco/infinity-session/messenger"
	"github.com/imtaco/infinity-session/roster"
	"github.com/imtaco/infinity-session/signaling"
	"github.com/imtaco/infinity-session/token"
)

const (
	ErrNotRunning errors.Code = "session not running"
	ErrJoin       errors.Code = "join conference failed"

	defaultReleaseTimeout = 5 * time.Second
)

type Deps struct {
	API    infinity.ConferenceAPI
	Source eventstream.Source
	// Clock drives token renewal and message timestamps; nil means real time.
	Clock clockwork.Clock
	// OnRenewalFailure replaces the default of ending the session when the
	// token can no longer be renewed.
	OnRenewalFailure func(error)
}

// Session owns every task of one joined conference in a single scope.
type Session struct {
	cfg    Config
	deps   Deps
	joined *infinity.RequestTokenResponse
	logger *log.Logger

	tokens     *token.Store
	refresher  *token.Refresher
	supervisor *eventstream.Supervisor
	roster     *roster.Roster
	messenger  *messenger.Messenger

	rosterEvents    <-chan infinity.Event
	messengerEvents <-chan infinity.Event
	unsubscribe     []func()

	// mu guards the scope; stopped is set inside the group once its context
	// ends, so no goroutine is added after Wait can return.
	mu         sync.Mutex
	group      *errgroup.Group
	groupCtx   context.Context
	stopped    bool
	renewalErr error
}

// Join requests a token for cfg and builds a session from it.
func Join(ctx context.Context, cfg Config, deps Deps, logger *log.Logger) (*Session, error) {
	if deps.API == nil {
		panic("api is required")
	}
	joined, err := deps.API.RequestToken(ctx, &infinity.RequestTokenRequest{
		DisplayName:         cfg.DisplayName,
		ConferenceExtension: cfg.ConferenceExtension,
		CallTag:             cfg.CallTag,
	}, cfg.Pin)
	if err != nil {
		return nil, errors.Wrapf(ErrJoin, err, "join %s", cfg.Alias)
	}
	return New(cfg, joined, deps, logger), nil
}

// New builds a session around an already issued token.
func New(cfg Config, joined *infinity.RequestTokenResponse, deps Deps, logger *log.Logger) *Session {
	if joined == nil {
		panic("token response is required")
	}
	if deps.API == nil || deps.Source == nil {
		panic("api and source are required")
	}
	if logger == nil {
		panic("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if cfg.ReleaseTimeout <= 0 {
		cfg.ReleaseTimeout = defaultReleaseTimeout
	}
	logger = logger.With(log.String("alias", cfg.Alias), log.Stringer("participant", joined.ParticipantID))

	s := &Session{
		cfg:    cfg,
		deps:   deps,
		joined: joined,
		logger: logger,
		tokens: token.NewStore(token.Token{Value: joined.Token, Expires: joined.Expires.Duration()}),
	}
	s.refresher = token.NewRefresher(s.tokens, logger.Module("Token"),
		token.WithClock(deps.Clock),
		token.WithReleaseTimeout(cfg.ReleaseTimeout))
	s.supervisor = eventstream.NewSupervisor(deps.Source, func() string { return s.tokens.Get().Value },
		logger.Module("EventStream"),
		eventstream.WithRestartPolicy(restartPolicy(cfg)))
	s.roster = roster.New(deps.API, s.tokens, roster.Self{
		ParticipantID: joined.ParticipantID,
		Version:       joined.Version.VersionID,
		ServiceType:   joined.ServiceType,
	}, logger.Module("Roster"))
	s.messenger = messenger.New(deps.API, s.tokens, messenger.Self{
		ParticipantID: joined.ParticipantID,
		DisplayName:   joined.ParticipantName,
	}, logger.Module("Messenger"), messenger.WithClock(deps.Clock))

	// subscribe before the stream opens so no event is missed
	var unsub func()
	s.rosterEvents, unsub = s.supervisor.Subscribe(cfg.EventBuffer)
	s.unsubscribe = append(s.unsubscribe, unsub)
	s.messengerEvents, unsub = s.supervisor.Subscribe(cfg.EventBuffer)
	s.unsubscribe = append(s.unsubscribe, unsub)
	return s
}

func restartPolicy(cfg Config) backoff.BackOff {
	if cfg.RestartInitialInterval <= 0 {
		return &backoff.ZeroBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.RestartInitialInterval
	if cfg.RestartMaxInterval > 0 {
		b.MaxInterval = cfg.RestartMaxInterval
	}
	b.MaxElapsedTime = 0
	return b
}

func (s *Session) Joined() *infinity.RequestTokenResponse {
	return s.joined
}

func (s *Session) Tokens() *token.Store {
	return s.tokens
}

func (s *Session) Roster() *roster.Roster {
	return s.roster
}

func (s *Session) Messenger() *messenger.Messenger {
	return s.messenger
}

// Run runs token renewal, the event stream, the roster and the messenger
// until ctx is done, the server ends the stream or the token cannot be
// renewed. It returns after the token has been released.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		for _, unsub := range s.unsubscribe {
			unsub()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	s.mu.Lock()
	if s.group != nil {
		s.mu.Unlock()
		return errors.New(ErrNotRunning, "session already ran")
	}
	s.group, s.groupCtx = g, gctx
	s.mu.Unlock()

	onFailure := func(err error) {
		s.mu.Lock()
		s.renewalErr = err
		s.mu.Unlock()
		if s.deps.OnRenewalFailure != nil {
			s.deps.OnRenewalFailure(err)
			return
		}
		cancel()
	}

	g.Go(func() error {
		<-gctx.Done()
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		return nil
	})

	handle := s.refresher.Start(gctx, s.refresh, s.release, onFailure)
	g.Go(func() error {
		<-handle.Done()
		return nil
	})
	g.Go(func() error {
		err := s.supervisor.Run(gctx)
		// the stream is over, so is the session
		cancel()
		return err
	})
	g.Go(func() error {
		return s.roster.Run(gctx, s.rosterEvents)
	})
	g.Go(func() error {
		return s.messenger.Run(gctx, s.messengerEvents)
	})

	s.logger.Info("Session started",
		log.String("conference", s.joined.ConferenceName),
		log.Int("version", int(s.joined.Version.VersionID)))
	err := g.Wait()
	s.logger.Info("Session ended", log.Error(err))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = s.renewalErr
	}
	return err
}

func (s *Session) refresh(ctx context.Context, current token.Token) (token.Token, error) {
	res, err := s.deps.API.RefreshToken(ctx, current.Value)
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{Value: res.Token, Expires: res.Expires.Duration()}, nil
}

func (s *Session) release(ctx context.Context, current token.Token) error {
	return s.deps.API.ReleaseToken(ctx, current.Value)
}

// NewMediaConnection creates a signaling adapter for the local participant
// whose event loop runs inside the session scope. Adapter.Close ends the
// connection and disconnects its call; otherwise that happens when the
// session ends.
func (s *Session) NewMediaConnection() (*signaling.Adapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.group == nil || s.stopped || s.groupCtx.Err() != nil {
		return nil, errors.New(ErrNotRunning, "media connection needs a running session")
	}
	g, gctx := s.group, s.groupCtx

	adapter := signaling.New(s.deps.API.Participant(s.joined.ParticipantID), s.tokens, signaling.Config{
		Version:     s.joined.Version.VersionID,
		ServiceType: s.joined.ServiceType,
	}, s.logger.Module("Signaling"))
	events, unsubscribe := s.supervisor.Subscribe(s.cfg.EventBuffer)

	g.Go(func() error {
		err := adapter.Run(gctx, events)
		unsubscribe()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(gctx), s.cfg.ReleaseTimeout)
		defer cancel()
		adapter.Close(ctx)
		return err
	})
	return adapter, nil
}
