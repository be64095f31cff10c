package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/infinity/mocks"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	"github.com/imtaco/infinity-session/signaling"
	"github.com/imtaco/infinity-session/token"
)

const waitTimeout = 2 * time.Second

// chanSource streams whatever the test pushes; closing events ends the
// stream gracefully.
type chanSource struct {
	events chan infinity.Event
}

func (c *chanSource) Subscribe(ctx context.Context, _ string, out chan<- infinity.Event) error {
	for {
		select {
		case ev, ok := <-c.events:
			if !ok {
				return nil
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type SessionTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	api    *mocks.MockConferenceAPI
	source *chanSource
	me     uuid.UUID
	joined *infinity.RequestTokenResponse
	cfg    Config
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockConferenceAPI(s.ctrl)
	s.source = &chanSource{events: make(chan infinity.Event)}
	s.me = uuid.New()
	s.joined = &infinity.RequestTokenResponse{
		Token:           "t0",
		Expires:         infinity.Seconds(2 * time.Minute),
		ParticipantID:   s.me,
		ParticipantName: "Alice",
		ServiceType:     infinity.ServiceTypeConference,
		Version:         infinity.Version{VersionID: 36},
	}
	s.cfg = Config{Alias: "meet", DisplayName: "Alice", ReleaseTimeout: time.Second, EventBuffer: 4}
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) newSession(onFailure func(error)) *Session {
	return New(s.cfg, s.joined, Deps{
		API:              s.api,
		Source:           s.source,
		Clock:            clockwork.NewFakeClock(),
		OnRenewalFailure: onFailure,
	}, log.NewNop())
}

func (s *SessionTestSuite) start(sess *Session) (context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()
	return cancel, done
}

func (s *SessionTestSuite) wait(done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-time.After(waitTimeout):
		s.FailNow("session did not stop")
		return nil
	}
}

func (s *SessionTestSuite) push(ev infinity.Event) {
	select {
	case s.source.events <- ev:
	case <-time.After(waitTimeout):
		s.FailNow("event not consumed")
	}
}

func (s *SessionTestSuite) expectRefresh() {
	s.api.EXPECT().RefreshToken(gomock.Any(), "t0").
		Return(&infinity.RefreshTokenResponse{Token: "t1", Expires: infinity.Seconds(2 * time.Minute)}, nil)
}

func (s *SessionTestSuite) TestRunBuildsRosterAndReleasesOnCancel() {
	s.expectRefresh()
	s.api.EXPECT().ReleaseToken(gomock.Any(), "t1").Return(nil)

	sess := s.newSession(nil)
	cancel, done := s.start(sess)
	defer cancel()

	s.push(infinity.ParticipantSyncBeginEvent{})
	s.push(infinity.ParticipantCreateEvent{ParticipantResponse: infinity.ParticipantResponse{ID: s.me, DisplayName: "Alice"}})
	s.push(infinity.ParticipantSyncEndEvent{})

	s.Eventually(func() bool {
		return sess.Roster().Me().Get() != nil && sess.Tokens().Get().Value == "t1"
	}, waitTimeout, 10*time.Millisecond)

	cancel()
	s.NoError(s.wait(done))
}

func (s *SessionTestSuite) TestRenewalFailureEndsSession() {
	s.api.EXPECT().RefreshToken(gomock.Any(), "t0").Return(nil, errors.New(infinity.ErrInvalidToken, "403"))
	s.api.EXPECT().ReleaseToken(gomock.Any(), "t0").Return(nil)

	_, done := s.start(s.newSession(nil))

	err := s.wait(done)
	s.Require().Error(err)
	s.True(errors.Is(err, token.ErrRefresh))
	s.True(errors.Is(err, infinity.ErrInvalidToken))
}

func (s *SessionTestSuite) TestCustomRenewalFailureHandler() {
	s.api.EXPECT().RefreshToken(gomock.Any(), "t0").Return(nil, errors.New(infinity.ErrIllegalState, "500"))
	s.api.EXPECT().ReleaseToken(gomock.Any(), "t0").Return(nil)

	reported := make(chan error, 1)
	cancel, done := s.start(s.newSession(func(err error) { reported <- err }))
	defer cancel()

	select {
	case err := <-reported:
		s.True(errors.Is(err, token.ErrRefresh))
	case <-time.After(waitTimeout):
		s.FailNow("renewal failure not reported")
	}

	select {
	case <-done:
		s.FailNow("session must keep running when the handler does not stop it")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	s.True(errors.Is(s.wait(done), token.ErrRefresh))
}

func (s *SessionTestSuite) TestServerCloseEndsSession() {
	s.expectRefresh()
	s.api.EXPECT().ReleaseToken(gomock.Any(), gomock.Any()).Return(nil)

	sess := s.newSession(nil)
	_, done := s.start(sess)
	s.Eventually(func() bool { return sess.Tokens().Get().Value == "t1" }, waitTimeout, 10*time.Millisecond)

	close(s.source.events)
	s.NoError(s.wait(done))
}

func (s *SessionTestSuite) TestMediaConnection() {
	sess := s.newSession(nil)
	_, err := sess.NewMediaConnection()
	s.True(errors.Is(err, ErrNotRunning))

	s.expectRefresh()
	s.api.EXPECT().ReleaseToken(gomock.Any(), gomock.Any()).Return(nil)
	part := mocks.NewMockParticipantAPI(s.ctrl)
	s.api.EXPECT().Participant(s.me).Return(part)

	cancel, done := s.start(sess)
	defer cancel()

	var adapter *signaling.Adapter
	s.Eventually(func() bool {
		adapter, err = sess.NewMediaConnection()
		return err == nil
	}, waitTimeout, 10*time.Millisecond)

	s.push(infinity.NewOfferEvent{SDP: "remote"})
	select {
	case ev := <-adapter.Events():
		s.Equal(signaling.OfferReceived{SDP: "remote"}, ev)
	case <-time.After(waitTimeout):
		s.FailNow("offer not forwarded")
	}

	cancel()
	s.NoError(s.wait(done))
}

func (s *SessionTestSuite) TestUnreadMediaEventsDoNotStallRoster() {
	s.expectRefresh()
	s.api.EXPECT().ReleaseToken(gomock.Any(), gomock.Any()).Return(nil)
	part := mocks.NewMockParticipantAPI(s.ctrl)
	s.api.EXPECT().Participant(s.me).Return(part).Times(2)

	sess := s.newSession(nil)
	cancel, done := s.start(sess)
	defer cancel()

	var (
		adapter *signaling.Adapter
		err     error
	)
	s.Eventually(func() bool {
		adapter, err = sess.NewMediaConnection()
		return err == nil
	}, waitTimeout, 10*time.Millisecond)

	// the host never reads adapter.Events()
	for i := 0; i < 40; i++ {
		s.push(infinity.NewCandidateEvent{Candidate: "c", Mid: "0"})
	}
	bob := uuid.New()
	s.push(infinity.ParticipantCreateEvent{ParticipantResponse: infinity.ParticipantResponse{ID: bob, DisplayName: "Bob"}})
	s.Eventually(func() bool {
		_, ok := sess.Roster().Participants().Get()[bob]
		return ok
	}, waitTimeout, 10*time.Millisecond)

	// ending the connection unsubscribes it; no call was created, so no disconnect
	adapter.Close(context.Background())
	drained := make(chan struct{})
	go func() {
		for range adapter.Events() {
		}
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(waitTimeout):
		s.FailNow("media connection still running after close")
	}

	second, err := sess.NewMediaConnection()
	s.Require().NoError(err)
	s.push(infinity.NewOfferEvent{SDP: "remote"})
	select {
	case ev := <-second.Events():
		s.Equal(signaling.OfferReceived{SDP: "remote"}, ev)
	case <-time.After(waitTimeout):
		s.FailNow("offer not forwarded to the new connection")
	}

	cancel()
	s.NoError(s.wait(done))

	_, err = sess.NewMediaConnection()
	s.True(errors.Is(err, ErrNotRunning))
}

func (s *SessionTestSuite) TestJoin() {
	s.api.EXPECT().RequestToken(gomock.Any(), &infinity.RequestTokenRequest{DisplayName: "Alice"}, "").
		Return(s.joined, nil)
	sess, err := Join(context.Background(), s.cfg, Deps{API: s.api, Source: s.source}, log.NewNop())
	s.Require().NoError(err)
	s.Equal("t0", sess.Tokens().Get().Value)

	s.api.EXPECT().RequestToken(gomock.Any(), gomock.Any(), "").
		Return(nil, errors.New(infinity.ErrNoSuchConference, "404"))
	_, err = Join(context.Background(), s.cfg, Deps{API: s.api, Source: s.source}, log.NewNop())
	s.True(errors.Is(err, ErrJoin))
	s.True(errors.Is(err, infinity.ErrNoSuchConference))
}
