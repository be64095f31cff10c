package signaling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/infinity/mocks"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	"github.com/imtaco/infinity-session/token"
)

type AdapterTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	part    *mocks.MockParticipantAPI
	call    *mocks.MockCallAPI
	callID  uuid.UUID
	adapter *Adapter
	ctx     context.Context
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.part = mocks.NewMockParticipantAPI(s.ctrl)
	s.call = mocks.NewMockCallAPI(s.ctrl)
	s.callID = uuid.New()
	s.ctx = context.Background()
	s.adapter = s.newAdapter(36, infinity.ServiceTypeConference)
}

func (s *AdapterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdapterTestSuite) newAdapter(version infinity.VersionID, st infinity.ServiceType) *Adapter {
	return New(s.part, token.NewStore(token.Token{Value: "tok"}), Config{Version: version, ServiceType: st}, log.NewNop())
}

func (s *AdapterTestSuite) expectCreate(res *infinity.CallsResponse) {
	s.part.EXPECT().Calls(gomock.Any(), "tok", gomock.Any()).Return(res, nil)
	s.part.EXPECT().Call(s.callID).Return(s.call)
}

func (s *AdapterTestSuite) TestCreateCallAnswer() {
	s.part.EXPECT().Calls(gomock.Any(), "tok", &infinity.CallsRequest{
		CallType: infinity.CallTypeWebRTC,
		SDP:      "offer",
		Present:  "main",
		FECC:     true,
	}).Return(&infinity.CallsResponse{CallID: s.callID, SDP: "answer"}, nil)
	s.part.EXPECT().Call(s.callID).Return(s.call)

	answer, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", true, true)
	s.Require().NoError(err)
	s.Equal("answer", answer)
}

func (s *AdapterTestSuite) TestOfferIgnoredYieldsNoAnswer() {
	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "answer", OfferIgnored: true})

	answer, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.Require().NoError(err)
	s.Empty(answer)
}

func (s *AdapterTestSuite) TestBlankSdpYieldsNoAnswer() {
	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "  "})

	answer, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.Require().NoError(err)
	s.Empty(answer)
}

func (s *AdapterTestSuite) TestSecondOfferUpdates() {
	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "a1"})
	s.call.EXPECT().Update(gomock.Any(), "tok", &infinity.UpdateRequest{SDP: "o2"}).
		Return(&infinity.UpdateResponse{SDP: "a2"}, nil)
	s.call.EXPECT().Update(gomock.Any(), "tok", &infinity.UpdateRequest{SDP: "o3"}).
		Return(&infinity.UpdateResponse{SDP: "a3", OfferIgnored: true}, nil)

	answer, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "o1", false, false)
	s.Require().NoError(err)
	s.Equal("a1", answer)

	answer, err = s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "o2", false, false)
	s.Require().NoError(err)
	s.Equal("a2", answer)

	answer, err = s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "o3", false, false)
	s.Require().NoError(err)
	s.Empty(answer)
}

func (s *AdapterTestSuite) TestFailedCreateCanBeRetried() {
	s.part.EXPECT().Calls(gomock.Any(), "tok", gomock.Any()).
		Return(nil, errors.New(infinity.ErrIllegalState, "502"))
	_, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.True(errors.Is(err, ErrOffer))
	s.True(errors.Is(err, infinity.ErrIllegalState))

	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "answer"})
	answer, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.Require().NoError(err)
	s.Equal("answer", answer)
}

func (s *AdapterTestSuite) TestAckVariants() {
	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "answer"})
	_, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.Require().NoError(err)

	s.call.EXPECT().Ack(gomock.Any(), "tok", &infinity.AckRequest{OfferIgnored: true}).Return(nil)
	s.NoError(s.adapter.OnOfferIgnored(s.ctx))

	s.call.EXPECT().Ack(gomock.Any(), "tok", &infinity.AckRequest{SDP: "local"}).Return(nil)
	s.NoError(s.adapter.OnAnswer(s.ctx, "local"))

	s.call.EXPECT().Ack(gomock.Any(), "tok", gomock.Nil()).Return(nil)
	s.NoError(s.adapter.OnAck(s.ctx))
}

func (s *AdapterTestSuite) TestCandidateWaitsForCall() {
	req := &infinity.NewCandidateRequest{Candidate: "candidate:1", Mid: "0", Ufrag: "u", Pwd: "p"}
	s.call.EXPECT().NewCandidate(gomock.Any(), "tok", req).Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- s.adapter.OnCandidate(s.ctx, "candidate:1", "0", "u", "p")
	}()

	select {
	case <-done:
		s.FailNow("candidate sent before the call existed")
	case <-time.After(50 * time.Millisecond):
	}

	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "answer"})
	_, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.Require().NoError(err)

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("candidate never sent")
	}
}

func (s *AdapterTestSuite) TestCallScopedWaitBoundedByContext() {
	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	ok, err := s.adapter.OnDtmf(ctx, "1")
	s.False(ok)
	s.True(errors.Is(err, ErrDtmf))
	s.True(errors.Is(err, context.DeadlineExceeded))
}

func (s *AdapterTestSuite) TestDtmf() {
	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "answer"})
	_, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.Require().NoError(err)

	s.call.EXPECT().Dtmf(gomock.Any(), "tok", &infinity.DtmfRequest{Digits: "12#"}).Return(true, nil)
	ok, err := s.adapter.OnDtmf(s.ctx, "12#")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *AdapterTestSuite) TestAudioMuteEndpoint() {
	s.part.EXPECT().ClientMute(gomock.Any(), "tok").Return(nil)
	s.NoError(s.adapter.OnAudioMuted(s.ctx))

	legacy := s.newAdapter(35, infinity.ServiceTypeConference)
	s.part.EXPECT().Unmute(gomock.Any(), "tok").Return(nil)
	s.NoError(legacy.OnAudioUnmuted(s.ctx))

	gateway := s.newAdapter(36, infinity.ServiceTypeGateway)
	s.part.EXPECT().Mute(gomock.Any(), "tok").Return(nil)
	s.NoError(gateway.OnAudioMuted(s.ctx))
}

func (s *AdapterTestSuite) TestParticipantScopedFailure() {
	s.part.EXPECT().TakeFloor(gomock.Any(), "tok").Return(errors.New(infinity.ErrInvalidToken, "403"))
	err := s.adapter.OnTakeFloor(s.ctx)
	s.True(errors.Is(err, ErrTakeFloor))
	s.True(errors.Is(err, infinity.ErrInvalidToken))

	s.part.EXPECT().VideoMuted(gomock.Any(), "tok").Return(nil)
	s.NoError(s.adapter.OnVideoMuted(s.ctx))
}

func (s *AdapterTestSuite) TestInboundTranslation() {
	in := make(chan infinity.Event, 8)
	in <- infinity.NewOfferEvent{SDP: "o1"}
	in <- infinity.ParticipantSyncBeginEvent{}
	in <- infinity.UpdateSdpEvent{SDP: "o2"}
	in <- infinity.NewCandidateEvent{Candidate: "c", Mid: "0"}
	in <- infinity.StageEvent{}
	in <- infinity.PeerDisconnectEvent{}
	close(in)

	s.Require().NoError(s.adapter.Run(s.ctx, in))

	var got []Event
	for ev := range s.adapter.Events() {
		got = append(got, ev)
	}
	s.Equal([]Event{
		OfferReceived{SDP: "o1"},
		OfferReceived{SDP: "o2"},
		CandidateReceived{Candidate: "c", Mid: "0"},
		RestartRequired{},
	}, got)
}

func (s *AdapterTestSuite) TestCloseWithoutCall() {
	// nothing to disconnect, no REST call expected
	s.adapter.Close(s.ctx)

	_, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.True(errors.Is(err, ErrClosed))
}

func (s *AdapterTestSuite) TestCloseDisconnectsCallOnce() {
	s.expectCreate(&infinity.CallsResponse{CallID: s.callID, SDP: "answer"})
	_, err := s.adapter.OnOffer(s.ctx, infinity.CallTypeWebRTC, "offer", false, false)
	s.Require().NoError(err)

	s.call.EXPECT().Disconnect(gomock.Any(), "tok").Return(errors.New(infinity.ErrFailedRequest, "gone"))
	s.adapter.Close(s.ctx)
	s.adapter.Close(s.ctx)

	err = s.adapter.OnCandidate(s.ctx, "c", "0", "", "")
	s.True(errors.Is(err, ErrCandidate))
	s.True(errors.Is(err, ErrClosed))
	s.True(errors.Is(s.adapter.OnVideoMuted(s.ctx), ErrClosed))
}

func (s *AdapterTestSuite) TestCloseReleasesWaitingRequest() {
	done := make(chan error, 1)
	go func() { done <- s.adapter.OnAnswer(s.ctx, "answer") }()

	time.Sleep(10 * time.Millisecond)
	s.adapter.Close(s.ctx)

	select {
	case err := <-done:
		s.True(errors.Is(err, ErrClosed))
	case <-time.After(time.Second):
		s.FailNow("ack still waiting after close")
	}
}

func (s *AdapterTestSuite) TestCloseEndsRun() {
	in := make(chan infinity.Event)
	done := make(chan error, 1)
	go func() { done <- s.adapter.Run(s.ctx, in) }()

	s.adapter.Close(s.ctx)
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.FailNow("run did not stop after close")
	}
	_, ok := <-s.adapter.Events()
	s.False(ok)
}

func (s *AdapterTestSuite) TestUnreadEventsDoNotBlockInput() {
	in := make(chan infinity.Event)
	done := make(chan error, 1)
	go func() { done <- s.adapter.Run(s.ctx, in) }()

	// far more than the event buffer, nobody reads Events()
	for i := 0; i < 100; i++ {
		select {
		case in <- infinity.NewCandidateEvent{Candidate: "c", Mid: "0"}:
		case <-time.After(time.Second):
			s.FailNow("adapter stopped draining server events", "after %d events", i)
		}
	}

	ev := <-s.adapter.Events()
	s.Equal(CandidateReceived{Candidate: "c", Mid: "0"}, ev)

	close(in)
	count := 1
	for range s.adapter.Events() {
		count++
	}
	s.Equal(100, count)
	s.NoError(<-done)
}
