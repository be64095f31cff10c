package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
)

type DecodeTestSuite struct {
	suite.Suite
}

func TestDecodeSuite(t *testing.T) {
	suite.Run(t, new(DecodeTestSuite))
}

func (s *DecodeTestSuite) TestUnknownName() {
	ev, err := Decode("layout", []byte(`{"view":"1:7"}`))
	s.Require().NoError(err)
	s.Equal(infinity.UnknownEvent{Type: "layout"}, ev)
	s.Equal("layout", ev.EventType())
}

func (s *DecodeTestSuite) TestEmptyPayload() {
	ev, err := Decode(infinity.EventParticipantSyncBegin, nil)
	s.Require().NoError(err)
	s.IsType(infinity.ParticipantSyncBeginEvent{}, ev)

	ev, err = Decode(infinity.EventPeerDisconnect, []byte("null"))
	s.Require().NoError(err)
	s.IsType(infinity.PeerDisconnectEvent{}, ev)
}

func (s *DecodeTestSuite) TestParticipantCreate() {
	id := uuid.New()
	parent := uuid.New()
	ev, err := Decode(infinity.EventParticipantCreate, []byte(`{
		"uuid":"`+id.String()+`","parent_uuid":"`+parent.String()+`",
		"display_name":"Alice","role":"chair","is_muted":"YES"}`))
	s.Require().NoError(err)

	create, ok := ev.(infinity.ParticipantCreateEvent)
	s.Require().True(ok)
	s.Equal(id, create.ID)
	s.Equal(parent, create.ParentID.UUID)
	s.Equal("Alice", create.DisplayName)
	s.Equal(infinity.RoleHost, create.Role)
	s.True(bool(create.AudioMuted))
}

func (s *DecodeTestSuite) TestStage() {
	a, b := uuid.New(), uuid.New()
	ev, err := Decode(infinity.EventStage, []byte(`[
		{"participant_uuid":"`+a.String()+`","stage_index":0,"vad":100},
		{"participant_uuid":"`+b.String()+`","stage_index":1,"vad":0}]`))
	s.Require().NoError(err)

	stage, ok := ev.(infinity.StageEvent)
	s.Require().True(ok)
	s.Require().Len(stage.Speakers, 2)
	s.Equal(a, stage.Speakers[0].ParticipantID)
	s.Equal(100, stage.Speakers[0].Vad)
	s.Equal(1, stage.Speakers[1].StageIndex)
}

func (s *DecodeTestSuite) TestConferenceUpdatePartial() {
	ev, err := Decode(infinity.EventConferenceUpdate, []byte(`{"locked":true}`))
	s.Require().NoError(err)

	update, ok := ev.(infinity.ConferenceUpdateEvent)
	s.Require().True(ok)
	s.Require().NotNil(update.Locked)
	s.True(*update.Locked)
	s.Nil(update.GuestsMuted)
	s.Nil(update.GuestsCanUnmute)
}

func (s *DecodeTestSuite) TestMalformed() {
	_, err := Decode(infinity.EventNewCandidate, []byte(`{"candidate":`))
	s.Require().Error(err)
	s.True(errors.Is(err, ErrMalformedEvent))

	_, err = Decode(infinity.EventStage, []byte(`{"not":"an array"}`))
	s.Require().Error(err)
	s.True(errors.Is(err, ErrMalformedEvent))
}
