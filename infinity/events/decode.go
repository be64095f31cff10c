package events

import (
	"bytes"
	"encoding/json"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
)

const ErrMalformedEvent errors.Code = "malformed event"

type decoder func(data []byte) (infinity.Event, error)

var decoders = map[string]decoder{
	infinity.EventParticipantSyncBegin: decodeJSON[infinity.ParticipantSyncBeginEvent],
	infinity.EventParticipantSyncEnd:   decodeJSON[infinity.ParticipantSyncEndEvent],
	infinity.EventParticipantCreate:    decodeJSON[infinity.ParticipantCreateEvent],
	infinity.EventParticipantUpdate:    decodeJSON[infinity.ParticipantUpdateEvent],
	infinity.EventParticipantDelete:    decodeJSON[infinity.ParticipantDeleteEvent],
	infinity.EventStage:                decodeStage,
	infinity.EventConferenceUpdate:     decodeJSON[infinity.ConferenceUpdateEvent],
	infinity.EventMessageReceived:      decodeJSON[infinity.MessageReceivedEvent],
	infinity.EventNewOffer:             decodeJSON[infinity.NewOfferEvent],
	infinity.EventUpdateSdp:            decodeJSON[infinity.UpdateSdpEvent],
	infinity.EventNewCandidate:         decodeJSON[infinity.NewCandidateEvent],
	infinity.EventPeerDisconnect:       decodeJSON[infinity.PeerDisconnectEvent],
	infinity.EventDisconnect:           decodeJSON[infinity.DisconnectEvent],
	infinity.EventBreakoutBegin:        decodeJSON[infinity.BreakoutBeginEvent],
	infinity.EventBreakoutEnd:          decodeJSON[infinity.BreakoutEndEvent],
}

// Decode turns one named event payload into its typed form. Names this
// client does not model decode to infinity.UnknownEvent without error.
func Decode(name string, data []byte) (infinity.Event, error) {
	dec, ok := decoders[name]
	if !ok {
		return infinity.UnknownEvent{Type: name}, nil
	}
	return dec(data)
}

func decodeJSON[T infinity.Event](data []byte) (infinity.Event, error) {
	var ev T
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ev, nil
	}
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, errors.Wrapf(ErrMalformedEvent, err, "decode %s", ev.EventType())
	}
	return ev, nil
}

func decodeStage(data []byte) (infinity.Event, error) {
	var ev infinity.StageEvent
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ev, nil
	}
	if err := json.Unmarshal(data, &ev.Speakers); err != nil {
		return nil, errors.Wrap(ErrMalformedEvent, err, "decode stage")
	}
	return ev, nil
}
