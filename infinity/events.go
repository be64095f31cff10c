package infinity

import "github.com/google/uuid"

// Event is one decoded server-push event.
type Event interface {
	EventType() string
}

const (
	EventParticipantSyncBegin = "participant_sync_begin"
	EventParticipantSyncEnd   = "participant_sync_end"
	EventParticipantCreate    = "participant_create"
	EventParticipantUpdate    = "participant_update"
	EventParticipantDelete    = "participant_delete"
	EventStage                = "stage"
	EventConferenceUpdate     = "conference_update"
	EventMessageReceived      = "message_received"
	EventNewOffer             = "new_offer"
	EventUpdateSdp            = "update_sdp"
	EventNewCandidate         = "new_candidate"
	EventPeerDisconnect       = "peer_disconnect"
	EventDisconnect           = "disconnect"
	EventBreakoutBegin        = "breakout_begin"
	EventBreakoutEnd          = "breakout_end"
)

type ParticipantSyncBeginEvent struct{}

type ParticipantSyncEndEvent struct{}

type ParticipantCreateEvent struct {
	ParticipantResponse
}

type ParticipantUpdateEvent struct {
	ParticipantResponse
}

type ParticipantDeleteEvent struct {
	ID uuid.UUID `json:"uuid"`
}

type Speaker struct {
	ParticipantID uuid.UUID `json:"participant_uuid"`
	StageIndex    int       `json:"stage_index"`
	Vad           int       `json:"vad"`
}

// StageEvent lists the current speakers; the payload is a bare JSON array.
type StageEvent struct {
	Speakers []Speaker
}

type ConferenceUpdateEvent struct {
	Locked          *bool `json:"locked,omitempty"`
	GuestsMuted     *bool `json:"guests_muted,omitempty"`
	GuestsCanUnmute *bool `json:"guests_can_unmute,omitempty"`
}

type MessageReceivedEvent struct {
	Origin        string    `json:"origin"`
	ParticipantID uuid.UUID `json:"uuid"`
	Type          string    `json:"type"`
	Payload       string    `json:"payload"`
	Direct        bool      `json:"direct"`
}

type NewOfferEvent struct {
	SDP string `json:"sdp"`
}

type UpdateSdpEvent struct {
	SDP string `json:"sdp"`
}

type NewCandidateEvent struct {
	Candidate string `json:"candidate"`
	Mid       string `json:"mid"`
	Ufrag     string `json:"ufrag"`
	Pwd       string `json:"pwd"`
}

type PeerDisconnectEvent struct{}

type DisconnectEvent struct {
	Reason string `json:"reason"`
}

type BreakoutBeginEvent struct {
	BreakoutID    uuid.UUID `json:"breakout_uuid"`
	ParticipantID uuid.UUID `json:"participant_uuid"`
}

type BreakoutEndEvent struct {
	BreakoutID    uuid.UUID `json:"breakout_uuid"`
	ParticipantID uuid.UUID `json:"participant_uuid"`
}

// UnknownEvent carries an event name this client does not model.
type UnknownEvent struct {
	Type string
}

func (ParticipantSyncBeginEvent) EventType() string { return EventParticipantSyncBegin }
func (ParticipantSyncEndEvent) EventType() string   { return EventParticipantSyncEnd }
func (ParticipantCreateEvent) EventType() string    { return EventParticipantCreate }
func (ParticipantUpdateEvent) EventType() string    { return EventParticipantUpdate }
func (ParticipantDeleteEvent) EventType() string    { return EventParticipantDelete }
func (StageEvent) EventType() string                { return EventStage }
func (ConferenceUpdateEvent) EventType() string     { return EventConferenceUpdate }
func (MessageReceivedEvent) EventType() string      { return EventMessageReceived }
func (NewOfferEvent) EventType() string             { return EventNewOffer }
func (UpdateSdpEvent) EventType() string            { return EventUpdateSdp }
func (NewCandidateEvent) EventType() string         { return EventNewCandidate }
func (PeerDisconnectEvent) EventType() string       { return EventPeerDisconnect }
func (DisconnectEvent) EventType() string           { return EventDisconnect }
func (BreakoutBeginEvent) EventType() string        { return EventBreakoutBegin }
func (BreakoutEndEvent) EventType() string          { return EventBreakoutEnd }
func (e UnknownEvent) EventType() string            { return e.Type }
