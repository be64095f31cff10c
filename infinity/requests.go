package infinity

import "github.com/google/uuid"

type envelope[T any] struct {
	Status string `json:"status"`
	Result T      `json:"result"`
}

type RequestTokenRequest struct {
	DisplayName         string `json:"display_name"`
	ConferenceExtension string `json:"conference_extension,omitempty"`
	CallTag             string `json:"call_tag,omitempty"`
}

type IceServer struct {
	URL        string   `json:"url,omitempty"`
	URLs       []string `json:"urls,omitempty"`
	Username   string   `json:"username,omitempty"`
	Credential string   `json:"credential,omitempty"`
}

type RequestTokenResponse struct {
	Token           string      `json:"token"`
	Expires         Seconds     `json:"expires"`
	ParticipantID   uuid.UUID   `json:"participant_uuid"`
	ParticipantName string      `json:"display_name"`
	ConferenceName  string      `json:"conference_name"`
	ServiceType     ServiceType `json:"service_type"`
	Role            Role        `json:"role"`
	Version         Version     `json:"version"`
	ChatEnabled     bool        `json:"chat_enabled"`
	Stun            []IceServer `json:"stun,omitempty"`
	Turn            []IceServer `json:"turn,omitempty"`
}

type RefreshTokenResponse struct {
	Token   string  `json:"token"`
	Expires Seconds `json:"expires"`
}

type GuestsCanUnmuteRequest struct {
	Setting bool `json:"setting"`
}

type MessageRequest struct {
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

type RoleRequest struct {
	Role Role `json:"role"`
}

type CallsRequest struct {
	CallType CallType `json:"call_type"`
	SDP      string   `json:"sdp"`
	// Present is "main" when presentation is mixed into the main video.
	Present string `json:"present,omitempty"`
	FECC    bool   `json:"fecc"`
}

type CallsResponse struct {
	CallID       uuid.UUID `json:"call_uuid"`
	SDP          string    `json:"sdp"`
	OfferIgnored bool      `json:"offer_ignored"`
}

type AckRequest struct {
	SDP          string `json:"sdp,omitempty"`
	OfferIgnored bool   `json:"offer_ignored"`
}

type UpdateRequest struct {
	SDP  string `json:"sdp"`
	FECC bool   `json:"fecc"`
}

type UpdateResponse struct {
	SDP          string `json:"sdp"`
	OfferIgnored bool   `json:"offer_ignored"`
}

type NewCandidateRequest struct {
	Candidate string `json:"candidate"`
	Mid       string `json:"mid"`
	Ufrag     string `json:"ufrag,omitempty"`
	Pwd       string `json:"pwd,omitempty"`
}

type DtmfRequest struct {
	Digits string `json:"digits"`
}

// ParticipantResponse is the participant object carried by participant_create
// and participant_update events.
type ParticipantResponse struct {
	ID                  uuid.UUID    `json:"uuid"`
	ParentID            OptionalUUID `json:"parent_uuid"`
	DisplayName         string       `json:"display_name"`
	OverlayText         string       `json:"overlay_text"`
	Role                Role         `json:"role"`
	ServiceType         ServiceType  `json:"service_type"`
	AudioMuted          Flag         `json:"is_muted"`
	ClientAudioMuted    Flag         `json:"is_client_muted"`
	VideoMuted          Flag         `json:"is_video_muted"`
	Presenting          Flag         `json:"is_presenting"`
	MuteSupported       Flag         `json:"mute_supported"`
	TransferSupported   Flag         `json:"transfer_supported"`
	DisconnectSupported Flag         `json:"disconnect_supported"`
	CallTag             string       `json:"call_tag"`
	StartTime           UnixTime     `json:"start_time"`
	BuzzTime            UnixTime     `json:"buzz_time"`
	SpotlightTime       UnixTime     `json:"spotlight"`
}
