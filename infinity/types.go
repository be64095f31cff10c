//go:generate go run go.uber.org/mock/mockgen -source=types.go -destination=mocks/types.go -package=mocks

package infinity

import (
	"context"

	"github.com/google/uuid"
)

// ConferenceAPI is the conference-scoped part of the client REST API. Every
// method carries the token it authenticates with; callers read it from their
// token store right before the call.
type ConferenceAPI interface {
	RequestToken(ctx context.Context, req *RequestTokenRequest, pin string) (*RequestTokenResponse, error)
	RefreshToken(ctx context.Context, token string) (*RefreshTokenResponse, error)
	ReleaseToken(ctx context.Context, token string) error

	Lock(ctx context.Context, token string) error
	Unlock(ctx context.Context, token string) error
	MuteGuests(ctx context.Context, token string) error
	UnmuteGuests(ctx context.Context, token string) error
	SetGuestsCanUnmute(ctx context.Context, token string, req *GuestsCanUnmuteRequest) error
	ClearAllBuzz(ctx context.Context, token string) error
	DisconnectAll(ctx context.Context, token string) error
	Message(ctx context.Context, token string, req *MessageRequest) (bool, error)

	Participant(id uuid.UUID) ParticipantAPI
}

// ParticipantAPI addresses one participant of the conference.
type ParticipantAPI interface {
	ID() uuid.UUID

	Calls(ctx context.Context, token string, req *CallsRequest) (*CallsResponse, error)
	Call(id uuid.UUID) CallAPI

	Mute(ctx context.Context, token string) error
	Unmute(ctx context.Context, token string) error
	ClientMute(ctx context.Context, token string) error
	ClientUnmute(ctx context.Context, token string) error
	VideoMuted(ctx context.Context, token string) error
	VideoUnmuted(ctx context.Context, token string) error
	TakeFloor(ctx context.Context, token string) error
	ReleaseFloor(ctx context.Context, token string) error
	Buzz(ctx context.Context, token string) error
	ClearBuzz(ctx context.Context, token string) error
	Unlock(ctx context.Context, token string) error
	Disconnect(ctx context.Context, token string) error
	Role(ctx context.Context, token string, req *RoleRequest) error
	SpotlightOn(ctx context.Context, token string) error
	SpotlightOff(ctx context.Context, token string) error
	Message(ctx context.Context, token string, req *MessageRequest) (bool, error)
}

// CallAPI addresses one media call of a participant.
type CallAPI interface {
	ID() uuid.UUID

	Ack(ctx context.Context, token string, req *AckRequest) error
	Update(ctx context.Context, token string, req *UpdateRequest) (*UpdateResponse, error)
	NewCandidate(ctx context.Context, token string, req *NewCandidateRequest) error
	Dtmf(ctx context.Context, token string, req *DtmfRequest) (bool, error)
	Disconnect(ctx context.Context, token string) error
}

// VersionID is the numeric server protocol version (e.g. 36).
type VersionID int

type Version struct {
	VersionID     VersionID `json:"version_id"`
	PseudoVersion string    `json:"pseudo_version"`
}

type ServiceType string

const (
	ServiceTypeUnknown     ServiceType = ""
	ServiceTypeConnecting  ServiceType = "connecting"
	ServiceTypeWaitingRoom ServiceType = "waiting_room"
	ServiceTypeIVR         ServiceType = "ivr"
	ServiceTypeConference  ServiceType = "conference"
	ServiceTypeLecture     ServiceType = "lecture"
	ServiceTypeGateway     ServiceType = "gateway"
	ServiceTypeTestCall    ServiceType = "test_call"
)

type Role string

const (
	RoleUnknown Role = ""
	RoleHost    Role = "chair"
	RoleGuest   Role = "guest"
)

type CallType string

const (
	CallTypeWebRTC CallType = "WEBRTC"
)
