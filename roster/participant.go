package roster

import (
	"time"

	"github.com/google/uuid"

	"github.com/imtaco/infinity-session/infinity"
)

type Participant struct {
	ID       uuid.UUID
	ParentID uuid.UUID

	Role        infinity.Role
	ServiceType infinity.ServiceType

	AudioMuted          bool
	ClientAudioMuted    bool
	VideoMuted          bool
	Presenting          bool
	MuteSupported       bool
	TransferSupported   bool
	DisconnectSupported bool

	DisplayName string
	OverlayText string
	CallTag     string

	StartTime     *time.Time
	BuzzTime      *time.Time
	SpotlightTime *time.Time

	Speaking bool
	Me       bool
}

// HandRaised reports whether the participant is buzzing.
func (p Participant) HandRaised() bool {
	return p.BuzzTime != nil
}

func (p Participant) Spotlighted() bool {
	return p.SpotlightTime != nil
}

// Equal compares by value, including the pointed-to times.
func (p Participant) Equal(o Participant) bool {
	if !timeEqual(p.StartTime, o.StartTime) ||
		!timeEqual(p.BuzzTime, o.BuzzTime) ||
		!timeEqual(p.SpotlightTime, o.SpotlightTime) {
		return false
	}
	p.StartTime, p.BuzzTime, p.SpotlightTime = nil, nil, nil
	o.StartTime, o.BuzzTime, o.SpotlightTime = nil, nil, nil
	return p == o
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func fromResponse(r *infinity.ParticipantResponse, me uuid.UUID) Participant {
	return Participant{
		ID:                  r.ID,
		ParentID:            r.ParentID.UUID,
		Role:                r.Role,
		ServiceType:         r.ServiceType,
		AudioMuted:          bool(r.AudioMuted),
		ClientAudioMuted:    bool(r.ClientAudioMuted),
		VideoMuted:          bool(r.VideoMuted),
		Presenting:          bool(r.Presenting),
		MuteSupported:       bool(r.MuteSupported),
		TransferSupported:   bool(r.TransferSupported),
		DisconnectSupported: bool(r.DisconnectSupported),
		DisplayName:         r.DisplayName,
		OverlayText:         r.OverlayText,
		CallTag:             r.CallTag,
		StartTime:           r.StartTime.Ptr(),
		BuzzTime:            r.BuzzTime.Ptr(),
		SpotlightTime:       r.SpotlightTime.Ptr(),
		Me:                  r.ID == me,
	}
}

// ConferenceFlags are the room-wide switches. A nil field has not been
// reported by the server yet.
type ConferenceFlags struct {
	Locked          *bool
	GuestsMuted     *bool
	GuestsCanUnmute *bool
}

func (f ConferenceFlags) Equal(o ConferenceFlags) bool {
	return boolPtrEqual(f.Locked, o.Locked) &&
		boolPtrEqual(f.GuestsMuted, o.GuestsMuted) &&
		boolPtrEqual(f.GuestsCanUnmute, o.GuestsCanUnmute)
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
