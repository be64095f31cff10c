package signaling

import "github.com/imtaco/infinity-session/internal/errors"

const (
	ErrOffer        errors.Code = "offer failed"
	ErrAck          errors.Code = "ack failed"
	ErrCandidate    errors.Code = "new candidate failed"
	ErrDtmf         errors.Code = "dtmf failed"
	ErrAudioMute    errors.Code = "audio mute failed"
	ErrAudioUnmute  errors.Code = "audio unmute failed"
	ErrVideoMute    errors.Code = "video mute failed"
	ErrVideoUnmute  errors.Code = "video unmute failed"
	ErrTakeFloor    errors.Code = "take floor failed"
	ErrReleaseFloor errors.Code = "release floor failed"
	ErrClosed       errors.Code = "media connection closed"
)
