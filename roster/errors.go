package roster

import "github.com/imtaco/infinity-session/internal/errors"

const (
	ErrRaiseHand       errors.Code = "raise hand failed"
	ErrLowerHand       errors.Code = "lower hand failed"
	ErrAdmit           errors.Code = "admit failed"
	ErrDisconnect      errors.Code = "disconnect failed"
	ErrChangeRole      errors.Code = "change role failed"
	ErrMute            errors.Code = "mute failed"
	ErrUnmute          errors.Code = "unmute failed"
	ErrMuteVideo       errors.Code = "mute video failed"
	ErrUnmuteVideo     errors.Code = "unmute video failed"
	ErrSpotlight       errors.Code = "spotlight failed"
	ErrUnspotlight     errors.Code = "unspotlight failed"
	ErrLock            errors.Code = "lock failed"
	ErrUnlock          errors.Code = "unlock failed"
	ErrMuteAllGuests   errors.Code = "mute all guests failed"
	ErrUnmuteAllGuests errors.Code = "unmute all guests failed"
	ErrGuestsCanUnmute errors.Code = "set guests can unmute failed"
	ErrLowerAllHands   errors.Code = "lower all hands failed"
	ErrDisconnectAll   errors.Code = "disconnect all failed"
)
