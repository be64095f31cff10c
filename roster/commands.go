package roster

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/infinity-session/capability"
	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
)

// participantCall matches the ParticipantAPI method expressions, e.g.
// infinity.ParticipantAPI.Buzz.
type participantCall func(p infinity.ParticipantAPI, ctx context.Context, token string) error

// Every participant command takes uuid.Nil to act on the local participant.

func (r *Roster) RaiseHand(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "raise_hand", ErrRaiseHand, id, infinity.ParticipantAPI.Buzz)
}

func (r *Roster) LowerHand(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "lower_hand", ErrLowerHand, id, infinity.ParticipantAPI.ClearBuzz)
}

// Admit lets a participant waiting in the lobby into a locked conference.
func (r *Roster) Admit(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "admit", ErrAdmit, id, infinity.ParticipantAPI.Unlock)
}

func (r *Roster) Disconnect(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "disconnect", ErrDisconnect, id, infinity.ParticipantAPI.Disconnect)
}

func (r *Roster) ChangeRole(ctx context.Context, id uuid.UUID, role infinity.Role) error {
	return r.participantCommand(ctx, "change_role", ErrChangeRole, id,
		func(p infinity.ParticipantAPI, ctx context.Context, token string) error {
			return p.Role(ctx, token, &infinity.RoleRequest{Role: role})
		})
}

func (r *Roster) MakeHost(ctx context.Context, id uuid.UUID) error {
	return r.ChangeRole(ctx, id, infinity.RoleHost)
}

func (r *Roster) MakeGuest(ctx context.Context, id uuid.UUID) error {
	return r.ChangeRole(ctx, id, infinity.RoleGuest)
}

func (r *Roster) Mute(ctx context.Context, id uuid.UUID) error {
	call := infinity.ParticipantAPI.Mute
	if r.useClientMute(id) {
		call = infinity.ParticipantAPI.ClientMute
	}
	return r.participantCommand(ctx, "mute", ErrMute, id, call)
}

func (r *Roster) Unmute(ctx context.Context, id uuid.UUID) error {
	call := infinity.ParticipantAPI.Unmute
	if r.useClientMute(id) {
		call = infinity.ParticipantAPI.ClientUnmute
	}
	return r.participantCommand(ctx, "unmute", ErrUnmute, id, call)
}

func (r *Roster) MuteVideo(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "mute_video", ErrMuteVideo, id, infinity.ParticipantAPI.VideoMuted)
}

func (r *Roster) UnmuteVideo(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "unmute_video", ErrUnmuteVideo, id, infinity.ParticipantAPI.VideoUnmuted)
}

func (r *Roster) Spotlight(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "spotlight", ErrSpotlight, id, infinity.ParticipantAPI.SpotlightOn)
}

func (r *Roster) Unspotlight(ctx context.Context, id uuid.UUID) error {
	return r.participantCommand(ctx, "unspotlight", ErrUnspotlight, id, infinity.ParticipantAPI.SpotlightOff)
}

func (r *Roster) Lock(ctx context.Context) error {
	return r.conferenceCommand(ctx, "lock", ErrLock, infinity.ConferenceAPI.Lock)
}

func (r *Roster) Unlock(ctx context.Context) error {
	return r.conferenceCommand(ctx, "unlock", ErrUnlock, infinity.ConferenceAPI.Unlock)
}

func (r *Roster) MuteAllGuests(ctx context.Context) error {
	return r.conferenceCommand(ctx, "mute_all_guests", ErrMuteAllGuests, infinity.ConferenceAPI.MuteGuests)
}

func (r *Roster) UnmuteAllGuests(ctx context.Context) error {
	return r.conferenceCommand(ctx, "unmute_all_guests", ErrUnmuteAllGuests, infinity.ConferenceAPI.UnmuteGuests)
}

func (r *Roster) SetGuestsCanUnmute(ctx context.Context, allowed bool) error {
	return r.conferenceCommand(ctx, "guests_can_unmute", ErrGuestsCanUnmute,
		func(api infinity.ConferenceAPI, ctx context.Context, token string) error {
			return api.SetGuestsCanUnmute(ctx, token, &infinity.GuestsCanUnmuteRequest{Setting: allowed})
		})
}

func (r *Roster) LowerAllHands(ctx context.Context) error {
	return r.conferenceCommand(ctx, "lower_all_hands", ErrLowerAllHands, infinity.ConferenceAPI.ClearAllBuzz)
}

func (r *Roster) DisconnectAll(ctx context.Context) error {
	return r.conferenceCommand(ctx, "disconnect_all", ErrDisconnectAll, infinity.ConferenceAPI.DisconnectAll)
}

// resolve maps the requested id to the participant to address. It returns
// false when an explicitly requested participant is no longer present.
func (r *Roster) resolve(id uuid.UUID) (uuid.UUID, bool) {
	if id != uuid.Nil {
		_, ok := r.participants.Get()[id]
		return id, ok
	}
	if r.capabilities.Select(capability.DefaultTarget, r.self.Version, r.serviceType()) == capability.TargetParentOrSelf {
		if me := r.me.Get(); me != nil && me.ParentID != uuid.Nil {
			return me.ParentID, true
		}
	}
	return r.self.ParticipantID, true
}

// useClientMute reports whether muting id goes through the client-mute
// endpoint. Only the local participant is ever client-muted.
func (r *Roster) useClientMute(id uuid.UUID) bool {
	if id != uuid.Nil && id != r.self.ParticipantID {
		return false
	}
	return r.capabilities.Select(capability.AudioMute, r.self.Version, r.serviceType()) == capability.MuteClient
}

func (r *Roster) serviceType() infinity.ServiceType {
	if me := r.me.Get(); me != nil && me.ServiceType != infinity.ServiceTypeUnknown {
		return me.ServiceType
	}
	return r.self.ServiceType
}

func (r *Roster) participantCommand(
	ctx context.Context,
	name string,
	code errors.Code,
	id uuid.UUID,
	call participantCall,
) error {
	attrs := metric.WithAttributes(attribute.String("command", name))
	target, ok := r.resolve(id)
	if !ok {
		commandsSkipped.Add(ctx, 1, attrs)
		r.logger.Debug("Skip command for absent participant",
			log.String("command", name),
			log.Stringer("id", id))
		return nil
	}

	commandsTotal.Add(ctx, 1, attrs)
	if err := call(r.api.Participant(target), ctx, r.tokens.Get().Value); err != nil {
		commandsFailed.Add(ctx, 1, attrs)
		return errors.Wrapf(code, err, "%s %s", name, target)
	}
	return nil
}

func (r *Roster) conferenceCommand(
	ctx context.Context,
	name string,
	code errors.Code,
	call func(api infinity.ConferenceAPI, ctx context.Context, token string) error,
) error {
	attrs := metric.WithAttributes(attribute.String("command", name))
	commandsTotal.Add(ctx, 1, attrs)
	if err := call(r.api, ctx, r.tokens.Get().Value); err != nil {
		commandsFailed.Add(ctx, 1, attrs)
		return errors.Wrap(code, err, name)
	}
	return nil
}
