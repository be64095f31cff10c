package roster

import (
	"context"
	"maps"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/imtaco/infinity-session/capability"
	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/log"
	"github.com/imtaco/infinity-session/internal/sync"
	"github.com/imtaco/infinity-session/token"
)

// Tokens yields the token to authenticate the next REST call with.
type Tokens interface {
	Get() token.Token
}

// Self describes the local participant as known from the token response.
type Self struct {
	ParticipantID uuid.UUID
	Version       infinity.VersionID
	ServiceType   infinity.ServiceType
}

type syncState int

const (
	notSynced syncState = iota
	syncing
	synced
)

// Participants is an immutable snapshot; callers must not modify it.
type Participants map[uuid.UUID]Participant

// Roster rebuilds the participant list and conference flags from the event
// stream. The collection is owned by the goroutine running Run; everybody
// else reads published snapshots.
type Roster struct {
	api          infinity.ConferenceAPI
	tokens       Tokens
	self         Self
	capabilities capability.Table
	logger       *log.Logger

	state   syncState
	current Participants
	working Participants

	participants *sync.Value[Participants]
	me           *sync.Value[*Participant]
	flags        *sync.Value[ConferenceFlags]
}

type Option func(*Roster)

func WithCapabilities(t capability.Table) Option {
	return func(r *Roster) {
		r.capabilities = t
	}
}

func New(api infinity.ConferenceAPI, tokens Tokens, self Self, logger *log.Logger, opts ...Option) *Roster {
	if api == nil {
		panic("api is required")
	}
	if tokens == nil {
		panic("tokens is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	r := &Roster{
		api:          api,
		tokens:       tokens,
		self:         self,
		capabilities: capability.Default,
		logger:       logger,
		state:        notSynced,
		current:      Participants{},
		participants: sync.NewValue[Participants](Participants{}, nil),
		me: sync.NewValue[*Participant](nil, func(a, b *Participant) bool {
			if a == nil || b == nil {
				return a == b
			}
			return a.Equal(*b)
		}),
		flags: sync.NewValue(ConferenceFlags{}, ConferenceFlags.Equal),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Participants publishes a fresh snapshot on every visible change.
func (r *Roster) Participants() *sync.Value[Participants] {
	return r.participants
}

// Me publishes the local participant, nil while absent, only when it changes.
func (r *Roster) Me() *sync.Value[*Participant] {
	return r.me
}

func (r *Roster) ConferenceFlags() *sync.Value[ConferenceFlags] {
	return r.flags
}

// Run applies events until ctx is done or the channel is closed.
func (r *Roster) Run(ctx context.Context, events <-chan infinity.Event) error {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			r.handle(ev)
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *Roster) handle(ev infinity.Event) {
	switch e := ev.(type) {
	case infinity.ParticipantSyncBeginEvent:
		r.logger.Debug("Participant sync begin")
		r.state = syncing
		r.working = Participants{}

	case infinity.ParticipantSyncEndEvent:
		if r.state != syncing {
			r.logger.Warn("Participant sync end without begin")
			return
		}
		r.state = synced
		r.current = r.working
		r.working = nil
		syncsCompleted.Add(context.Background(), 1)
		r.logger.Debug("Participant sync end", log.Int("participants", len(r.current)))
		r.publish()

	case infinity.ParticipantCreateEvent:
		p := fromResponse(&e.ParticipantResponse, r.self.ParticipantID)
		target := r.target()
		if prev, ok := target[p.ID]; ok {
			p.Speaking = prev.Speaking
		}
		target[p.ID] = p
		r.publishIfVisible()

	case infinity.ParticipantUpdateEvent:
		target := r.target()
		prev, ok := target[e.ID]
		if !ok {
			// may race ahead of its create; dropped on purpose
			droppedUpdates.Add(context.Background(), 1)
			r.logger.Debug("Drop update for unknown participant", log.Stringer("id", e.ID))
			return
		}
		p := fromResponse(&e.ParticipantResponse, r.self.ParticipantID)
		p.Speaking = prev.Speaking
		target[p.ID] = p
		r.publishIfVisible()

	case infinity.ParticipantDeleteEvent:
		target := r.target()
		if _, ok := target[e.ID]; !ok {
			return
		}
		delete(target, e.ID)
		r.publishIfVisible()

	case infinity.StageEvent:
		r.applyStage(e)

	case infinity.ConferenceUpdateEvent:
		r.applyConferenceUpdate(e)
	}
}

// target is the collection create/update/delete apply to in the current state.
func (r *Roster) target() Participants {
	if r.state == syncing {
		return r.working
	}
	return r.current
}

func (r *Roster) applyStage(e infinity.StageEvent) {
	speaking := lo.SliceToMap(e.Speakers, func(s infinity.Speaker) (uuid.UUID, bool) {
		return s.ParticipantID, s.Vad > 0
	})
	target := r.target()
	for id := range speaking {
		if _, ok := target[id]; !ok {
			droppedUpdates.Add(context.Background(), 1)
		}
	}

	changed := false
	for id, p := range target {
		if p.Speaking == speaking[id] {
			continue
		}
		p.Speaking = speaking[id]
		target[id] = p
		changed = true
	}
	if changed {
		r.publishIfVisible()
	}
}

func (r *Roster) applyConferenceUpdate(e infinity.ConferenceUpdateEvent) {
	flags := r.flags.Get()
	if e.Locked != nil {
		flags.Locked = lo.ToPtr(*e.Locked)
	}
	if e.GuestsMuted != nil {
		flags.GuestsMuted = lo.ToPtr(*e.GuestsMuted)
	}
	if e.GuestsCanUnmute != nil {
		flags.GuestsCanUnmute = lo.ToPtr(*e.GuestsCanUnmute)
	}
	if r.flags.Set(flags) {
		r.logger.Debug("Conference flags changed",
			log.Bool("locked", lo.FromPtr(flags.Locked)),
			log.Bool("guests_muted", lo.FromPtr(flags.GuestsMuted)),
			log.Bool("guests_can_unmute", lo.FromPtr(flags.GuestsCanUnmute)))
	}
}

func (r *Roster) publishIfVisible() {
	if r.state == syncing {
		return
	}
	r.publish()
}

func (r *Roster) publish() {
	before := len(r.participants.Get())
	snapshot := maps.Clone(r.current)
	r.participants.Set(snapshot)
	participantsGauge.Add(context.Background(), int64(len(snapshot)-before))

	if me, ok := snapshot[r.self.ParticipantID]; ok {
		r.me.Set(&me)
	} else {
		r.me.Set(nil)
	}
}
