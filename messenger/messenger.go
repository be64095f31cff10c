package messenger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	"github.com/imtaco/infinity-session/internal/sync"
	"github.com/imtaco/infinity-session/token"
)

const (
	ErrSend    errors.Code = "send message failed"
	ErrNotSent errors.Code = "message not accepted"

	TypeTextPlain = "text/plain"
)

// Message is one chat message, sent locally or received from the server.
type Message struct {
	At              time.Time
	ParticipantID   uuid.UUID
	ParticipantName string
	Type            string
	Payload         string
	Direct          bool
}

type Tokens interface {
	Get() token.Token
}

// Self identifies the local participant as message sender.
type Self struct {
	ParticipantID uuid.UUID
	DisplayName   string
}

type Messenger struct {
	api         infinity.ConferenceAPI
	tokens      Tokens
	self        Self
	clock       clockwork.Clock
	broadcaster *sync.Broadcaster[Message]
	logger      *log.Logger
}

type Option func(*Messenger)

func WithClock(clock clockwork.Clock) Option {
	return func(m *Messenger) {
		m.clock = clock
	}
}

func New(api infinity.ConferenceAPI, tokens Tokens, self Self, logger *log.Logger, opts ...Option) *Messenger {
	if api == nil {
		panic("api is required")
	}
	if tokens == nil {
		panic("tokens is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	m := &Messenger{
		api:         api,
		tokens:      tokens,
		self:        self,
		clock:       clockwork.NewRealClock(),
		broadcaster: sync.NewBroadcaster[Message](),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe returns every message sent or received after the call. The
// channel is closed when Run returns.
func (m *Messenger) Subscribe(buffer int) (<-chan Message, func()) {
	return m.broadcaster.Subscribe(buffer)
}

// Send posts a message to the whole conference.
func (m *Messenger) Send(ctx context.Context, typ, payload string) (Message, error) {
	ok, err := m.api.Message(ctx, m.tokens.Get().Value, &infinity.MessageRequest{Type: typ, Payload: payload})
	return m.sent(ctx, ok, err, typ, payload, false)
}

// SendTo posts a direct message to one participant.
func (m *Messenger) SendTo(ctx context.Context, id uuid.UUID, typ, payload string) (Message, error) {
	ok, err := m.api.Participant(id).Message(ctx, m.tokens.Get().Value, &infinity.MessageRequest{Type: typ, Payload: payload})
	return m.sent(ctx, ok, err, typ, payload, true)
}

func (m *Messenger) sent(ctx context.Context, ok bool, err error, typ, payload string, direct bool) (Message, error) {
	if err != nil {
		messagesFailed.Add(ctx, 1)
		return Message{}, errors.Wrap(ErrSend, err, "send message")
	}
	if !ok {
		messagesFailed.Add(ctx, 1)
		return Message{}, errors.New(ErrNotSent, "server declined the message")
	}
	msg := Message{
		At:              m.clock.Now(),
		ParticipantID:   m.self.ParticipantID,
		ParticipantName: m.self.DisplayName,
		Type:            typ,
		Payload:         payload,
		Direct:          direct,
	}
	messagesSent.Add(ctx, 1)
	if err := m.broadcaster.Publish(ctx, msg); err != nil {
		m.logger.Debug("Sent message not published", log.Error(err))
	}
	return msg, nil
}

// Run publishes received messages until ctx is done or the channel is closed.
func (m *Messenger) Run(ctx context.Context, events <-chan infinity.Event) error {
	defer m.broadcaster.Close()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			e, ok := ev.(infinity.MessageReceivedEvent)
			if !ok {
				continue
			}
			messagesReceived.Add(ctx, 1)
			msg := Message{
				At:              m.clock.Now(),
				ParticipantID:   e.ParticipantID,
				ParticipantName: e.Origin,
				Type:            e.Type,
				Payload:         e.Payload,
				Direct:          e.Direct,
			}
			if err := m.broadcaster.Publish(ctx, msg); err != nil {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}
