package signaling

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/imtaco/infinity-session/capability"
	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	intotel "github.com/imtaco/infinity-session/internal/otel"
	"github.com/imtaco/infinity-session/token"
)

var tracer = intotel.Tracer("signaling")

const (
	defaultEventBuffer = 16
	presentInMain      = "main"
)

// Tokens yields the token to authenticate the next REST call with.
type Tokens interface {
	Get() token.Token
}

type Config struct {
	Version      infinity.VersionID
	ServiceType  infinity.ServiceType
	Capabilities capability.Table
	EventBuffer  int
}

// Adapter bridges a local media engine to the call-scoped REST surface of the
// local participant and turns server events into signaling events.
type Adapter struct {
	participant infinity.ParticipantAPI
	tokens      Tokens
	cfg         Config
	logger      *log.Logger

	events chan Event

	// offerMu serialises offers and Close; call is written once, before ready is closed.
	offerMu sync.Mutex
	call    infinity.CallAPI
	ready   chan struct{}

	stop     chan struct{}
	stopOnce sync.Once
}

func New(participant infinity.ParticipantAPI, tokens Tokens, cfg Config, logger *log.Logger) *Adapter {
	if participant == nil {
		panic("participant is required")
	}
	if tokens == nil {
		panic("tokens is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	if cfg.Capabilities.Rules == nil {
		cfg.Capabilities = capability.Default
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = defaultEventBuffer
	}
	return &Adapter{
		participant: participant,
		tokens:      tokens,
		cfg:         cfg,
		logger:      logger,
		events:      make(chan Event, cfg.EventBuffer),
		ready:       make(chan struct{}),
		stop:        make(chan struct{}),
	}
}

// Events delivers inbound signaling events. It is closed when Run returns.
func (a *Adapter) Events() <-chan Event {
	return a.events
}

// Run translates server events until ctx is done, the adapter is closed or
// the channel is closed. Translated events wait in a queue until the host
// reads them, so a slow host never holds up the server event stream.
func (a *Adapter) Run(ctx context.Context, events <-chan infinity.Event) error {
	defer close(a.events)

	var pending []Event
	for events != nil || len(pending) > 0 {
		var (
			out  chan<- Event
			next Event
		)
		if len(pending) > 0 {
			out, next = a.events, pending[0]
		}

		select {
		case ev, ok := <-events:
			if !ok {
				// flush what is queued, then stop
				events = nil
				continue
			}
			if e, ok := translate(ev); ok {
				inboundEvents.Add(ctx, 1)
				pending = append(pending, e)
			}
		case out <- next:
			pending[0] = nil
			pending = pending[1:]
		case <-a.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

func translate(ev infinity.Event) (Event, bool) {
	switch e := ev.(type) {
	case infinity.NewOfferEvent:
		return OfferReceived{SDP: e.SDP}, true
	case infinity.UpdateSdpEvent:
		return OfferReceived{SDP: e.SDP}, true
	case infinity.NewCandidateEvent:
		return CandidateReceived{Candidate: e.Candidate, Mid: e.Mid, Ufrag: e.Ufrag, Pwd: e.Pwd}, true
	case infinity.PeerDisconnectEvent:
		return RestartRequired{}, true
	default:
		return nil, false
	}
}

// OnOffer sends a local offer. The first offer creates the call; later ones
// update it. An empty answer means the server did not answer and nothing must
// be applied.
func (a *Adapter) OnOffer(
	ctx context.Context,
	callType infinity.CallType,
	sdp string,
	presentationInMain bool,
	fecc bool,
) (string, error) {
	a.offerMu.Lock()
	defer a.offerMu.Unlock()
	if a.closed() {
		return "", errors.New(ErrClosed, "offer")
	}

	ctx, span := intotel.StartSpan(ctx, tracer, "signaling.offer",
		attribute.String("call_type", string(callType)),
		attribute.Bool("renegotiation", a.call != nil))
	defer span.End()

	offersSent.Add(ctx, 1)
	tok := a.tokens.Get().Value
	if a.call == nil {
		res, err := a.participant.Calls(ctx, tok, &infinity.CallsRequest{
			CallType: callType,
			SDP:      sdp,
			Present:  lo.Ternary(presentationInMain, presentInMain, ""),
			FECC:     fecc,
		})
		if err != nil {
			return "", a.fail(ctx, ErrOffer, err, "create call")
		}
		a.call = a.participant.Call(res.CallID)
		close(a.ready)
		a.logger.Info("Call created", log.Stringer("call_id", res.CallID))
		return a.answer(ctx, res.OfferIgnored, res.SDP), nil
	}

	res, err := a.call.Update(ctx, tok, &infinity.UpdateRequest{SDP: sdp, FECC: fecc})
	if err != nil {
		return "", a.fail(ctx, ErrOffer, err, "update call")
	}
	return a.answer(ctx, res.OfferIgnored, res.SDP), nil
}

func (a *Adapter) answer(ctx context.Context, offerIgnored bool, sdp string) string {
	if offerIgnored || strings.TrimSpace(sdp) == "" {
		offersUnanswered.Add(ctx, 1)
		return ""
	}
	return sdp
}

func (a *Adapter) OnOfferIgnored(ctx context.Context) error {
	return a.ack(ctx, &infinity.AckRequest{OfferIgnored: true})
}

func (a *Adapter) OnAnswer(ctx context.Context, sdp string) error {
	return a.ack(ctx, &infinity.AckRequest{SDP: sdp})
}

// OnAck acknowledges the call without a body.
func (a *Adapter) OnAck(ctx context.Context) error {
	return a.ack(ctx, nil)
}

func (a *Adapter) ack(ctx context.Context, req *infinity.AckRequest) error {
	call, err := a.waitCall(ctx)
	if err != nil {
		return a.fail(ctx, ErrAck, err, "ack")
	}
	if err := call.Ack(ctx, a.tokens.Get().Value, req); err != nil {
		return a.fail(ctx, ErrAck, err, "ack")
	}
	return nil
}

func (a *Adapter) OnCandidate(ctx context.Context, candidate, mid, ufrag, pwd string) error {
	call, err := a.waitCall(ctx)
	if err != nil {
		return a.fail(ctx, ErrCandidate, err, "new candidate")
	}
	err = call.NewCandidate(ctx, a.tokens.Get().Value, &infinity.NewCandidateRequest{
		Candidate: candidate,
		Mid:       mid,
		Ufrag:     ufrag,
		Pwd:       pwd,
	})
	if err != nil {
		return a.fail(ctx, ErrCandidate, err, "new candidate")
	}
	return nil
}

// OnDtmf sends digits on the call and reports whether the server accepted them.
func (a *Adapter) OnDtmf(ctx context.Context, digits string) (bool, error) {
	call, err := a.waitCall(ctx)
	if err != nil {
		return false, a.fail(ctx, ErrDtmf, err, "dtmf")
	}
	ok, err := call.Dtmf(ctx, a.tokens.Get().Value, &infinity.DtmfRequest{Digits: digits})
	if err != nil {
		return false, a.fail(ctx, ErrDtmf, err, "dtmf")
	}
	return ok, nil
}

func (a *Adapter) OnAudioMuted(ctx context.Context) error {
	call := infinity.ParticipantAPI.Mute
	if a.clientMute() {
		call = infinity.ParticipantAPI.ClientMute
	}
	return a.participantCall(ctx, ErrAudioMute, "audio mute", call)
}

func (a *Adapter) OnAudioUnmuted(ctx context.Context) error {
	call := infinity.ParticipantAPI.Unmute
	if a.clientMute() {
		call = infinity.ParticipantAPI.ClientUnmute
	}
	return a.participantCall(ctx, ErrAudioUnmute, "audio unmute", call)
}

func (a *Adapter) OnVideoMuted(ctx context.Context) error {
	return a.participantCall(ctx, ErrVideoMute, "video mute", infinity.ParticipantAPI.VideoMuted)
}

func (a *Adapter) OnVideoUnmuted(ctx context.Context) error {
	return a.participantCall(ctx, ErrVideoUnmute, "video unmute", infinity.ParticipantAPI.VideoUnmuted)
}

func (a *Adapter) OnTakeFloor(ctx context.Context) error {
	return a.participantCall(ctx, ErrTakeFloor, "take floor", infinity.ParticipantAPI.TakeFloor)
}

func (a *Adapter) OnReleaseFloor(ctx context.Context) error {
	return a.participantCall(ctx, ErrReleaseFloor, "release floor", infinity.ParticipantAPI.ReleaseFloor)
}

// Close ends the media connection: Run returns, later requests fail with
// ErrClosed, and the call is disconnected if one was created. Disconnect
// failures are only logged. Close is idempotent.
func (a *Adapter) Close(ctx context.Context) {
	first := false
	a.stopOnce.Do(func() {
		close(a.stop)
		first = true
	})
	if !first {
		return
	}

	// wait for an in-flight offer so its call is disconnected too
	a.offerMu.Lock()
	defer a.offerMu.Unlock()
	select {
	case <-a.ready:
	default:
		return
	}
	if err := a.call.Disconnect(ctx, a.tokens.Get().Value); err != nil {
		a.logger.Warn("Call disconnect failed", log.Error(err))
		return
	}
	a.logger.Info("Call disconnected")
}

func (a *Adapter) closed() bool {
	select {
	case <-a.stop:
		return true
	default:
		return false
	}
}

func (a *Adapter) clientMute() bool {
	return a.cfg.Capabilities.Select(capability.AudioMute, a.cfg.Version, a.cfg.ServiceType) == capability.MuteClient
}

func (a *Adapter) participantCall(
	ctx context.Context,
	code errors.Code,
	name string,
	call func(p infinity.ParticipantAPI, ctx context.Context, token string) error,
) error {
	if a.closed() {
		return errors.New(ErrClosed, name)
	}
	if err := call(a.participant, ctx, a.tokens.Get().Value); err != nil {
		return a.fail(ctx, code, err, name)
	}
	return nil
}

// waitCall blocks until the first offer created the call, the adapter is
// closed or ctx is done.
func (a *Adapter) waitCall(ctx context.Context) (infinity.CallAPI, error) {
	if a.closed() {
		return nil, errors.New(ErrClosed, "no call")
	}
	select {
	case <-a.ready:
		return a.call, nil
	case <-a.stop:
		return nil, errors.New(ErrClosed, "no call")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a *Adapter) fail(ctx context.Context, code errors.Code, err error, msg string) error {
	requestsFailed.Add(ctx, 1)
	a.logger.Debug("Signaling request failed", log.String("request", msg), log.Error(err))
	err = errors.Wrap(code, err, msg)
	intotel.RecordError(trace.SpanFromContext(ctx), err)
	return err
}
