package signaling

// Event is a signaling instruction for the local media engine.
type Event interface {
	signalingEvent()
}

// OfferReceived carries a remote offer (new or renegotiated).
type OfferReceived struct {
	SDP string
}

type CandidateReceived struct {
	Candidate string
	Mid       string
	Ufrag     string
	Pwd       string
}

// RestartRequired asks the media engine to restart ICE/renegotiate.
type RestartRequired struct{}

func (OfferReceived) signalingEvent()     {}
func (CandidateReceived) signalingEvent() {}
func (RestartRequired) signalingEvent()   {}
