package otel

// Metric prefixes per component.
const (
	PrefixToken       = "token"
	PrefixEventStream = "event_stream"
	PrefixRoster      = "roster"
	PrefixSignaling   = "signaling"
	PrefixMessenger   = "messenger"
	PrefixInfinity    = "infinity"
)
