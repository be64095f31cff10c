package eventstream

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/infinity-session/internal/otel"
)

var (
	streamEvents   metric.Int64Counter
	streamRestarts metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("eventstream.supervisor", intotel.PrefixEventStream)

	f.Int64Counter(&streamEvents, "events",
		metric.WithDescription("Events received from the push stream"))

	f.Int64Counter(&streamRestarts, "restarts",
		metric.WithDescription("Push stream reopens after a transport failure"))
}
