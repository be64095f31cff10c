package signaling

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/infinity-session/internal/otel"
)

var (
	offersSent       metric.Int64Counter
	offersUnanswered metric.Int64Counter
	inboundEvents    metric.Int64Counter
	requestsFailed   metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("signaling.adapter", intotel.PrefixSignaling)

	f.Int64Counter(&offersSent, "offers",
		metric.WithDescription("Local offers sent as call creation or update"))

	f.Int64Counter(&offersUnanswered, "offers.unanswered",
		metric.WithDescription("Offers the server ignored or answered with a blank SDP"))

	f.Int64Counter(&inboundEvents, "inbound",
		metric.WithDescription("Server events translated into signaling events"))

	f.Int64Counter(&requestsFailed, "requests.failed",
		metric.WithDescription("Call or participant requests that failed"))
}
