package messenger

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/infinity-session/internal/otel"
)

var (
	messagesSent     metric.Int64Counter
	messagesFailed   metric.Int64Counter
	messagesReceived metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("messenger", intotel.PrefixMessenger)

	f.Int64Counter(&messagesSent, "sent",
		metric.WithDescription("Messages accepted by the server"))

	f.Int64Counter(&messagesFailed, "failed",
		metric.WithDescription("Messages that failed or were declined"))

	f.Int64Counter(&messagesReceived, "received",
		metric.WithDescription("Messages received from other participants"))
}
