package infinity

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/infinity-session/internal/otel"
)

var (
	requestsTotal   metric.Int64Counter
	requestsFailed  metric.Int64Counter
	requestDuration metric.Float64Histogram
)

func init() {
	f := intotel.NewFactory("infinity.client", intotel.PrefixInfinity)

	f.Int64Counter(&requestsTotal, "requests.total",
		metric.WithDescription("Total REST requests sent to the conferencing node"))

	f.Int64Counter(&requestsFailed, "requests.failed",
		metric.WithDescription("REST requests that failed or returned a non-success status"))

	f.Float64Histogram(&requestDuration, "request.duration",
		metric.WithDescription("REST request round-trip time"),
		metric.WithUnit("s"))
}
