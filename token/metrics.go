package token

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/infinity-session/internal/otel"
)

var (
	refreshes       metric.Int64Counter
	refreshFailures metric.Int64Counter
	releaseFailures metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("token.refresher", intotel.PrefixToken)

	f.Int64Counter(&refreshes, "refresh.success",
		metric.WithDescription("Successful token renewals"))

	f.Int64Counter(&refreshFailures, "refresh.failed",
		metric.WithDescription("Token renewals that failed and stopped the refresh loop"))

	f.Int64Counter(&releaseFailures, "release.failed",
		metric.WithDescription("Token releases that failed on teardown"))
}
