package roster

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/infinity-session/internal/otel"
)

var (
	participantsGauge metric.Int64UpDownCounter
	syncsCompleted    metric.Int64Counter
	droppedUpdates    metric.Int64Counter
	commandsTotal     metric.Int64Counter
	commandsFailed    metric.Int64Counter
	commandsSkipped   metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("roster", intotel.PrefixRoster)

	f.Int64UpDownCounter(&participantsGauge, "participants",
		metric.WithDescription("Participants in the published roster"))

	f.Int64Counter(&syncsCompleted, "syncs",
		metric.WithDescription("Completed participant sync rounds"))

	f.Int64Counter(&droppedUpdates, "updates.dropped",
		metric.WithDescription("Updates or stage signals for participants not in the roster"))

	f.Int64Counter(&commandsTotal, "commands.total",
		metric.WithDescription("Participant and conference commands sent"))

	f.Int64Counter(&commandsFailed, "commands.failed",
		metric.WithDescription("Commands whose REST call failed"))

	f.Int64Counter(&commandsSkipped, "commands.skipped",
		metric.WithDescription("Commands for participants no longer in the roster"))
}
