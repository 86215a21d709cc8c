package types

import (
	"github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
)

const (
	MetricsKeyApplyCommands = "apply_commands"
	MetricsKeyRequestUnwrap = "request_unwrap"
	MetricsKeyCommands      = "commands"
)

// IncrementCommandCounter counts executed stream commands by opcode and outcome.
func IncrementCommandCounter(opcode byte, ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	telemetry.IncrCounterWithLabels(
		[]string{MetricsKeyCommands},
		1,
		[]metrics.Label{
			telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName),
			telemetry.NewLabel("opcode", string(opcode)),
			telemetry.NewLabel("result", result),
		},
	)
}
