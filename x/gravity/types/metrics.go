package types

import (
	"github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
)

const (
	MetricsKeyRotateConsuls    = "rotate_consuls"
	MetricsKeyRotationAccepted = "consul_rotation_accepted"
	MetricsKeyRotationIgnored  = "consul_rotation_ignored"
)

// IncrementRotationCounter counts a rotation attempt by outcome.
func IncrementRotationCounter(accepted bool) {
	key := MetricsKeyRotationIgnored
	if accepted {
		key = MetricsKeyRotationAccepted
	}
	telemetry.IncrCounterWithLabels(
		[]string{key},
		1,
		[]metrics.Label{telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName)},
	)
}
