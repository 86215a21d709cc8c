package types

import (
	"github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
)

const (
	MetricsKeyRotateOracles    = "rotate_oracles"
	MetricsKeySubscribe        = "subscribe"
	MetricsKeyOraclesRotated   = "oracles_rotated"
	MetricsKeySubscriptionsNew = "subscriptions_created"
)

func incrCounter(key string) {
	telemetry.IncrCounterWithLabels(
		[]string{key},
		1,
		[]metrics.Label{telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName)},
	)
}

// IncrementOraclesRotated counts accepted oracle rotations.
func IncrementOraclesRotated() {
	incrCounter(MetricsKeyOraclesRotated)
}

// IncrementSubscriptions counts created subscriptions.
func IncrementSubscriptions() {
	incrCounter(MetricsKeySubscriptionsNew)
}
