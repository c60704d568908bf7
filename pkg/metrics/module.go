package metrics

import "go.uber.org/fx"

// Module provides the shared Metrics instance.
var Module = fx.Options(
	fx.Provide(New),
)
