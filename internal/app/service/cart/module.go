package cart

import "go.uber.org/fx"

// Module exposes the cart service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
