package payment

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/fx"

	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// ErrDeclined is returned when a charge is rejected.
var ErrDeclined = errors.New("payment declined")

// Gateway is the pluggable payment capability. Checkout and membership
// purchase are agnostic to the implementation behind it.
type Gateway interface {
	Charge(ctx context.Context, method types.PaymentMethod, card types.CardDetails, amountCents int64) error
}

// Simulator is the deterministic mock gateway: credit_card succeeds iff the
// card number starts with '4' and has at least 13 digits; paypal and cash
// always succeed; any other method is declined. It has no external side
// effects, so it is safe to call inside a database transaction.
type Simulator struct{}

func NewSimulator() Gateway {
	return Simulator{}
}

func (Simulator) Charge(_ context.Context, method types.PaymentMethod, card types.CardDetails, _ int64) error {
	switch method {
	case types.PaymentMethodCreditCard:
		if strings.HasPrefix(card.CardNumber, "4") && len(card.CardNumber) >= 13 {
			return nil
		}
		return ErrDeclined
	case types.PaymentMethodPaypal, types.PaymentMethodCash:
		return nil
	default:
		return ErrDeclined
	}
}

// Module provides the simulator as the Gateway implementation.
var Module = fx.Options(
	fx.Provide(NewSimulator),
)
