package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kassem10h/Gym-Poject/pkg/types"
)

func TestSimulatorCharge(t *testing.T) {
	cases := []struct {
		name    string
		method  types.PaymentMethod
		card    types.CardDetails
		wantErr bool
	}{
		{"visa-style card accepted", types.PaymentMethodCreditCard, types.CardDetails{CardNumber: "4242424242424242"}, false},
		{"minimum length visa accepted", types.PaymentMethodCreditCard, types.CardDetails{CardNumber: "4000000000001"}, false},
		{"mastercard-style card declined", types.PaymentMethodCreditCard, types.CardDetails{CardNumber: "5111111111111111"}, true},
		{"short card declined", types.PaymentMethodCreditCard, types.CardDetails{CardNumber: "4242"}, true},
		{"empty card declined", types.PaymentMethodCreditCard, types.CardDetails{}, true},
		{"paypal always succeeds", types.PaymentMethodPaypal, types.CardDetails{}, false},
		{"cash always succeeds", types.PaymentMethodCash, types.CardDetails{}, false},
		{"unknown method declined", types.PaymentMethod("bitcoin"), types.CardDetails{}, true},
	}

	gateway := NewSimulator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := gateway.Charge(context.Background(), tc.method, tc.card, 5000)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrDeclined)
				return
			}
			require.NoError(t, err)
		})
	}
}
