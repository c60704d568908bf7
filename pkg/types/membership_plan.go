package types

// MembershipPlan is a purchasable membership term. The catalog lives in
// config; a plan is referenced by its Type.
type MembershipPlan struct {
	Type         string `json:"type" mapstructure:"type"`
	PriceCents   int64  `json:"price_cents" mapstructure:"price_cents"`
	DurationDays int    `json:"duration_days" mapstructure:"duration_days"`
	Description  string `json:"description" mapstructure:"description"`
}
