package entity

type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierStarter SubscriptionTier = "starter"
	TierPro     SubscriptionTier = "pro"
	TierAgency  SubscriptionTier = "agency"
)

// PlanLimits: leads exportable per calendar month, per tier.
var PlanLimits = map[SubscriptionTier]int{
	TierFree:    50,
	TierStarter: 1000,
	TierPro:     10000,
	TierAgency:  50000,
}

// PlanPrices in USD/month, display only (Dodo owns the real prices).
var PlanPrices = map[SubscriptionTier]int{
	TierStarter: 5,
	TierPro:     15,
	TierAgency:  39,
}

// LimitFor returns the tier's monthly ceiling. Anything unknown (bad data
// in the users table) falls back to the free limit.
func LimitFor(tier SubscriptionTier) int {
	if limit, ok := PlanLimits[tier]; ok {
		return limit
	}
	return PlanLimits[TierFree]
}

func (t SubscriptionTier) IsPaid() bool {
	_, ok := PlanPrices[t]
	return ok
}
