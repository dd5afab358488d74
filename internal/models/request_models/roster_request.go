package request_models

// RosterEditRequest carries the only account fields an admin may change.
// Nil fields are left untouched; email and id are immutable through
// this path.
type RosterEditRequest struct {
	IsSubscribed        *bool   `json:"is_subscribed"`
	SubscriptionTier    *string `json:"subscription_tier"`
	Role                *string `json:"role"`
	SubscriptionEndDate *int64  `json:"subscription_end_date"`
}
