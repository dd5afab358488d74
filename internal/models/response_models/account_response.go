package response_models

type AccountLoginResponse struct {
	Token             string `json:"token"`
	IsUserHavePremium bool   `json:"is_user_have_premium"`
}

type AccountResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	IsSubscribed        bool   `json:"is_subscribed"`
	SubscriptionTier    string `json:"subscription_tier"`
	SubscriptionEndDate string `json:"subscription_end_date,omitempty"`
	AccessLevel         string `json:"access_level"`
	CreatedAt           string `json:"created_at"`
}
