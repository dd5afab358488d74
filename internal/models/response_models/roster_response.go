package response_models

type RosterUser struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	IsSubscribed        bool   `json:"is_subscribed"`
	SubscriptionTier    string `json:"subscription_tier"`
	SubscriptionEndDate string `json:"subscription_end_date,omitempty"`
	CreatedAt           string `json:"created_at"`
}

// RosterStats are reductions over the fetched snapshot, not live store
// aggregates; they go stale until the next list call.
type RosterStats struct {
	Total      int `json:"total"`
	Admins     int `json:"admins"`
	Subscribed int `json:"subscribed"`
	Premium    int `json:"premium"`
}

type RosterResponse struct {
	Users []RosterUser `json:"users"`
	Stats RosterStats  `json:"stats"`
}
