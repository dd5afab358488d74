package response_models

type TableStats struct {
	ProtocolsCount     int64  `json:"protocols_count"`
	UsersCount         int64  `json:"users_count"`
	SubscriptionsCount int64  `json:"subscriptions_count"`
	LastProtocolUpdate string `json:"last_protocol_update,omitempty"`
}
