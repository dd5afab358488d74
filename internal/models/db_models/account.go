package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
)

func (t SubscriptionTier) Valid() bool {
	return t == TierFree || t == TierPremium
}

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	IsSubscribed        bool
	SubscriptionTier    SubscriptionTier `gorm:"default:free"`
	SubscriptionEndDate *int64
}
