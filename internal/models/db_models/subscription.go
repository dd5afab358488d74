package db_models

import "github.com/google/uuid"

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusExpired   SubscriptionStatus = "expired"
)

// Subscription rows are written by the external billing flow; this
// service only reads them for the stats view.
type Subscription struct {
	BaseModel
	AccountID uuid.UUID          `gorm:"index"`
	Tier      SubscriptionTier   `gorm:"default:free"`
	Status    SubscriptionStatus `gorm:"index"`
	StartsAt  int64
	EndsAt    *int64

	StripeSubscriptionID string `gorm:"index"`

	Account Account `gorm:"foreignKey:AccountID"`
}
