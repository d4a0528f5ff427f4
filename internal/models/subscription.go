package models

// SubscriptionStatus represents the lifecycle state of a subscription
type SubscriptionStatus string

const (
	StatusPending   SubscriptionStatus = "PENDING"
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusExpired   SubscriptionStatus = "EXPIRED"
	StatusCancelled SubscriptionStatus = "CANCELLED"
)

// Subscription represents a user's subscription as owned by the remote
// system of record. Clients hold a cached copy only. Dates are RFC 3339
// strings as received on the wire; empty means unset.
type Subscription struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	PlanID        string             `json:"planId"`
	Status        SubscriptionStatus `json:"status"`
	StartDate     string             `json:"startDate,omitempty"`
	EndDate       string             `json:"endDate,omitempty"`
	AutoRenew     bool               `json:"autoRenew"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	TransactionID string             `json:"transactionId,omitempty"`
	CreatedAt     string             `json:"createdAt,omitempty"`
	UpdatedAt     string             `json:"updatedAt,omitempty"`

	// Populated when the server expands the relation
	Plan *Plan `json:"plan,omitempty"`
}

// IsActive reports whether the subscription is currently active
func (s *Subscription) IsActive() bool {
	return s != nil && s.Status == StatusActive
}
