package models

// SubscriptionForm is the mutable draft of a subscription purchase. It is
// created empty, mutated by plan selection and field edits, and reset to
// its defaults after a successful submission. It is never persisted.
type SubscriptionForm struct {
	UserID        string `json:"userId,omitempty"`
	PlanID        string `json:"planId"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Company       string `json:"company,omitempty"`
	Phone         string `json:"phone,omitempty"`
	StudentProof  string `json:"studentProof,omitempty"` // path to the proof document
	AcceptTerms   bool   `json:"acceptTerms"`
	Newsletter    bool   `json:"newsletter"`
	TransactionID string `json:"transactionId,omitempty"`
}

// NewSubscriptionForm returns a form with its documented defaults:
// everything empty except the newsletter opt-in, which starts enabled.
func NewSubscriptionForm() SubscriptionForm {
	return SubscriptionForm{
		Newsletter: true,
	}
}
