// Package subscription owns the client-side state of the subscription
// purchase flow: the plan catalog, the in-progress form, the cached
// current subscription and the per-operation loading and error flags.
//
// A Session belongs to a single command invocation and is not safe for
// concurrent use: overlapping calls to the same operation are not
// coordinated, the last response to land wins.
package subscription

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"altnews/internal/api"
	"altnews/internal/i18n"
	"altnews/internal/models"
)

// ProcessingStep marks where a submission is in its lifecycle
type ProcessingStep string

const (
	StepForm         ProcessingStep = "form"
	StepPayment      ProcessingStep = "payment"
	StepConfirmation ProcessingStep = "confirmation"
)

// Backend is the slice of the API client the session depends on
type Backend interface {
	ListPlans() ([]models.Plan, error)
	GetPlan(id string) (*models.Plan, error)
	CheckEmail(email string) (*api.CheckEmailResult, error)
	Register(email, password, firstName, lastName, phone string) (*models.Auth, error)
	CreateSubscription(form models.SubscriptionForm) (*models.Subscription, error)
	CurrentSubscription(userID string) (*models.Subscription, error)
	RenewSubscription(id string, payment *api.RenewOptions) (*models.Subscription, error)
	CancelSubscription(id string) (*models.Subscription, error)
	UpdateSubscription(id string, fields map[string]interface{}) (*models.Subscription, error)
}

// Session holds the purchase-flow state and exposes its operations.
// Network failures never escape a Session method: they are reduced to the
// relevant error field and a degraded return value.
type Session struct {
	backend Backend
	lang    string
	logw    io.Writer

	// Cached plan catalog
	Plans []models.Plan

	// In-progress purchase form
	Form models.SubscriptionForm

	// Cached current subscription, nil when the user has none
	Current *models.Subscription

	PlansLoading        bool
	PlansError          string
	SubscriptionLoading bool
	SubscriptionError   string
	CheckingEmail       bool
	EmailCheckFailed    bool
	EmailExists         bool
	IsProcessing        bool
	Step                ProcessingStep
	ErrorMessage        string
}

// NewSession creates a session in its initial state
func NewSession(backend Backend, lang string) *Session {
	return &Session{
		backend: backend,
		lang:    lang,
		logw:    os.Stderr,
		Form:    models.NewSubscriptionForm(),
		Step:    StepForm,
	}
}

// SetLogOutput redirects the session's warning log
func (s *Session) SetLogOutput(w io.Writer) {
	s.logw = w
}

// FetchPlans loads the plan catalog into the session. On any failure it
// records a plans error and returns an empty slice instead of propagating.
func (s *Session) FetchPlans() []models.Plan {
	s.PlansLoading = true
	s.PlansError = ""
	defer func() { s.PlansLoading = false }()

	plans, err := s.backend.ListPlans()
	if err != nil {
		s.PlansError = i18n.T(s.lang, "error.plans_load")
		s.logf("Warning: could not load plans: %v", err)
		return []models.Plan{}
	}

	s.Plans = plans
	return plans
}

// FetchPlan loads a single plan. Failures are logged, not surfaced.
func (s *Session) FetchPlan(id string) *models.Plan {
	plan, err := s.backend.GetPlan(id)
	if err != nil {
		s.logf("Warning: could not load plan %s: %v", id, err)
		return nil
	}
	return plan
}

// SelectPlan records the chosen plan on the form. It neither validates
// nor fetches.
func (s *Session) SelectPlan(id string) {
	s.Form.PlanID = id
}

// SelectedPlan looks the form's plan id up in the cached catalog
func (s *Session) SelectedPlan() *models.Plan {
	if s.Form.PlanID == "" {
		return nil
	}
	for i := range s.Plans {
		if s.Plans[i].ID == s.Form.PlanID {
			return &s.Plans[i]
		}
	}
	return nil
}

// ValidateForm checks the form in order: plan, email, names, terms. The
// first failing check sets the error message and stops.
func (s *Session) ValidateForm() bool {
	s.ErrorMessage = ""

	if s.Form.PlanID == "" {
		s.ErrorMessage = i18n.T(s.lang, "error.select_plan")
		return false
	}

	if s.Form.Email == "" || !strings.Contains(s.Form.Email, "@") {
		s.ErrorMessage = i18n.T(s.lang, "error.invalid_email")
		return false
	}

	if s.Form.FirstName == "" || s.Form.LastName == "" {
		s.ErrorMessage = i18n.T(s.lang, "error.full_name")
		return false
	}

	if !s.Form.AcceptTerms {
		s.ErrorMessage = i18n.T(s.lang, "error.accept_terms")
		return false
	}

	return true
}

// CheckEmail asks the server whether an account exists for the address.
// An existing account pre-fills the form's identity fields. Transport
// failures set the email-check flag and report false.
func (s *Session) CheckEmail(email string) bool {
	s.CheckingEmail = true
	s.EmailCheckFailed = false
	defer func() { s.CheckingEmail = false }()

	result, err := s.backend.CheckEmail(email)
	if err != nil {
		s.EmailCheckFailed = true
		s.logf("Warning: email check failed: %v", err)
		return false
	}

	if result.Exists {
		s.EmailExists = true
		s.Form.UserID = result.ID
		s.Form.Email = email
		if result.Email != "" {
			s.Form.Email = result.Email
		}
		s.Form.FirstName = result.FirstName
		s.Form.LastName = result.LastName
		s.Form.Phone = result.Phone
	} else {
		s.EmailExists = false
	}

	return true
}

// RegisterUser creates an account and pre-fills the form from the new
// user record. The API client persists the issued token.
func (s *Session) RegisterUser(email, password, firstName, lastName, phone string) bool {
	auth, err := s.backend.Register(email, password, firstName, lastName, phone)
	if err != nil {
		s.ErrorMessage = s.failureMessage(err, "error.register")
		s.logf("Warning: registration failed: %v", err)
		return false
	}

	s.Form.UserID = auth.User.ID
	s.Form.Email = auth.User.Email
	s.Form.FirstName = auth.User.FirstName
	s.Form.LastName = auth.User.LastName
	s.Form.Phone = auth.User.Phone

	return true
}

// CreateSubscription submits the current form. The transaction id
// parameter takes precedence over the one already on the form. On success
// the step advances to confirmation and the returned subscription becomes
// the cached current one.
func (s *Session) CreateSubscription(transactionID string) bool {
	s.IsProcessing = true
	s.ErrorMessage = ""
	defer func() { s.IsProcessing = false }()

	form := s.Form
	if transactionID != "" {
		form.TransactionID = transactionID
	}

	created, err := s.backend.CreateSubscription(form)
	if err != nil {
		s.ErrorMessage = s.failureMessage(err, "error.payment")
		s.logf("Warning: subscription creation failed: %v", err)
		return false
	}

	s.Step = StepConfirmation
	s.Current = created
	return true
}

// ProcessSubscription validates and then submits the form. A validation
// failure returns false without touching the network.
func (s *Session) ProcessSubscription() bool {
	if !s.ValidateForm() {
		return false
	}

	s.Step = StepPayment
	return s.CreateSubscription("")
}

// FetchCurrentSubscription refreshes the cached subscription, for the
// given user id or for the token bearer when empty. Having none is a
// normal outcome, not an error.
func (s *Session) FetchCurrentSubscription(userID string) *models.Subscription {
	s.SubscriptionLoading = true
	s.SubscriptionError = ""
	defer func() { s.SubscriptionLoading = false }()

	current, err := s.backend.CurrentSubscription(userID)
	if err != nil {
		s.SubscriptionError = i18n.T(s.lang, "error.subscription_load")
		s.logf("Warning: could not load subscription: %v", err)
		s.Current = nil
		return nil
	}

	s.Current = current
	return current
}

// RenewSubscription renews by id and replaces the cache on success
func (s *Session) RenewSubscription(id string, payment *api.RenewOptions) bool {
	s.IsProcessing = true
	s.ErrorMessage = ""
	defer func() { s.IsProcessing = false }()

	renewed, err := s.backend.RenewSubscription(id, payment)
	if err != nil {
		s.ErrorMessage = s.failureMessage(err, "error.renew")
		s.logf("Warning: renewal failed: %v", err)
		return false
	}

	s.Current = renewed
	return true
}

// CancelSubscription cancels the cached current subscription. Without a
// cached id it fails locally, no request is made.
func (s *Session) CancelSubscription() bool {
	if s.Current == nil || s.Current.ID == "" {
		s.ErrorMessage = i18n.T(s.lang, "error.no_subscription")
		return false
	}
	return s.CancelSubscriptionByID(s.Current.ID)
}

// CancelSubscriptionByID cancels a subscription on the server and
// replaces the cache on success
func (s *Session) CancelSubscriptionByID(id string) bool {
	s.IsProcessing = true
	s.ErrorMessage = ""
	defer func() { s.IsProcessing = false }()

	cancelled, err := s.backend.CancelSubscription(id)
	if err != nil {
		s.ErrorMessage = s.failureMessage(err, "error.cancel")
		s.logf("Warning: cancellation failed: %v", err)
		return false
	}

	s.Current = cancelled
	return true
}

// UpdateSubscription applies a partial update and replaces the cache on success
func (s *Session) UpdateSubscription(id string, fields map[string]interface{}) bool {
	s.IsProcessing = true
	s.ErrorMessage = ""
	defer func() { s.IsProcessing = false }()

	updated, err := s.backend.UpdateSubscription(id, fields)
	if err != nil {
		s.ErrorMessage = s.failureMessage(err, "error.update")
		s.logf("Warning: update failed: %v", err)
		return false
	}

	s.Current = updated
	return true
}

// ResetForm restores the form defaults and rewinds the step marker
func (s *Session) ResetForm() {
	s.Form = models.NewSubscriptionForm()
	s.Step = StepForm
	s.ErrorMessage = ""
}

// FormatPrice renders a price in the session's language
func (s *Session) FormatPrice(price float64, currency string) string {
	return i18n.FormatPrice(price, currency, s.lang)
}

// failureMessage prefers the server's own message over the generic one
func (s *Session) failureMessage(err error, fallbackKey string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return i18n.T(s.lang, fallbackKey)
}

func (s *Session) logf(format string, args ...interface{}) {
	fmt.Fprintf(s.logw, format+"\n", args...)
}
