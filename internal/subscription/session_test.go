package subscription

import (
	"errors"
	"io"
	"testing"

	"altnews/internal/api"
	"altnews/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend scripts the API answers and counts the calls made
type fakeBackend struct {
	plans       []models.Plan
	plansErr    error
	plan        *models.Plan
	planErr     error
	checkResult *api.CheckEmailResult
	checkErr    error
	auth        *models.Auth
	registerErr error
	created     *models.Subscription
	createErr   error
	current     *models.Subscription
	currentErr  error
	renewed     *models.Subscription
	renewErr    error
	cancelled   *models.Subscription
	cancelErr   error
	updated     *models.Subscription
	updateErr   error

	createCalls int
	cancelCalls int
}

func (f *fakeBackend) ListPlans() ([]models.Plan, error) { return f.plans, f.plansErr }
func (f *fakeBackend) GetPlan(id string) (*models.Plan, error) {
	return f.plan, f.planErr
}
func (f *fakeBackend) CheckEmail(email string) (*api.CheckEmailResult, error) {
	return f.checkResult, f.checkErr
}
func (f *fakeBackend) Register(email, password, firstName, lastName, phone string) (*models.Auth, error) {
	return f.auth, f.registerErr
}
func (f *fakeBackend) CreateSubscription(form models.SubscriptionForm) (*models.Subscription, error) {
	f.createCalls++
	return f.created, f.createErr
}
func (f *fakeBackend) CurrentSubscription(userID string) (*models.Subscription, error) {
	return f.current, f.currentErr
}
func (f *fakeBackend) RenewSubscription(id string, payment *api.RenewOptions) (*models.Subscription, error) {
	return f.renewed, f.renewErr
}
func (f *fakeBackend) CancelSubscription(id string) (*models.Subscription, error) {
	f.cancelCalls++
	return f.cancelled, f.cancelErr
}
func (f *fakeBackend) UpdateSubscription(id string, fields map[string]interface{}) (*models.Subscription, error) {
	return f.updated, f.updateErr
}

func newTestSession(backend *fakeBackend) *Session {
	session := NewSession(backend, "fr")
	session.SetLogOutput(io.Discard)
	return session
}

func somePlans() []models.Plan {
	return []models.Plan{
		{ID: "standard", Name: "Standard", Price: 2000, Currency: "FCFA", Duration: 30, IsActive: true},
		{ID: "premium", Name: "Premium", Price: 20000, Currency: "FCFA", Duration: 365, IsActive: true},
	}
}

func TestFetchPlans(t *testing.T) {
	session := newTestSession(&fakeBackend{plans: somePlans()})

	plans := session.FetchPlans()

	assert.Len(t, plans, 2)
	assert.Len(t, session.Plans, 2)
	assert.False(t, session.PlansLoading)
	assert.Empty(t, session.PlansError)
}

func TestFetchPlansFailureKeepsCache(t *testing.T) {
	backend := &fakeBackend{plans: somePlans()}
	session := newTestSession(backend)
	session.FetchPlans()

	backend.plansErr = errors.New("boom")
	plans := session.FetchPlans()

	// Degraded return, cache untouched, error recorded in French
	assert.Empty(t, plans)
	assert.Len(t, session.Plans, 2)
	assert.Equal(t, "Impossible de charger les plans d'abonnement", session.PlansError)
	assert.False(t, session.PlansLoading)
}

func TestSelectedPlan(t *testing.T) {
	session := newTestSession(&fakeBackend{plans: somePlans()})
	session.FetchPlans()

	assert.Nil(t, session.SelectedPlan())

	session.SelectPlan("premium")
	plan := session.SelectedPlan()
	require.NotNil(t, plan)
	assert.Equal(t, "Premium", plan.Name)

	session.SelectPlan("nonexistent")
	assert.Nil(t, session.SelectedPlan())
}

func TestValidateFormOrder(t *testing.T) {
	session := newTestSession(&fakeBackend{})

	// Each failing check reports its own message, in order
	assert.False(t, session.ValidateForm())
	assert.Equal(t, "Veuillez sélectionner un plan d'abonnement", session.ErrorMessage)

	session.Form.PlanID = "premium"
	assert.False(t, session.ValidateForm())
	assert.Equal(t, "Veuillez entrer une adresse email valide", session.ErrorMessage)

	session.Form.Email = "not-an-email"
	assert.False(t, session.ValidateForm())
	assert.Equal(t, "Veuillez entrer une adresse email valide", session.ErrorMessage)

	session.Form.Email = "ama@example.com"
	assert.False(t, session.ValidateForm())
	assert.Equal(t, "Veuillez renseigner votre nom complet", session.ErrorMessage)

	session.Form.FirstName = "Ama"
	assert.False(t, session.ValidateForm())
	assert.Equal(t, "Veuillez renseigner votre nom complet", session.ErrorMessage)

	session.Form.LastName = "Diallo"
	assert.False(t, session.ValidateForm())
	assert.Equal(t, "Veuillez accepter les conditions générales", session.ErrorMessage)

	session.Form.AcceptTerms = true
	assert.True(t, session.ValidateForm())
	assert.Empty(t, session.ErrorMessage)
}

func TestCheckEmailPrefillsForm(t *testing.T) {
	session := newTestSession(&fakeBackend{checkResult: &api.CheckEmailResult{
		Exists:    true,
		ID:        "u-1",
		Email:     "ama@example.com",
		FirstName: "Ama",
		LastName:  "Diallo",
		Phone:     "+221770000000",
	}})

	ok := session.CheckEmail("ama@example.com")

	assert.True(t, ok)
	assert.True(t, session.EmailExists)
	assert.False(t, session.EmailCheckFailed)
	assert.Equal(t, "u-1", session.Form.UserID)
	assert.Equal(t, "Ama", session.Form.FirstName)
	assert.Equal(t, "Diallo", session.Form.LastName)
	assert.Equal(t, "+221770000000", session.Form.Phone)
}

func TestCheckEmailUnknownAddress(t *testing.T) {
	session := newTestSession(&fakeBackend{checkResult: &api.CheckEmailResult{Exists: false}})

	ok := session.CheckEmail("nobody@example.com")

	assert.True(t, ok)
	assert.False(t, session.EmailExists)
	assert.Empty(t, session.Form.UserID)
}

func TestCheckEmailTransportFailure(t *testing.T) {
	session := newTestSession(&fakeBackend{checkErr: errors.New("timeout")})

	ok := session.CheckEmail("ama@example.com")

	assert.False(t, ok)
	assert.True(t, session.EmailCheckFailed)
	assert.False(t, session.CheckingEmail)
}

func TestRegisterUserPrefillsForm(t *testing.T) {
	session := newTestSession(&fakeBackend{auth: &models.Auth{
		Token: "tok",
		User:  &models.User{ID: "u-1", Email: "ama@example.com", FirstName: "Ama", LastName: "Diallo"},
	}})

	ok := session.RegisterUser("ama@example.com", "s3cret", "Ama", "Diallo", "")

	assert.True(t, ok)
	assert.Equal(t, "u-1", session.Form.UserID)
	assert.Equal(t, "ama@example.com", session.Form.Email)
}

func TestRegisterUserFailure(t *testing.T) {
	session := newTestSession(&fakeBackend{registerErr: errors.New("boom")})

	ok := session.RegisterUser("ama@example.com", "s3cret", "Ama", "Diallo", "")

	assert.False(t, ok)
	assert.Equal(t, "Impossible de créer le compte", session.ErrorMessage)
}

func TestProcessSubscription(t *testing.T) {
	backend := &fakeBackend{created: &models.Subscription{ID: "sub-1", Status: models.StatusActive}}
	session := newTestSession(backend)

	session.Form.PlanID = "premium"
	session.Form.Email = "ama@example.com"
	session.Form.FirstName = "Ama"
	session.Form.LastName = "Diallo"
	session.Form.AcceptTerms = true

	ok := session.ProcessSubscription()

	assert.True(t, ok)
	assert.Equal(t, StepConfirmation, session.Step)
	assert.Equal(t, "sub-1", session.Current.ID)
	assert.False(t, session.IsProcessing)
	assert.Equal(t, 1, backend.createCalls)
}

func TestProcessSubscriptionInvalidFormSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	session := newTestSession(backend)

	ok := session.ProcessSubscription()

	assert.False(t, ok)
	assert.Equal(t, StepForm, session.Step)
	assert.Zero(t, backend.createCalls)
}

func TestCreateSubscriptionServerMessageWins(t *testing.T) {
	backend := &fakeBackend{createErr: &api.Error{StatusCode: 402, Message: "carte refusée"}}
	session := newTestSession(backend)

	ok := session.CreateSubscription("txn_1")

	assert.False(t, ok)
	assert.Equal(t, "carte refusée", session.ErrorMessage)
	assert.NotEqual(t, StepConfirmation, session.Step)
}

func TestCreateSubscriptionGenericFailure(t *testing.T) {
	session := newTestSession(&fakeBackend{createErr: errors.New("connection reset")})

	ok := session.CreateSubscription("")

	assert.False(t, ok)
	assert.Equal(t, "Une erreur est survenue lors du traitement de votre paiement", session.ErrorMessage)
}

func TestFetchCurrentSubscription(t *testing.T) {
	session := newTestSession(&fakeBackend{current: &models.Subscription{ID: "sub-1", Status: models.StatusActive}})

	current := session.FetchCurrentSubscription("u-1")

	require.NotNil(t, current)
	assert.Equal(t, "sub-1", session.Current.ID)
	assert.Empty(t, session.SubscriptionError)
}

func TestFetchCurrentSubscriptionNone(t *testing.T) {
	// A 404 surfaces from the client as (nil, nil): no subscription, no error
	session := newTestSession(&fakeBackend{current: nil})

	current := session.FetchCurrentSubscription("u-1")

	assert.Nil(t, current)
	assert.Nil(t, session.Current)
	assert.Empty(t, session.SubscriptionError)
}

func TestFetchCurrentSubscriptionFailure(t *testing.T) {
	session := newTestSession(&fakeBackend{currentErr: errors.New("boom")})
	session.Current = &models.Subscription{ID: "stale"}

	current := session.FetchCurrentSubscription("u-1")

	assert.Nil(t, current)
	assert.Nil(t, session.Current)
	assert.Equal(t, "Impossible de récupérer votre abonnement", session.SubscriptionError)
}

func TestCancelSubscriptionWithoutCurrent(t *testing.T) {
	backend := &fakeBackend{}
	session := newTestSession(backend)

	ok := session.CancelSubscription()

	// Fails locally, nothing is sent
	assert.False(t, ok)
	assert.Equal(t, "Aucun abonnement à annuler", session.ErrorMessage)
	assert.Zero(t, backend.cancelCalls)
}

func TestCancelSubscription(t *testing.T) {
	backend := &fakeBackend{cancelled: &models.Subscription{ID: "sub-1", Status: models.StatusCancelled}}
	session := newTestSession(backend)
	session.Current = &models.Subscription{ID: "sub-1", Status: models.StatusActive}

	ok := session.CancelSubscription()

	assert.True(t, ok)
	assert.Equal(t, models.StatusCancelled, session.Current.Status)
	assert.Equal(t, 1, backend.cancelCalls)
}

func TestRenewSubscription(t *testing.T) {
	session := newTestSession(&fakeBackend{renewed: &models.Subscription{ID: "sub-1", EndDate: "2026-09-30"}})

	ok := session.RenewSubscription("sub-1", nil)

	assert.True(t, ok)
	assert.Equal(t, "2026-09-30", session.Current.EndDate)
}

func TestUpdateSubscriptionFailure(t *testing.T) {
	session := newTestSession(&fakeBackend{updateErr: errors.New("boom")})

	ok := session.UpdateSubscription("sub-1", map[string]interface{}{"autoRenew": false})

	assert.False(t, ok)
	assert.Equal(t, "Erreur lors de la mise à jour de l'abonnement", session.ErrorMessage)
}

func TestResetForm(t *testing.T) {
	session := newTestSession(&fakeBackend{})
	session.Form.PlanID = "premium"
	session.Form.Email = "ama@example.com"
	session.Form.Newsletter = false
	session.Step = StepConfirmation
	session.ErrorMessage = "stale"

	session.ResetForm()

	assert.Empty(t, session.Form.PlanID)
	assert.Empty(t, session.Form.Email)
	assert.True(t, session.Form.Newsletter)
	assert.Equal(t, StepForm, session.Step)
	assert.Empty(t, session.ErrorMessage)
}

func TestFormatPrice(t *testing.T) {
	session := newTestSession(&fakeBackend{})

	assert.Equal(t, "2 000 FCFA", session.FormatPrice(2000, "FCFA"))
	assert.Equal(t, "Gratuit", session.FormatPrice(0, "FCFA"))
}
