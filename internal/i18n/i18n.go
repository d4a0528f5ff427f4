// Package i18n holds the French/English message catalog and the
// locale-aware formatting helpers used across the client.
package i18n

// Language describes a selectable interface language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Languages lists the supported interface languages
var Languages = []Language{
	{Code: "fr", Name: "Français", Flag: "🇫🇷"},
	{Code: "en", Name: "English", Flag: "🇬🇧"},
}

// DefaultLanguage is the site's primary locale
const DefaultLanguage = "fr"

// IsSupported reports whether the given language code can be selected
func IsSupported(code string) bool {
	for _, lang := range Languages {
		if lang.Code == code {
			return true
		}
	}
	return false
}

var messages = map[string]map[string]string{
	"fr": {
		"error.select_plan":        "Veuillez sélectionner un plan d'abonnement",
		"error.invalid_email":      "Veuillez entrer une adresse email valide",
		"error.full_name":          "Veuillez renseigner votre nom complet",
		"error.accept_terms":       "Veuillez accepter les conditions générales",
		"error.plans_load":         "Impossible de charger les plans d'abonnement",
		"error.subscription_load":  "Impossible de récupérer votre abonnement",
		"error.payment":            "Une erreur est survenue lors du traitement de votre paiement",
		"error.email_check":        "Impossible de vérifier l'adresse email",
		"error.register":           "Impossible de créer le compte",
		"error.renew":              "Erreur lors du renouvellement de l'abonnement",
		"error.cancel":             "Erreur lors de l'annulation de l'abonnement",
		"error.update":             "Erreur lors de la mise à jour de l'abonnement",
		"error.no_subscription":    "Aucun abonnement à annuler",
		"error.auth_required":      "Authentification requise, veuillez vous connecter",
		"price.free":               "Gratuit",
		"status.PENDING":           "En attente",
		"status.ACTIVE":            "Actif",
		"status.EXPIRED":           "Expiré",
		"status.CANCELLED":         "Annulé",
		"subscription.none":        "Aucun abonnement actif",
		"subscription.plan":        "Plan",
		"subscription.status":      "Statut",
		"subscription.start":       "Début",
		"subscription.end":         "Expire le",
		"subscription.auto_renew":  "Renouvellement automatique",
		"subscription.enabled":     "Activé",
		"subscription.disabled":    "Désactivé",
		"subscription.transaction": "Transaction",
	},
	"en": {
		"error.select_plan":        "Please select a subscription plan",
		"error.invalid_email":      "Please enter a valid email address",
		"error.full_name":          "Please enter your full name",
		"error.accept_terms":       "Please accept the terms and conditions",
		"error.plans_load":         "Could not load the subscription plans",
		"error.subscription_load":  "Could not retrieve your subscription",
		"error.payment":            "An error occurred while processing your payment",
		"error.email_check":        "Could not verify the email address",
		"error.register":           "Could not create the account",
		"error.renew":              "Error while renewing the subscription",
		"error.cancel":             "Error while cancelling the subscription",
		"error.update":             "Error while updating the subscription",
		"error.no_subscription":    "No subscription to cancel",
		"error.auth_required":      "Authentication required, please log in",
		"price.free":               "Free",
		"status.PENDING":           "Pending",
		"status.ACTIVE":            "Active",
		"status.EXPIRED":           "Expired",
		"status.CANCELLED":         "Cancelled",
		"subscription.none":        "No active subscription",
		"subscription.plan":        "Plan",
		"subscription.status":      "Status",
		"subscription.start":       "Start",
		"subscription.end":         "Expires on",
		"subscription.auto_renew":  "Auto-renewal",
		"subscription.enabled":     "Enabled",
		"subscription.disabled":    "Disabled",
		"subscription.transaction": "Transaction",
	},
}

// T returns the message for the given key in the given language, falling
// back to French and finally to the key itself
func T(lang, key string) string {
	if catalog, ok := messages[lang]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}
