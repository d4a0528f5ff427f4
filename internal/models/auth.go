package models

// Auth contains the result of a successful registration or login
type Auth struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthData is the full persisted session record, including when it was
// established
type AuthData struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	LoginTime string `json:"loginTime"`
}
