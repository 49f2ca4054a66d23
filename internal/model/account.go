package model

// Account is a login credential record. Email is unique across accounts.
type Account struct {
	Name         string `json:"name" yaml:"name"`
	Email        string `json:"email" yaml:"email"`
	PasswordHash string `json:"password_hash" yaml:"-"`
}

// Identity is the session view of an account.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
