package models

// Account is a registered user. PasswordHash holds the bcrypt hash of the
// signup password; the plaintext is never stored.
type Account struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string
}

// PublicAccount is the serializable view of an Account. The password hash
// and internal timestamps are deliberately absent.
type PublicAccount struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		EmailAddress: a.EmailAddress,
	}
}
