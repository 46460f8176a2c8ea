package types

import "time"

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	DOB          string    `json:"dob"` // YYYY-MM-DD
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the subset of a User returned to clients.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, FirstName: u.FirstName, Email: u.Email}
}
