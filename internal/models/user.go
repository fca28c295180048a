// Package models defines the records persisted by travelbook. JSON field
// names are the on-disk format and must not change.
package models

// User is an entry of the user registry. Email is the unique, case-sensitive
// identifier. Password holds the stored credential: an argon2id PHC string
// for accounts registered here, or plaintext for pre-seeded legacy records.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Public returns a copy of u without the credential, safe to hand to the
// presentation layer.
func (u User) Public() User {
	u.Password = ""
	return u
}
