package domain

// User is the logged-in visitor for one browser profile.
// There is no password and no expiry: logging in overwrites the record.
type User struct {
	Email string `json:"email"`
}
