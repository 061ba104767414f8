package entities

// User represents a row in the users table.
// Password is stored exactly as given; hashing belongs to the caller.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"password" db:"password"`
}
