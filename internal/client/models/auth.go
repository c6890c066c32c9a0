package models

import "encoding/json"

// Credentials is what a login form carries.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupForm is sent verbatim to the signup endpoint.
type SignupForm struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Password  string `json:"password"`
}

// AuthResult is the successful outcome of a login or signup. User is empty
// after signup, which does not return a user object.
type AuthResult struct {
	Token string
	User  json.RawMessage
}
