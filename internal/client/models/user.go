// Package models defines the data exchanged between the gophfeed client,
// its API and its local store.
package models

import "encoding/json"

// UserProfile is the user object returned by the login endpoint. The client
// stores the raw JSON untouched and only decodes it to display the profile.
type UserProfile struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
}

// DecodeUserProfile decodes a stored user record. Empty input yields an
// empty profile.
func DecodeUserProfile(raw []byte) (*UserProfile, error) {
	p := &UserProfile{}
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}
