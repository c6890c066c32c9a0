package devapi

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is the profile shape returned by the login endpoint.
type User struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
}

type userRecord struct {
	ID   string
	User User
	Hash []byte
}

// UserStore keeps accounts in memory, keyed by lower-cased email.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]userRecord
	cost  int
}

// NewUserStore constructs an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]userRecord), cost: bcrypt.DefaultCost}
}

// Create registers u with the given password and returns the new user ID.
func (s *UserStore) Create(u User, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}

	key := strings.ToLower(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[key]; ok {
		return "", ErrUserExists
	}
	for _, r := range s.users {
		if r.User.Username == u.Username {
			return "", ErrUserExists
		}
	}

	id := uuid.NewString()
	s.users[key] = userRecord{ID: id, User: u, Hash: hash}
	return id, nil
}

// Authenticate checks the password and returns the user ID and profile.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserStore) Authenticate(email, password string) (string, User, error) {
	s.mu.RLock()
	r, ok := s.users[strings.ToLower(email)]
	s.mu.RUnlock()

	if !ok {
		return "", User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(r.Hash, []byte(password)); err != nil {
		return "", User{}, ErrInvalidCredentials
	}
	return r.ID, r.User, nil
}
