// Package devapi is a small in-memory implementation of the feed API used
// for local development and end-to-end tests of the client.
//
// Endpoints:
//
//	POST /auth/login   {email,password}                                  → 200 {token,user}
//	POST /auth/signup  {name,lastname,username,email,birthDate,password} → 201 {token}
//	GET  /posts        Authorization: Bearer <token>                      → 200 {data:[...]}
//
// Every error answer is {"message": "..."}.
package devapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfeed/internal/common"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	User
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type signupResponse struct {
	Token string `json:"token"`
}

type postsResponse struct {
	Data []Post `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Server serves the development feed API.
type Server struct {
	users         *UserStore
	posts         []Post
	secretKey     []byte
	tokenLifetime time.Duration
	logger        logging.Logger
}

// NewServer constructs a Server issuing tokens signed with secretKey.
func NewServer(users *UserStore, posts []Post, secretKey string, tokenLifetime time.Duration, logger logging.Logger) *Server {
	return &Server{
		users:         users,
		posts:         posts,
		secretKey:     []byte(secretKey),
		tokenLifetime: tokenLifetime,
		logger:        logger.With("module", "devapi"),
	}
}

// Router returns the HTTP handler with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/auth/login", s.login)
	r.Post("/auth/signup", s.signup)

	r.Group(func(r chi.Router) {
		r.Use(s.requireBearer)
		r.Get("/posts", s.listPosts)
	})

	return r
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Message: message})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		s.fail(w, r, http.StatusBadRequest, "Email and password are required")
		return
	}

	id, user, err := s.users.Authenticate(req.Email, req.Password)
	if err != nil {
		s.logger.Info(r.Context(), "login rejected", "request_id", middleware.GetReqID(r.Context()))
		s.fail(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(id, s.secretKey, s.tokenLifetime)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		s.fail(w, r, http.StatusInternalServerError, "Login failed")
		return
	}

	render.JSON(w, r, loginResponse{Token: token, User: user})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	for _, v := range []string{req.Name, req.Lastname, req.Username, req.Email, req.Password} {
		if strings.TrimSpace(v) == "" {
			s.fail(w, r, http.StatusBadRequest, "All fields are required")
			return
		}
	}

	id, err := s.users.Create(req.User, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			s.fail(w, r, http.StatusConflict, "User already exists")
			return
		}
		s.logger.Error(r.Context(), "user creation failed", "error", err)
		s.fail(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := GenerateToken(id, s.secretKey, s.tokenLifetime)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		s.fail(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, signupResponse{Token: token})
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, postsResponse{Data: s.posts})
}

func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			s.fail(w, r, http.StatusUnauthorized, "Authorization required")
			return
		}

		if _, err := GetUserIDFromToken(token, s.secretKey); err != nil {
			msg := "Invalid token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "Token expired"
			}
			s.fail(w, r, http.StatusUnauthorized, msg)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
