package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfeed/internal/client/models"
	"github.com/dmitrijs2005/gophfeed/internal/common"
	"github.com/google/uuid"
)

const (
	loginFailed        = "Login failed"
	registrationFailed = "Registration failed"
	postsFailed        = "Failed to load posts"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

type loginResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

type signupResponse struct {
	Token string `json:"token"`
}

type postsResponse struct {
	Data []models.Post `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// HTTPClient is the Client talking JSON over HTTP to the feed API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient constructs an HTTPClient for the API rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &resp, loginFailed); err != nil {
		return nil, err
	}

	if resp.Token == "" || !isObject(resp.User) {
		return nil, fmt.Errorf("login: %w", common.ErrMalformedResponse)
	}

	return &models.AuthResult{Token: resp.Token, User: resp.User}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, form models.SignupForm) (*models.AuthResult, error) {
	var resp signupResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", form, &resp, registrationFailed); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("signup: %w", common.ErrMalformedResponse)
	}

	return &models.AuthResult{Token: resp.Token}, nil
}

func (c *HTTPClient) Posts(ctx context.Context, token string) ([]models.Post, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}

	var resp postsResponse
	if err := c.do(ctx, http.MethodGet, "/posts", token, nil, &resp, postsFailed); err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return []models.Post{}, nil
	}
	return resp.Data, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one JSON round trip. A 401/403 on a bearer request maps to
// common.ErrUnauthorized; other non-2xx answers become *common.ServerError
// with the server message or fallback.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &common.TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return &common.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if token != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return fmt.Errorf("%s %s: %w", method, path, common.ErrUnauthorized)
		}
		return &common.ServerError{Status: resp.StatusCode, Message: serverMessage(data, fallback)}
	}

	if len(data) > maxResponseBytes {
		return fmt.Errorf("%s %s: %w: body exceeds %d bytes", method, path, common.ErrMalformedResponse, maxResponseBytes)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, common.ErrMalformedResponse, err)
	}

	return nil
}

func serverMessage(data []byte, fallback string) string {
	var e errorResponse
	if err := json.Unmarshal(data, &e); err != nil || strings.TrimSpace(e.Message) == "" {
		return fallback
	}
	return e.Message
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}
