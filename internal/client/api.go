// Package client keeps the state of a tracker client: the signed in
// user and the collections of entities, synchronized with the API
// server when a user is signed in.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/exchange"
)

// Error is an error response of the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// IsStatus reports if err is an API error with the given status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

// API is a client for the HTTP API of the tracker.
type API struct {
	baseURL *url.URL
	http    *http.Client
	token   string
}

// NewAPI returns a client for the API at baseURL, e.g. http://localhost:8080.
func NewAPI(baseURL string) (*API, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}

	return &API{
		baseURL: u,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// WithToken returns a copy of the client that authenticates with the token.
func (a *API) WithToken(token string) *API {
	c := *a
	c.token = token
	return &c
}

// Register creates a user. The returned user has no token.
func (a *API) Register(ctx context.Context, name, email, password string) (User, error) {
	var user User
	err := a.do(ctx, http.MethodPost, "users/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &user)
	return user, err
}

// Login verifies the credentials and returns the user with a token.
func (a *API) Login(ctx context.Context, email, password string) (User, error) {
	var user User
	err := a.do(ctx, http.MethodPost, "users/login", map[string]string{
		"email":    email,
		"password": password,
	}, &user)
	return user, err
}

// Export downloads the export document of the user.
func (a *API) Export(ctx context.Context, userID string) (exchange.Document, error) {
	var doc exchange.Document
	err := a.do(ctx, http.MethodGet, "export/"+url.PathEscape(userID), nil, &doc)
	return doc, err
}

// Import uploads an export document for the user.
func (a *API) Import(ctx context.Context, userID string, doc exchange.Document) (exchange.Summary, error) {
	var summary exchange.Summary
	err := a.do(ctx, http.MethodPost, "import/"+url.PathEscape(userID), doc, &summary)
	return summary, err
}

// list returns the raw entries of a collection of the user.
func (a *API) list(ctx context.Context, collection, userID string) ([]map[string]any, error) {
	var raw []map[string]any
	err := a.do(ctx, http.MethodGet, collection+"/"+url.PathEscape(userID), nil, &raw)
	return raw, err
}

func (a *API) create(ctx context.Context, collection string, body, target any) error {
	return a.do(ctx, http.MethodPost, collection, body, target)
}

func (a *API) update(ctx context.Context, collection, id string, patch map[string]any) error {
	return a.do(ctx, http.MethodPut, collection+"/"+url.PathEscape(id), patch, nil)
}

func (a *API) delete(ctx context.Context, collection, id string) error {
	return a.do(ctx, http.MethodDelete, collection+"/"+url.PathEscape(id), nil, nil)
}

// do sends a request to the path below /api and decodes the response
// into target if it is not nil.
func (a *API) do(ctx context.Context, method, path string, body, target any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL.JoinPath("api", path).String(), reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &Error{Status: resp.StatusCode, Message: e.Error}
	}

	if target == nil {
		return nil
	}

	d := json.NewDecoder(resp.Body)
	d.UseNumber()
	if err := d.Decode(target); err != nil {
		return fmt.Errorf("decoding response of %s %s: %w", method, path, err)
	}
	return nil
}
