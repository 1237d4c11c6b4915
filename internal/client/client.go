// Package client is a typed HTTP client for the todoweb API. The session
// cookie lives in the client's cookie jar, so any request after a
// successful register or login is authenticated.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"todoweb/internal/model"
)

// APIError is a non-2xx response decoded into the server's error shape.
type APIError struct {
	Status  int
	Code    string
	Message string
	Field   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

type credentials struct {
	UserName string `json:"userName"`
}

type authResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, userName string) (model.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", credentials{UserName: userName}, &resp)
	return resp.User, err
}

func (c *Client) Login(ctx context.Context, userName string) (model.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{UserName: userName}, &resp)
	return resp.User, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos)
	return todos, err
}

func (c *Client) GetTodo(ctx context.Context, id string) (model.Todo, error) {
	var todo model.Todo
	err := c.do(ctx, http.MethodGet, "/api/todos/"+id, nil, &todo)
	return todo, err
}

// TodoInput is the wire shape of a create or update payload. EndTime nil
// or empty means no deadline.
type TodoInput struct {
	Title   string  `json:"todoTitle"`
	Text    string  `json:"todoText"`
	EndTime *string `json:"endTime"`
}

func (c *Client) CreateTodo(ctx context.Context, input TodoInput) (model.Todo, error) {
	var todo model.Todo
	err := c.do(ctx, http.MethodPost, "/api/todos", input, &todo)
	return todo, err
}

func (c *Client) UpdateTodo(ctx context.Context, id string, input TodoInput) (model.Todo, error) {
	var todo model.Todo
	err := c.do(ctx, http.MethodPut, "/api/todos/"+id, input, &todo)
	return todo, err
}

func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Code:    "INTERNAL_ERROR",
		Message: "request failed",
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Field   string `json:"field"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Code != "" {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
		apiErr.Field = body.Error.Field
	}
	return apiErr
}
