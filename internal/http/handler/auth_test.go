package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todoweb/internal/http/handler"
	"todoweb/internal/model"
	"todoweb/internal/service"
	"todoweb/internal/session"
)

// mockUserRepo for auth handler tests
type mockUserRepo struct {
	createFn        func(ctx context.Context, userName string) (model.User, error)
	getByUserNameFn func(ctx context.Context, userName string) (model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, userName string) (model.User, error) {
	return m.createFn(ctx, userName)
}
func (m *mockUserRepo) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	return m.getByUserNameFn(ctx, userName)
}

func newAuthHandler(repo *mockUserRepo) *handler.AuthHandler {
	svc := service.NewAuthService(repo)
	return handler.NewAuthHandler(svc, session.NewStore(false))
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestAuthRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		taken      bool
		wantStatus int
		wantCookie bool
	}{
		{
			name:       "success",
			body:       `{"userName":"alice"}`,
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name:       "name taken",
			body:       `{"userName":"alice"}`,
			taken:      true,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "empty name",
			body:       `{"userName":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			body:       `{broken`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{
				getByUserNameFn: func(ctx context.Context, userName string) (model.User, error) {
					if tt.taken {
						return model.User{ID: "user-0", UserName: userName}, nil
					}
					return model.User{}, sql.ErrNoRows
				},
				createFn: func(ctx context.Context, userName string) (model.User, error) {
					return model.User{ID: "user-1", UserName: userName, CreatedAt: time.Now()}, nil
				},
			}

			h := newAuthHandler(repo)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Register(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}

			cookie := sessionCookie(t, w)
			if tt.wantCookie {
				if cookie == nil || cookie.Value == "" {
					t.Fatal("expected a session cookie")
				}
				var resp struct {
					Success bool `json:"success"`
					User    struct {
						ID       string `json:"id"`
						UserName string `json:"userName"`
					} `json:"user"`
				}
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode: %v", err)
				}
				if !resp.Success || resp.User.UserName != "alice" {
					t.Errorf("unexpected response: %+v", resp)
				}
			} else if cookie != nil {
				t.Error("expected no session cookie on failure")
			}
		})
	}
}

func TestAuthLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		exists     bool
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"userName":"alice"}`,
			exists:     true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown user",
			body:       `{"userName":"bob"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty name",
			body:       `{"userName":""}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{
				getByUserNameFn: func(ctx context.Context, userName string) (model.User, error) {
					if tt.exists {
						return model.User{ID: "user-1", UserName: userName}, nil
					}
					return model.User{}, sql.ErrNoRows
				},
			}

			h := newAuthHandler(repo)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Login(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && sessionCookie(t, w) == nil {
				t.Error("expected a fresh session cookie")
			}
		})
	}
}

func TestAuthLogout(t *testing.T) {
	h := newAuthHandler(&mockUserRepo{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()

	h.Logout(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := sessionCookie(t, w)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Error("expected the session cookie to be expired")
	}
}

func TestAuthMethodNotAllowed(t *testing.T) {
	h := newAuthHandler(&mockUserRepo{})
	for _, path := range []string{"/api/auth/register", "/api/auth/login", "/api/auth/logout"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		switch path {
		case "/api/auth/register":
			h.Register(w, req)
		case "/api/auth/login":
			h.Login(w, req)
		default:
			h.Logout(w, req)
		}
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", path, w.Code)
		}
	}
}
