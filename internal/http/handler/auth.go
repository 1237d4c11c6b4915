package handler

import (
	"encoding/json"
	"net/http"

	"todoweb/internal/model"
	"todoweb/internal/service"
	"todoweb/internal/session"
)

type AuthHandler struct {
	svc      *service.AuthService
	sessions *session.Store
}

func NewAuthHandler(svc *service.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

type credentialsRequest struct {
	UserName string `json:"userName"`
}

type userBody struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
}

type authResponse struct {
	Success bool     `json:"success"`
	User    userBody `json:"user"`
}

func newAuthResponse(user model.User) authResponse {
	return authResponse{
		Success: true,
		User:    userBody{ID: user.ID, UserName: user.UserName},
	}
}

// Register creates the user and establishes a session in one step.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), req.UserName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.sessions.Create(w, user.ID, user.UserName)
	WriteJSON(w, http.StatusOK, newAuthResponse(user))
}

// Login replaces any prior session unconditionally, so a cookie pointing
// at a different account never leaks into the new login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	user, err := h.svc.Login(r.Context(), req.UserName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.sessions.Create(w, user.ID, user.UserName)
	WriteJSON(w, http.StatusOK, newAuthResponse(user))
}

// Logout always succeeds, even without a session to destroy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}

	h.sessions.Destroy(w)
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
