package middleware

import (
	"context"
	"net/http"

	"todoweb/internal/model"
)

type contextKey string

const sessionKey contextKey = "session"

func SetSession(ctx context.Context, sess model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession returns the session placed in the request context by
// RequireSession. The zero Session means no session was attached.
func GetSession(r *http.Request) model.Session {
	v, _ := r.Context().Value(sessionKey).(model.Session)
	return v
}
