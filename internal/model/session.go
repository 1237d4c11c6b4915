package model

import "time"

// Session is the decoded cookie payload proving "this browser is
// authenticated as User X".
type Session struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}
